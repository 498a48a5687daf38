package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cityroute/bfs"
	"github.com/katalvlaran/cityroute/config"
	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/loader"
	"github.com/katalvlaran/cityroute/logging"
	"github.com/katalvlaran/cityroute/store"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	network    string
	logLevel   string
	db         string
	trace      bool
}

// app is everything a command needs, assembled from config and flags.
type app struct {
	cfg    *config.Config
	log    *log.Logger
	def    *loader.Definition
	graph  *core.Graph
	store  *store.Store // nil without a database
	trace  bool
	closer io.Closer
}

func loadApp(ctx context.Context, gf *globalFlags, errOut io.Writer) (*app, error) {
	cfg, err := config.Load(gf.configPath)
	if err != nil {
		return nil, err
	}
	if gf.network != "" {
		cfg.Network = gf.network
	}
	if gf.logLevel != "" {
		cfg.Log.Level = gf.logLevel
	}
	if gf.db != "" {
		cfg.Database = gf.db
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.Setup(cfg.Log, errOut)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: logger, trace: gf.trace, closer: closer}

	a.def, a.graph, err = loadNetwork(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	logger.WithFields(log.Fields{
		"network":     a.def.Name,
		"locations":   a.graph.Len(),
		"connections": a.graph.ConnectionCount(),
	}).Info("network loaded")
	if comps := bfs.Components(a.graph); len(comps) > 1 {
		logger.WithField("components", len(comps)).Warn("network is disconnected; some locations are unreachable from some sources")
	}

	if cfg.Database != "" {
		a.store, err = store.Open(cfg.Database)
		if err != nil {
			a.Close()
			return nil, err
		}
		logger.Debugf("run history: %s", cfg.Database)
	}

	return a, nil
}

func loadNetwork(ctx context.Context, cfg *config.Config) (*loader.Definition, *core.Graph, error) {
	switch cfg.Network {
	case "":
		def, g := loader.Sample()
		return def, g, nil
	case "neo4j":
		client, err := loader.NewNeo4jClient(ctx, loader.Neo4jOptions{
			URI:      cfg.Neo4j.URI,
			Database: cfg.Neo4j.Database,
			Username: cfg.Neo4j.Username,
			Password: cfg.Neo4j.Password,
		})
		if err != nil {
			return nil, nil, err
		}
		defer client.Close(ctx)
		def, err := loader.ReadNeo4j(ctx, client, "neo4j")
		if err != nil {
			return nil, nil, err
		}
		g, err := def.Graph()
		if err != nil {
			return nil, nil, err
		}
		return def, g, nil
	default:
		return loader.Load(cfg.Network)
	}
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warnf("close run history: %v", err)
		}
	}
	_ = a.closer.Close()
}

// engineOptions returns the configured engine options plus the trace hook
// when --trace is set.
func (a *app) engineOptions() []dijkstra.Option {
	opts := a.cfg.EngineOptions()
	if a.trace {
		if a.log.GetLevel() < log.DebugLevel {
			a.log.SetLevel(log.DebugLevel)
		}
		opts = append(opts, dijkstra.WithTracer(logging.TraceHook(a.log)))
	}

	return opts
}

// targets resolves --targets, falling back to every location of --category.
func (a *app) targets(explicit []string, category string) ([]string, error) {
	if len(explicit) > 0 {
		for _, t := range explicit {
			if !a.graph.HasLocation(t) {
				return nil, fmt.Errorf("target %w: %q", core.ErrLocationNotFound, t)
			}
		}
		return explicit, nil
	}
	out := a.graph.LocationsByCategory(core.Category(category))
	if len(out) == 0 {
		return nil, fmt.Errorf("no locations in category %q; pass --targets", category)
	}

	return out, nil
}

// save records res when a run history is configured.
func (a *app) save(ctx context.Context, label string, res *dijkstra.Result) {
	if a.store == nil {
		return
	}
	id, err := a.store.SaveResult(ctx, label, a.def.Name, res)
	if err != nil {
		a.log.Warnf("save run %q: %v", label, err)
		return
	}
	a.log.WithFields(log.Fields{"run": id, "label": label, "source": res.Source()}).Info("run saved")
}

var errNoHistory = errors.New("no run history configured; pass --db or set database in the config")
