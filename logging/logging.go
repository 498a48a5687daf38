// Package logging configures logrus for the cityroute CLI and adapts engine
// trace events to structured log lines. Library packages never log; only the
// command wires these together.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/cityroute/config"
	"github.com/katalvlaran/cityroute/dijkstra"
)

// Setup builds a logger from cfg. With cfg.File set, output goes to a
// rotated file; otherwise to fallback (os.Stderr when nil).
// The returned closer releases the log file and is never nil.
func Setup(cfg config.LogConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	logger := log.New()
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if cfg.File == "" {
		if fallback == nil {
			fallback = os.Stderr
		}
		logger.SetOutput(fallback)
		return logger, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	logger.SetOutput(file)
	logger.Debugf("Logging initialized: file=%s", cfg.File)

	return logger, file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// TraceHook returns a dijkstra tracer that logs every event at debug level.
//
//	res, err := dijkstra.ComputeShortestPaths(g, src, dijkstra.WithTracer(logging.TraceHook(logger)))
func TraceHook(logger log.FieldLogger) func(dijkstra.Event) {
	return func(e dijkstra.Event) {
		fields := log.Fields{
			"step":     e.Step,
			"location": e.Location,
			"distance": e.Distance,
		}
		if e.Kind == dijkstra.EventRelaxed {
			fields["from"] = e.From
			fields["weight"] = e.Weight
			fields["previous"] = e.Previous
		}
		logger.WithFields(fields).Debug(e.Kind.String())
	}
}
