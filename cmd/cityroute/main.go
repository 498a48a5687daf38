// Command cityroute answers emergency-response routing questions on a city
// road network: shortest routes from a source, which of two stations covers a
// set of targets better, and how congestion on a road changes the routes.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityroute/analysis"
	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/perturb"
	"github.com/katalvlaran/cityroute/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:           "cityroute",
		Short:         "Emergency-response routing on a city road network",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "", "TOML config file")
	pf.StringVar(&gf.network, "network", "", "network file (.yaml|.yml|.toml|.osm) or \"neo4j\"; default: built-in sample city")
	pf.StringVar(&gf.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")
	pf.StringVar(&gf.db, "db", "", "SQLite run history file")
	pf.BoolVar(&gf.trace, "trace", false, "log every settle and relax step at debug level")

	root.AddCommand(newRoutesCmd(gf))
	root.AddCommand(newCompareCmd(gf))
	root.AddCommand(newCongestCmd(gf))
	root.AddCommand(newDispatchCmd(gf))
	root.AddCommand(newHistoryCmd(gf))
	root.AddCommand(newNetworkCmd(gf))
	root.AddCommand(newGenerateCmd())
	return root
}

func newRoutesCmd(gf *globalFlags) *cobra.Command {
	var source, label string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Shortest routes from one location to every other",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, gf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := dijkstra.ComputeShortestPaths(a.graph, source, a.engineOptions()...)
			if err != nil {
				return err
			}
			a.save(ctx, label, res)
			_, _ = fmt.Fprint(cmd.OutOrStdout(), report.Routes(a.graph, res))
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source location")
	cmd.Flags().StringVar(&label, "label", "routes", "label for the saved run")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

func newCompareCmd(gf *globalFlags) *cobra.Command {
	var sources, targets []string
	var category string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two sources on a set of targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(sources) != 2 {
				return fmt.Errorf("--sources needs exactly two locations, got %d", len(sources))
			}
			ctx := cmd.Context()
			a, err := loadApp(ctx, gf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			ts, err := a.targets(targets, category)
			if err != nil {
				return err
			}
			results, err := analysis.ComputeAll(ctx, a.graph, sources,
				analysis.WithWorkers(a.cfg.Workers), analysis.WithEngineOptions(a.engineOptions()...))
			if err != nil {
				return err
			}
			for _, r := range results {
				a.save(ctx, "compare", r)
			}
			c, err := analysis.CompareSources(results[0], results[1], ts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), report.Comparison(c))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&sources, "sources", nil, "two source locations, comma separated")
	cmd.Flags().StringSliceVar(&targets, "targets", nil, "target locations (default: every location of --category)")
	cmd.Flags().StringVar(&category, "category", string(core.CategoryHighRiskZone), "target category")
	_ = cmd.MarkFlagRequired("sources")
	return cmd
}

func newCongestCmd(gf *globalFlags) *cobra.Command {
	var (
		source   string
		edges    []string
		weight   float64
		targets  []string
		category string
	)

	cmd := &cobra.Command{
		Use:   "congest",
		Short: "Simulate congestion on roads and report the route changes",
		Example: `  cityroute congest --source Hospital_A --edge Intersection_Central:Market --weight 15
  cityroute congest --source Hospital_A --edge A:B=15 --edge B:C=9 --target Market`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps, err := parseEdges(edges, weight, cmd.Flags().Changed("weight"))
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			a, err := loadApp(ctx, gf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			ts, err := a.targets(targets, category)
			if err != nil {
				return err
			}
			im, err := analysis.CongestionImpact(ctx, a.graph, source, ts, ps,
				analysis.WithEngineOptions(a.engineOptions()...))
			if err != nil {
				return err
			}
			a.save(ctx, "baseline", im.Before)
			a.save(ctx, "congested", im.After)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, report.Impact(im))
			for i := range im.Changes {
				if im.Changes[i].Changed {
					_, _ = fmt.Fprint(out, report.RouteChange(&im.Changes[i]))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source location")
	cmd.Flags().StringArrayVar(&edges, "edge", nil, "road to congest as A:B (with --weight) or A:B=W; repeatable")
	cmd.Flags().Float64Var(&weight, "weight", 0, "new travel minutes for every --edge given as A:B")
	cmd.Flags().StringSliceVar(&targets, "target", nil, "target locations (default: every location of --category)")
	cmd.Flags().StringVar(&category, "category", string(core.CategoryHighRiskZone), "target category")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("edge")
	return cmd
}

// parseEdges turns --edge values into perturbations; A:B takes --weight.
func parseEdges(edges []string, weight float64, weightSet bool) ([]perturb.Perturbation, error) {
	out := make([]perturb.Perturbation, 0, len(edges))
	for _, e := range edges {
		if !strings.Contains(e, "=") {
			if !weightSet {
				return nil, fmt.Errorf("--edge %q has no weight; use A:B=W or pass --weight", e)
			}
			e = fmt.Sprintf("%s=%g", e, weight)
		}
		p, err := perturb.Parse(e)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

func newDispatchCmd(gf *globalFlags) *cobra.Command {
	var sources, targets []string
	var category string

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Assign every target to its closest source",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, gf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if len(sources) == 0 {
				sources = a.graph.LocationsByCategory(core.CategoryHospital)
			}
			ts, err := a.targets(targets, category)
			if err != nil {
				return err
			}
			results, err := analysis.ComputeAll(ctx, a.graph, sources,
				analysis.WithWorkers(a.cfg.Workers), analysis.WithEngineOptions(a.engineOptions()...))
			if err != nil {
				return err
			}
			p, err := analysis.Dispatch(results, ts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), report.Dispatch(p))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&sources, "sources", nil, "source locations (default: every Hospital)")
	cmd.Flags().StringSliceVar(&targets, "targets", nil, "target locations (default: every location of --category)")
	cmd.Flags().StringVar(&category, "category", string(core.CategoryHighRiskZone), "target category")
	return cmd
}

func newHistoryCmd(gf *globalFlags) *cobra.Command {
	var limit int
	var show int64

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved runs, or show one with --show",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, gf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()
			if a.store == nil {
				return errNoHistory
			}

			out := cmd.OutOrStdout()
			if show > 0 {
				run, res, err := a.store.LoadResult(ctx, show)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "run %d %q on %s\n", run.ID, run.Label, run.Network)
				_, _ = fmt.Fprint(out, report.Routes(a.graph, res))
				return nil
			}
			runs, err := a.store.ListRuns(ctx, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				_, _ = fmt.Fprintln(out, "no runs")
				return nil
			}
			_, _ = fmt.Fprint(out, report.Runs(runs))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to list")
	cmd.Flags().Int64Var(&show, "show", 0, "run ID to display")
	return cmd
}
