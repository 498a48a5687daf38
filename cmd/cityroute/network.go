package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityroute/bfs"
	"github.com/katalvlaran/cityroute/core"
)

func newNetworkCmd(gf *globalFlags) *cobra.Command {
	var from string
	var maxHops int

	cmd := &cobra.Command{
		Use:   "network",
		Short: "Summarise the loaded network: size, categories, components",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, gf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "network %s: %d locations, %d connections\n",
				a.def.Name, a.graph.Len(), a.graph.ConnectionCount())
			byCat := map[core.Category]int{}
			for _, l := range a.graph.DeclaredLocations() {
				byCat[l.Category]++
			}
			for _, cat := range []core.Category{core.CategoryHospital, core.CategoryHighRiskZone} {
				_, _ = fmt.Fprintf(out, "  %s: %d\n", cat, byCat[cat])
			}

			comps := bfs.Components(a.graph)
			_, _ = fmt.Fprintf(out, "components: %d\n", len(comps))
			if len(comps) > 1 {
				for i, c := range comps {
					_, _ = fmt.Fprintf(out, "  %d: %s\n", i+1, strings.Join(c, ", "))
				}
			}

			if from == "" {
				return nil
			}
			res, err := bfs.BFS(a.graph, from, bfs.WithContext(ctx), bfs.WithMaxHops(maxHops))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "hops from %s:\n", from)
			for _, id := range res.Order {
				_, _ = fmt.Fprintf(out, "  %d  %s\n", res.Hops[id], id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "also list road-segment counts from this location")
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "limit --from to this many segments (0: no limit)")
	return cmd
}
