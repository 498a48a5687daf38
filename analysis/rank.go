package analysis

import (
	"sort"

	"github.com/katalvlaran/cityroute/dijkstra"
)

// RankByDistance returns every location of r ordered by ascending distance.
// Equal distances are ordered by location ID; unreachable locations sort last
// since Unreachable is +Inf. With excludeSource the source row is dropped.
//
// A nil r yields nil.
func RankByDistance(r *dijkstra.Result, excludeSource bool) []Ranked {
	if r == nil {
		return nil
	}
	dist := r.Distances()
	out := make([]Ranked, 0, len(dist))
	for id, d := range dist {
		if excludeSource && id == r.Source() {
			continue
		}
		out = append(out, Ranked{Location: id, Distance: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Location < out[j].Location
	})

	return out
}

// Reachable splits ranked rows into reachable and unreachable ones, keeping order.
func Reachable(rows []Ranked) (reachable, unreachable []Ranked) {
	for _, row := range rows {
		if dijkstra.IsUnreachable(row.Distance) {
			unreachable = append(unreachable, row)
			continue
		}
		reachable = append(reachable, row)
	}

	return reachable, unreachable
}
