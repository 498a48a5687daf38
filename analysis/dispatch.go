package analysis

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cityroute/dijkstra"
)

// Dispatch assigns every target to the closest source among results.
//
// Ties between sources go to the smaller source ID. A target no source
// reaches gets Source "" and Distance Unreachable. Coverage holds each
// source's mean distance over all targets (+Inf if it misses any), and
// Recommended is the source with the smallest coverage, ties by ID.
//
// Errors:
//   - ErrNoSources if results is empty; ErrNilResult if any entry is nil.
//   - ErrNoTargets if targets is empty.
//   - ErrTargetNotFound if a target is unknown to any result.
func Dispatch(results []*dijkstra.Result, targets []string) (*Plan, error) {
	if len(results) == 0 {
		return nil, ErrNoSources
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	ordered := make([]*dijkstra.Result, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if r == nil {
			return nil, ErrNilResult
		}
		// a repeated source adds nothing; keep the first
		if seen[r.Source()] {
			continue
		}
		seen[r.Source()] = true
		ordered = append(ordered, r)
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Source() < ordered[j].Source() })

	p := &Plan{
		Assignments: make([]Assignment, 0, len(targets)),
		Coverage:    make(map[string]float64, len(ordered)),
	}
	sums := make(map[string]float64, len(ordered))
	for _, t := range targets {
		best := Assignment{Target: t, Distance: dijkstra.Unreachable}
		for _, r := range ordered {
			d, ok := r.Distance(t)
			if !ok {
				return nil, fmt.Errorf("%w: %q (source %q)", ErrTargetNotFound, t, r.Source())
			}
			sums[r.Source()] += d
			if d < best.Distance {
				best.Source, best.Distance = r.Source(), d
			}
		}
		p.Assignments = append(p.Assignments, best)
	}

	n := float64(len(targets))
	for _, r := range ordered {
		mean := sums[r.Source()] / n
		p.Coverage[r.Source()] = mean
		if p.Recommended == "" || mean < p.Coverage[p.Recommended] {
			p.Recommended = r.Source()
		}
	}

	return p, nil
}
