package analysis

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/cityroute/dijkstra"
)

// CompareSources compares a and b on every target, in the given order.
//
// For each target the smaller distance wins; equal distances are a Tie with
// Diff 0. MeanA and MeanB are arithmetic means over targets and become +Inf
// when any target is unreachable for that source.
//
// Errors:
//   - ErrNilResult if a or b is nil.
//   - ErrNoTargets if targets is empty.
//   - ErrTargetNotFound if a target is unknown to either result.
func CompareSources(a, b *dijkstra.Result, targets []string) (*Comparison, error) {
	if a == nil || b == nil {
		return nil, ErrNilResult
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	c := &Comparison{
		SourceA: a.Source(),
		SourceB: b.Source(),
		Targets: make([]TargetComparison, 0, len(targets)),
	}
	var sumA, sumB float64
	for _, t := range targets {
		da, okA := a.Distance(t)
		db, okB := b.Distance(t)
		if !okA || !okB {
			return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, t)
		}
		c.Targets = append(c.Targets, compareOne(t, da, db))
		sumA += da
		sumB += db
	}
	n := float64(len(targets))
	c.MeanA, c.MeanB = sumA/n, sumB/n

	return c, nil
}

func compareOne(target string, da, db float64) TargetComparison {
	tc := TargetComparison{Target: target, DistanceA: da, DistanceB: db}
	switch {
	case da == db:
		tc.Winner, tc.Tie = Tie, true
	case da < db:
		tc.Winner = WinnerA
	default:
		tc.Winner = WinnerB
	}
	if !tc.Tie {
		// Inf - finite is Inf; Inf - Inf never happens here since that is a tie.
		tc.Diff = math.Abs(da - db)
	}

	return tc
}

// DetectRouteChange compares the route to target in before and after.
//
// Changed is true when the two paths differ as location sequences, even if
// their distances are equal. Delay is After - Before, with:
//
//	both unreachable      0
//	only after unreachable  +Inf
//	only before unreachable -Inf
//
// Errors:
//   - ErrNilResult if either result is nil.
//   - ErrTargetNotFound if target is unknown to either result.
func DetectRouteChange(before, after *dijkstra.Result, target string) (*RouteChange, error) {
	if before == nil || after == nil {
		return nil, ErrNilResult
	}
	d0, ok0 := before.Distance(target)
	d1, ok1 := after.Distance(target)
	if !ok0 || !ok1 {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}

	rc := &RouteChange{
		Target:     target,
		BeforePath: before.PathTo(target),
		AfterPath:  after.PathTo(target),
		Before:     d0,
		After:      d1,
	}
	rc.Changed = !slices.Equal(rc.BeforePath, rc.AfterPath)
	switch u0, u1 := dijkstra.IsUnreachable(d0), dijkstra.IsUnreachable(d1); {
	case u0 && u1:
		rc.Delay = 0
	case u1:
		rc.Delay = math.Inf(1)
	case u0:
		rc.Delay = math.Inf(-1)
	default:
		rc.Delay = d1 - d0
	}

	return rc, nil
}
