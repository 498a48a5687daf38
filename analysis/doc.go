// Package analysis turns shortest-path results into answers: which locations
// are closest, which of two sources serves a set of targets better, and how a
// perturbation changed the route to a target.
//
// Overview:
//
//   - RankByDistance orders one Result ascending by distance, ties by ID,
//     unreachable locations last.
//   - CompareSources compares two Results target by target and reports the
//     mean distance per source.
//   - DetectRouteChange compares the path to one target before and after a
//     perturbation and reports the delay.
//   - Dispatch picks the best source per target among any number of Results.
//   - CongestionImpact and ComputeAll run the engine on behalf of the caller;
//     ComputeAll fans independent computations out over a worker pool.
//
// Unreachable distances are dijkstra.Unreachable (+Inf) throughout:
//
//	reachable vs unreachable   the reachable side wins, Diff = +Inf
//	unreachable vs unreachable tie, Diff = 0
//	mean over targets          +Inf as soon as one target is unreachable
//
// Errors:
//
//   - ErrNilResult:      a nil *dijkstra.Result (a core.ErrValidation).
//   - ErrNoTargets:      an empty target list (a core.ErrValidation).
//   - ErrTargetNotFound: a target unknown to a Result (a core.ErrNotFound).
//
// Nothing in this package logs; callers decide how to present results.
package analysis
