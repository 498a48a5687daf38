// Package dijkstra provides the shortest-path engine for cityroute: minimum travel
// time and one shortest path from a source location to every location of a core.Graph.
//
// Overview:
//
//   - ComputeShortestPaths settles locations in increasing distance order using a
//     frontier ordered by (distance, location ID), relaxing connections with strict "<".
//   - Every location appears in the Result; unreachable ones report Unreachable
//     (+Inf) and an empty path, never a spurious number.
//   - Weights are guaranteed finite and non-negative by core.Build, which is what
//     makes a settled distance final.
//
// Frontiers:
//
//   - FrontierHeap (default): binary min-heap, lazy decrease-key, O((V + E) log V).
//   - FrontierLinear: linear scan for the minimum, O(V²). Suitable only for tiny
//     graphs; it settles locations in the same order as the heap and is kept as a
//     cross-check.
//
// Tie-breaking:
//
//	Among candidates with equal distance the lexicographically smaller location ID
//	is settled first. The rule is deterministic and independent of how the graph
//	was declared, so repeated runs report identical paths.
//
// Tracing:
//
//	WithTracer(fn) subscribes fn to a stream of EventSettled / EventRelaxed events.
//	The stream is purely observational; the engine itself never logs or prints.
//	Recorder is a ready-made subscriber that keeps every event.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrEmptySource:     empty source ID (a core.ErrValidation).
//   - ErrSourceNotFound:  source not in the graph (a core.ErrNotFound).
//   - ErrOptionViolation: invalid option value.
//
// API reference:
//
//	func ComputeShortestPaths(g *core.Graph, source string, opts ...Option) (*Result, error)
//
//	r.Distance(id) (float64, bool)   // Unreachable for unreachable, ok=false for unknown
//	r.PathTo(id) []string            // [source … id], empty if unreachable
//	r.Reachable(id) bool
//	r.SettleOrder() []string
//
// Thread safety:
//
//   - A core.Graph is immutable, so any number of computations may share one.
//   - Each call owns its state; run independent calls in parallel freely
//     (see analysis.ComputeAll).
package dijkstra
