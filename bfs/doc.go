// Package bfs provides breadth-first search over a core.Graph, measuring
// routes in road segments instead of minutes.
//
// What
//
//   - BFS explores locations in non-decreasing hop count from a start and
//     returns a Result with visit Order, Hops and Parent links.
//   - Components splits a network into connected pieces; Connected reports
//     whether there is only one. The CLI uses it to warn about locations that
//     no station can ever reach.
//   - Hooks: OnEnqueue and OnVisit (which may abort with an error).
//   - WithFilterConnection prunes connections, e.g. roads over a time limit.
//   - WithMaxHops bounds the search radius.
//
// Determinism
//
//	Neighbors are enqueued in ascending ID order, so the visit sequence and
//	the recorded paths depend only on the network, not on declaration order.
//
// Complexity (V = locations, E = connections)
//
//   - BFS:        O(V + E log deg) time, O(V) memory.
//   - Components: one BFS per component, O(V + E log deg) in total.
//
// Usage
//
//	res, err := bfs.BFS(g, "Hospital_A", bfs.WithMaxHops(2))
//	path, err := res.PathTo("Market")
//
//	for _, comp := range bfs.Components(g) { ... }
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start location does not exist (a core.ErrNotFound).
//   - ErrOptionViolation  for an invalid Option (negative MaxHops).
//   - ctx.Err()           on cancellation.
//   - Wrapped OnVisit hook errors.
package bfs
