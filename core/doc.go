// Package core provides the immutable, undirected, weighted road-network Graph
// that every other cityroute package reads from.
//
// The Graph G = (V, E) models a city:
//
//   - V: Locations, identified by opaque string IDs and optionally tagged
//     with a Category (Hospital, High-Risk Zone, …). Categories are metadata
//     for reporting and target selection; algorithms ignore them.
//   - E: Connections, unordered pairs {A, B} with a non-negative, finite
//     travel time in minutes. Traversal is permitted both ways at the same cost.
//
// Why immutable?
//
//   - A Graph is built once per run. Perturbations (simulated congestion)
//     produce independent copies through WithWeight/Clone, so results that
//     were computed on the original can never change underneath a caller.
//   - No locks: any number of goroutines may read one Graph concurrently.
//
// Construction:
//
//	g, err := core.Build(
//	    []core.Location{{ID: "A"}, {ID: "B", Category: core.CategoryHospital}},
//	    []core.Connection{{A: "A", B: "B", Weight: 4}},
//	)
//
// Build accepts a connection listed once per direction (as adjacency-style
// definitions naturally do) and merges the pair; the same pair with two
// different weights is rejected.
//
// Core Methods:
//
//	Build(locations, connections) (*Graph, error)        // O(V+E)
//	Neighbors(id) (iter.Seq2[string, float64], error)    // lazy, declaration order
//	Locations() []string                                 // sorted
//	HasLocation(id) bool                                 // O(1)
//	Category(id) (Category, error)
//	LocationsByCategory(cat) []string                    // sorted
//	Connections() []Connection                           // one entry per pair
//	Weight(a, b) (float64, error)                        // O(deg(a))
//	Clone() *Graph                                       // deep copy, O(V+E)
//	WithWeight(a, b, w) (*Graph, error)                  // modified deep copy
//
// Errors:
//
//	ErrValidation – category for malformed input:
//	    ErrEmptyLocationID, ErrDuplicateLocation, ErrUnknownLocation,
//	    ErrSelfLoop, ErrNegativeWeight, ErrInfiniteWeight, ErrConflictingWeight
//	ErrNotFound   – category for missing references:
//	    ErrLocationNotFound, ErrConnectionNotFound
//
// Match with errors.Is against either the specific or the category sentinel.
package core
