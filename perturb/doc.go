// Package perturb simulates congestion by producing modified copies of a
// core.Graph. The input graph is never mutated: callers keep the original and
// every perturbed variant side by side for before/after comparison.
//
//	jammed, err := perturb.WithModifiedWeight(g, "Intersection_Central", "Market", 15)
//
// Perturbations compose by chaining, or atomically through Apply:
//
//	g2, err := perturb.Apply(g,
//	    perturb.Perturbation{A: "Intersection_Central", B: "Market", Weight: 15},
//	    perturb.Perturbation{A: "Mall", B: "Market", Weight: 9},
//	)
//
// Errors:
//
//	core.ErrConnectionNotFound / core.ErrLocationNotFound (both core.ErrNotFound)
//	core.ErrNegativeWeight / core.ErrInfiniteWeight       (both core.ErrValidation)
//	ErrBadFactor                                          (core.ErrValidation)
package perturb
