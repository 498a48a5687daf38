// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction (Build) and read-only queries.
// Determinism:
//   - Locations() and LocationsByCategory() return sorted IDs.
//   - Neighbors() yields arcs in connection-declaration order.

package core

import (
	"fmt"
	"iter"
	"math"
	"sort"
)

// Build validates locations and connections and returns an immutable Graph.
//
// Implementation:
//   - Stage 1: Register locations; reject empty and duplicate IDs.
//   - Stage 2: Validate each connection (endpoints known, no self-loop, weight finite and ≥ 0).
//   - Stage 3: Merge repeated pairs. A pair listed once per direction with the same weight
//     is stored once; a repeat with a different weight fails with ErrConflictingWeight.
//   - Stage 4: Mirror every connection into both endpoints' adjacency lists.
//
// Errors (all wrap ErrValidation):
//   - ErrEmptyLocationID, ErrDuplicateLocation, ErrUnknownLocation,
//     ErrSelfLoop, ErrNegativeWeight, ErrInfiniteWeight, ErrConflictingWeight.
//
// Nothing is returned on failure; a Graph is never partially built.
//
// Complexity: O(V + E) time and space.
func Build(locations []Location, connections []Connection) (*Graph, error) {
	g := &Graph{
		order:      make([]string, 0, len(locations)),
		categories: make(map[string]Category, len(locations)),
		adjacency:  make(map[string][]arc, len(locations)),
	}

	// 1) Locations.
	var loc Location
	for _, loc = range locations {
		if loc.ID == "" {
			return nil, ErrEmptyLocationID
		}
		if _, dup := g.categories[loc.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocation, loc.ID)
		}
		g.categories[loc.ID] = loc.Category
		g.order = append(g.order, loc.ID)
	}

	// 2-3) Connections, deduplicated by unordered pair.
	seen := make(map[pairKey]float64, len(connections))
	g.connections = make([]Connection, 0, len(connections))
	var c Connection
	for _, c = range connections {
		if err := g.validateConnection(c); err != nil {
			return nil, err
		}
		key := newPairKey(c.A, c.B)
		if w, ok := seen[key]; ok {
			if w != c.Weight {
				return nil, fmt.Errorf("%w: %s—%s listed with %g and %g",
					ErrConflictingWeight, c.A, c.B, w, c.Weight)
			}
			continue
		}
		seen[key] = c.Weight
		g.connections = append(g.connections, c)
	}

	// 4) Adjacency, both directions.
	for _, c = range g.connections {
		g.adjacency[c.A] = append(g.adjacency[c.A], arc{to: c.B, weight: c.Weight})
		g.adjacency[c.B] = append(g.adjacency[c.B], arc{to: c.A, weight: c.Weight})
	}

	return g, nil
}

// validateConnection checks one connection against the registered locations.
func (g *Graph) validateConnection(c Connection) error {
	if _, ok := g.categories[c.A]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, c.A)
	}
	if _, ok := g.categories[c.B]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, c.B)
	}
	if c.A == c.B {
		return fmt.Errorf("%w: %q", ErrSelfLoop, c.A)
	}

	return ValidateWeight(c.Weight)
}

// ValidateWeight reports whether w is usable as a travel time:
// finite and non-negative. NaN is rejected as ErrNegativeWeight.
func ValidateWeight(w float64) error {
	switch {
	case math.IsNaN(w) || w < 0:
		return fmt.Errorf("%w: %g", ErrNegativeWeight, w)
	case math.IsInf(w, 1):
		return ErrInfiniteWeight
	}

	return nil
}

// pairKey is an order-independent key for an undirected pair.
type pairKey struct{ lo, hi string }

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Neighbors returns a lazy sequence of (neighbor ID, weight) pairs reachable
// from id over one connection. An isolated location yields an empty sequence.
//
// Errors:
//   - ErrLocationNotFound if id is not a location of g.
//
// Complexity: O(1) to obtain the sequence, O(deg(id)) to drain it.
func (g *Graph) Neighbors(id string) (iter.Seq2[string, float64], error) {
	if !g.HasLocation(id) {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}
	arcs := g.adjacency[id]

	return func(yield func(string, float64) bool) {
		for _, a := range arcs {
			if !yield(a.to, a.weight) {
				return
			}
		}
	}, nil
}

// Locations returns every location ID, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Locations() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	sort.Strings(out)

	return out
}

// HasLocation reports whether id is a location of g. O(1).
func (g *Graph) HasLocation(id string) bool {
	_, ok := g.categories[id]

	return ok
}

// Category returns the category of id.
func (g *Graph) Category(id string) (Category, error) {
	cat, ok := g.categories[id]
	if !ok {
		return CategoryNone, fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}

	return cat, nil
}

// LocationsByCategory returns the sorted IDs tagged with cat.
func (g *Graph) LocationsByCategory(cat Category) []string {
	out := make([]string, 0)
	for _, id := range g.order {
		if g.categories[id] == cat {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Connections returns a copy of the canonical connection list, one entry per
// undirected pair, in declaration order.
func (g *Graph) Connections() []Connection {
	out := make([]Connection, len(g.connections))
	copy(out, g.connections)

	return out
}

// Weight returns the weight of the connection between a and b, in either order.
//
// Errors:
//   - ErrLocationNotFound if a or b is unknown.
//   - ErrConnectionNotFound if both exist but are not directly connected.
func (g *Graph) Weight(a, b string) (float64, error) {
	if !g.HasLocation(a) {
		return 0, fmt.Errorf("%w: %q", ErrLocationNotFound, a)
	}
	if !g.HasLocation(b) {
		return 0, fmt.Errorf("%w: %q", ErrLocationNotFound, b)
	}
	for _, x := range g.adjacency[a] {
		if x.to == b {
			return x.weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %s—%s", ErrConnectionNotFound, a, b)
}

// Len returns the number of locations.
func (g *Graph) Len() int { return len(g.order) }

// ConnectionCount returns the number of undirected connections.
func (g *Graph) ConnectionCount() int { return len(g.connections) }

// DeclaredLocations returns every Location, categories included, in the
// order they were passed to Build. Feeding it back into Build together with
// Connections() reproduces an equivalent Graph.
func (g *Graph) DeclaredLocations() []Location {
	out := make([]Location, len(g.order))
	for i, id := range g.order {
		out[i] = Location{ID: id, Category: g.categories[id]}
	}

	return out
}
