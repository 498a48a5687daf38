// File: clone.go
// Role: Deep copy of an immutable Graph.
// Determinism:
//   - The clone preserves declaration order of locations, connections and arcs.
// Concurrency:
//   - Reads only; safe to call from many goroutines on the same source Graph.

package core

// Clone returns a deep copy of g: locations, categories, connections and
// adjacency. The copy shares no slices or maps with g, so a caller that
// rewrites the copy's internals (see WithWeight) can never alias the source.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		order:       make([]string, len(g.order)),
		categories:  make(map[string]Category, len(g.categories)),
		adjacency:   make(map[string][]arc, len(g.adjacency)),
		connections: make([]Connection, len(g.connections)),
	}
	copy(clone.order, g.order)
	copy(clone.connections, g.connections)

	var (
		id   string
		cat  Category
		arcs []arc
	)
	for id, cat = range g.categories {
		clone.categories[id] = cat
	}
	for id, arcs = range g.adjacency {
		dup := make([]arc, len(arcs))
		copy(dup, arcs)
		clone.adjacency[id] = dup
	}

	return clone
}

// WithWeight returns a deep copy of g in which the connection between a and b
// carries weight w in both directions. g itself is left untouched.
//
// Errors:
//   - ErrLocationNotFound if a or b is unknown.
//   - ErrConnectionNotFound if a and b are not directly connected.
//   - ErrNegativeWeight / ErrInfiniteWeight if w is not a valid weight.
//
// Complexity: O(V + E) for the copy.
func (g *Graph) WithWeight(a, b string, w float64) (*Graph, error) {
	if _, err := g.Weight(a, b); err != nil {
		return nil, err
	}
	if err := ValidateWeight(w); err != nil {
		return nil, err
	}

	clone := g.Clone()
	key := newPairKey(a, b)
	for i, c := range clone.connections {
		if newPairKey(c.A, c.B) == key {
			clone.connections[i].Weight = w
		}
	}
	setArcWeight(clone.adjacency[a], b, w)
	setArcWeight(clone.adjacency[b], a, w)

	return clone, nil
}

func setArcWeight(arcs []arc, to string, w float64) {
	for i := range arcs {
		if arcs[i].to == to {
			arcs[i].weight = w
		}
	}
}
