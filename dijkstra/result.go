package dijkstra

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cityroute/core"
)

// Result is the outcome of one shortest-path computation from Source.
//
// It covers every location of the graph it was computed on:
//
//   - Distance(Source) == 0 and PathTo(Source) == [Source].
//   - A reachable L has a finite distance and a path [Source, …, L] whose
//     edge-weight sum equals that distance.
//   - An unreachable L has distance Unreachable and an empty path.
//
// A Result is immutable; accessors return copies.
type Result struct {
	source string
	dist   map[string]float64
	paths  map[string][]string
	order  []string
}

// newResult materialises paths from the predecessor map.
func newResult(source string, dist map[string]float64, prev map[string]string, order []string) *Result {
	paths := make(map[string][]string, len(dist))
	for v, d := range dist {
		if IsUnreachable(d) {
			paths[v] = []string{}
			continue
		}
		paths[v] = walkBack(source, v, prev)
	}

	return &Result{source: source, dist: dist, paths: paths, order: order}
}

// walkBack follows predecessors from v to source and returns the forward path.
func walkBack(source, v string, prev map[string]string) []string {
	path := []string{v}
	for cur := v; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// NewResult assembles a Result from stored distances and paths, for example
// when reloading a persisted run. Every key of paths must also be a key of
// distances; a location with an Unreachable distance must have an empty path.
func NewResult(source string, distances map[string]float64, paths map[string][]string) (*Result, error) {
	if d, ok := distances[source]; !ok || d != 0 {
		return nil, fmt.Errorf("%w: source %q must have distance 0", core.ErrValidation, source)
	}
	dist := make(map[string]float64, len(distances))
	ps := make(map[string][]string, len(distances))
	for id, d := range distances {
		dist[id] = d
		p := paths[id]
		if IsUnreachable(d) != (len(p) == 0) {
			return nil, fmt.Errorf("%w: location %q: distance and path disagree", core.ErrValidation, id)
		}
		ps[id] = append([]string{}, p...)
	}
	for id := range paths {
		if _, ok := dist[id]; !ok {
			return nil, fmt.Errorf("%w: path for unknown location %q", core.ErrValidation, id)
		}
	}

	return &Result{source: source, dist: dist, paths: ps}, nil
}

// Source returns the location the computation started from.
func (r *Result) Source() string { return r.source }

// Has reports whether id is a location covered by the result.
func (r *Result) Has(id string) bool {
	_, ok := r.dist[id]

	return ok
}

// Distance returns the shortest distance to id, Unreachable if id cannot be
// reached, and ok == false if id is not a location of the graph.
func (r *Result) Distance(id string) (d float64, ok bool) {
	d, ok = r.dist[id]
	if !ok {
		return Unreachable, false
	}

	return d, true
}

// Reachable reports whether id has a finite distance.
func (r *Result) Reachable(id string) bool {
	d, ok := r.dist[id]

	return ok && !IsUnreachable(d)
}

// PathTo returns a copy of the recorded shortest path to id.
// It is empty when id is unreachable or unknown.
func (r *Result) PathTo(id string) []string {
	p := r.paths[id]
	out := make([]string, len(p))
	copy(out, p)

	return out
}

// Locations returns every covered location, sorted.
func (r *Result) Locations() []string {
	out := make([]string, 0, len(r.dist))
	for id := range r.dist {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Distances returns a copy of the distance table.
func (r *Result) Distances() map[string]float64 {
	out := make(map[string]float64, len(r.dist))
	for id, d := range r.dist {
		out[id] = d
	}

	return out
}

// SettleOrder returns the sequence in which locations were settled.
// It is empty for a Result rebuilt with NewResult.
func (r *Result) SettleOrder() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// PathWeight sums the connection weights along path in g.
// An empty path weighs Unreachable; a single location weighs 0.
//
// Errors:
//   - core.ErrLocationNotFound / core.ErrConnectionNotFound if two consecutive
//     locations are not directly connected.
func PathWeight(g *core.Graph, path []string) (float64, error) {
	if len(path) == 0 {
		return Unreachable, nil
	}
	if !g.HasLocation(path[0]) {
		return 0, fmt.Errorf("%w: %q", core.ErrLocationNotFound, path[0])
	}
	var sum float64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}
