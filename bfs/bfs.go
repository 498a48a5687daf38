// Package bfs counts road segments rather than minutes: fewest-hops paths,
// reachability and connected components of a core.Graph.
package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/cityroute/core"
)

type queueItem struct {
	id   string
	hops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or the wrapped error of an OnVisit hook.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasLocation(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, hops int, parent string) {
	w.visited[id] = true
	w.res.Hops[id] = hops
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, hops)
	w.queue = append(w.queue, queueItem{id: id, hops: hops})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.hops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues unseen neighbors in ID order, so the visit
// sequence does not depend on how connections were declared.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.hops + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return nil
	}
	seq, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	var ids []string
	for nbr, minutes := range seq {
		if w.visited[nbr] || !w.opts.FilterConnection(item.id, nbr, minutes) {
			continue
		}
		ids = append(ids, nbr)
	}
	slices.Sort(ids)
	for _, nbr := range ids {
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}

// Components partitions g into connected components. Each component is
// sorted, and components are ordered by their smallest location ID.
// A nil graph has no components.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	seen := make(map[string]bool, g.Len())
	var out [][]string
	for _, id := range g.Locations() {
		if seen[id] {
			continue
		}
		// id exists, so BFS cannot fail.
		res, _ := BFS(g, id)
		comp := slices.Clone(res.Order)
		for _, v := range comp {
			seen[v] = true
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}

// Connected reports whether every location of g reaches every other.
// An empty graph counts as connected.
func Connected(g *core.Graph) bool {
	return len(Components(g)) <= 1
}
