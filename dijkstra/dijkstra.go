// Package dijkstra implements the single-source shortest-path engine over a core.Graph.
//
// The engine settles locations in order of increasing distance from the source,
// relaxing every connection out of each settled location. All weights in a
// core.Graph are finite and non-negative (enforced by core.Build), which is
// exactly the condition under which a settled distance can never improve.
//
// Complexity:
//
//   - FrontierHeap:   O((V + E) log V) time, O(V + E) space (lazy decrease-key).
//   - FrontierLinear: O(V² + E) time, O(V) space.
//
// Notes on implementation choices:
//
//   - Ties are broken by location ID: among equal distances the smaller ID is
//     settled first. The rule ignores insertion order, so both frontiers settle
//     locations in the same sequence and report identical paths.
//   - Relaxation uses strict "<": an equal-cost alternative never replaces the
//     path already recorded.
//   - Predecessors are stored during the run; paths are materialised once at the end.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// ComputeShortestPaths computes the minimum travel time and one shortest path
// from source to every location of g.
//
// Returns a Result covering every location: reachable ones carry their
// distance and path; the rest carry Unreachable and an empty path.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. source must be non-empty (ErrEmptySource).
//  4. g must contain source (ErrSourceNotFound, which is a core.ErrNotFound).
//
// There is no partial result: either every reachable location is settled or an
// error is returned before any work starts.
//
// The call is synchronous and touches no shared mutable state, so independent
// calls on the same Graph may run in parallel.
func ComputeShortestPaths(g *core.Graph, source string, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasLocation(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	// 3) Prepare state.
	V := g.Len()
	r := &runner{
		g:       g,
		source:  source,
		trace:   cfg.Tracer,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		settled: make(map[string]bool, V),
		order:   make([]string, 0, V),
	}
	switch cfg.Frontier {
	case FrontierLinear:
		r.frontier = newLinearFrontier(V)
	default:
		r.frontier = newHeapFrontier(V)
	}

	// 4) Run.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return newResult(source, r.dist, r.prev, r.order), nil
}

// frontier yields the unsettled candidate with the smallest (distance, ID).
// Implementations may return stale entries; the runner skips settled IDs.
type frontier interface {
	push(id string, d float64)
	pop() (id string, d float64, ok bool)
}

// runner holds the mutable state for a single computation.
type runner struct {
	g        *core.Graph
	source   string
	trace    func(Event)
	dist     map[string]float64 // best-known distance; final once settled
	prev     map[string]string  // predecessor on the recorded shortest path
	settled  map[string]bool
	order    []string // settle sequence
	frontier frontier
}

// init sets every distance to Unreachable, the source to 0, and seeds the frontier.
func (r *runner) init() {
	for _, v := range r.g.Locations() {
		r.dist[v] = Unreachable
	}
	r.dist[r.source] = 0
	r.frontier.push(r.source, 0)
}

// process settles locations until the frontier is exhausted.
func (r *runner) process() error {
	for {
		u, d, ok := r.frontier.pop()
		if !ok {
			return nil
		}
		// Stale heap entry for a location already finalised.
		if r.settled[u] {
			continue
		}
		r.settled[u] = true
		r.order = append(r.order, u)
		r.emit(Event{Kind: EventSettled, Step: len(r.order), Location: u, Distance: d})

		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax tries to improve every unsettled neighbor of the settled location u.
func (r *runner) relax(u string) error {
	seq, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for v, w := range seq {
		if r.settled[v] {
			continue
		}
		nd := du + w
		old := r.dist[v]
		if nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.frontier.push(v, nd)
		r.emit(Event{
			Kind:     EventRelaxed,
			Step:     len(r.order),
			Location: v,
			From:     u,
			Weight:   w,
			Previous: old,
			Distance: nd,
		})
	}

	return nil
}

func (r *runner) emit(e Event) {
	if r.trace != nil {
		r.trace(e)
	}
}

// less orders candidates by distance, then by location ID.
func less(d1 float64, id1 string, d2 float64, id2 string) bool {
	if d1 != d2 {
		return d1 < d2
	}

	return id1 < id2
}

// ---------------------------------------------------------------------------
// Heap frontier
// ---------------------------------------------------------------------------

// nodeItem represents a location and a candidate distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
// Under lazy decrease-key an improved distance is pushed as a new item and the
// outdated one is skipped when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	return less(pq[i].dist, pq[i].id, pq[j].dist, pq[j].id)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

type heapFrontier struct{ pq nodePQ }

func newHeapFrontier(capacity int) *heapFrontier {
	return &heapFrontier{pq: make(nodePQ, 0, capacity)}
}

func (h *heapFrontier) push(id string, d float64) {
	heap.Push(&h.pq, nodeItem{id: id, dist: d})
}

func (h *heapFrontier) pop() (string, float64, bool) {
	if h.pq.Len() == 0 {
		return "", 0, false
	}
	item := heap.Pop(&h.pq).(nodeItem)

	return item.id, item.dist, true
}

// ---------------------------------------------------------------------------
// Linear frontier
// ---------------------------------------------------------------------------

// linearFrontier keeps one entry per discovered-but-unsettled location and
// scans all of them on every pop. O(V) per pop, O(V²) per computation.
type linearFrontier struct {
	cand map[string]float64
}

func newLinearFrontier(capacity int) *linearFrontier {
	return &linearFrontier{cand: make(map[string]float64, capacity)}
}

// push records d; callers only ever push improvements, so d replaces any older value.
func (l *linearFrontier) push(id string, d float64) { l.cand[id] = d }

func (l *linearFrontier) pop() (string, float64, bool) {
	var (
		best  string
		bestD float64
		found bool
	)
	for id, d := range l.cand {
		if !found || less(d, id, bestD, best) {
			best, bestD, found = id, d, true
		}
	}
	if found {
		delete(l.cand, best)
	}

	return best, bestD, found
}
