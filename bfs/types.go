// Package bfs provides tunable options and error definitions
// for hop-count search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start location is absent.
	// It wraps core.ErrLocationNotFound.
	ErrStartNotFound = fmt.Errorf("bfs: start %w", core.ErrLocationNotFound)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a location is enqueued, with its hop count.
	OnEnqueue func(id string, hops int)

	// OnVisit is called when visiting a location. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, hops int) error

	// MaxHops, if > 0, stops exploring beyond this many road segments.
	MaxHops int

	// FilterConnection skips a connection when it returns false.
	// Called for each connection curr→neighbor with its travel minutes.
	FilterConnection func(curr, neighbor string, minutes float64) bool

	err error
}

// DefaultOptions returns background context, no hop limit, no filtering
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		OnEnqueue:        func(string, int) {},
		OnVisit:          func(string, int) error { return nil },
		FilterConnection: func(string, string, float64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops limits the search radius.
//
//	h > 0: at most h road segments from the start
//	h == 0: no limit
//	h < 0: ErrOptionViolation
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MaxHops = h
	}
}

// WithFilterConnection skips connections for which fn returns false,
// e.g. roads slower than a threshold.
func WithFilterConnection(fn func(curr, neighbor string, minutes float64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterConnection = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: locations visited, in visit sequence.
//   - Hops: location → number of road segments from the start.
//   - Parent: location → its predecessor in the BFS tree.
type Result struct {
	Start  string
	Order  []string
	Hops   map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Hops[id]

	return ok
}

// PathTo reconstructs the fewest-segments path from the start to dest.
// Returns an error wrapping core.ErrNotFound if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q: %w", dest, core.ErrNotFound)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
