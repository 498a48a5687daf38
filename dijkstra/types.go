// Package dijkstra defines the options, trace events and sentinel errors
// for the single-source shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cityroute/core"
)

// Unreachable is the distance reported for a location that has no path from
// the source. It is +Inf so that ordinary comparisons sort it last.
var Unreachable = math.Inf(1)

// IsUnreachable reports whether d is the Unreachable sentinel.
func IsUnreachable(d float64) bool { return math.IsInf(d, 1) }

// Sentinel errors returned by ComputeShortestPaths.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the source location ID is empty.
	ErrEmptySource = fmt.Errorf("%w: dijkstra: source location ID is empty", core.ErrValidation)

	// ErrSourceNotFound indicates that the source is not a location of the graph.
	// It wraps core.ErrLocationNotFound and therefore core.ErrNotFound.
	ErrSourceNotFound = fmt.Errorf("dijkstra: source %w", core.ErrLocationNotFound)

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Frontier selects how the next location to settle is found.
type Frontier int

const (
	// FrontierHeap keeps candidates in a binary min-heap with lazy decrease-key.
	// O((V + E) log V). This is the default and the general-purpose choice.
	FrontierHeap Frontier = iota

	// FrontierLinear scans every candidate on each extraction: O(V²) overall.
	// Acceptable only for very small graphs; useful as an independent cross-check
	// because it reports exactly the same distances and paths as FrontierHeap.
	FrontierLinear
)

// String returns the flag-friendly name of f.
func (f Frontier) String() string {
	switch f {
	case FrontierHeap:
		return "heap"
	case FrontierLinear:
		return "linear"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier maps "heap" / "linear" to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch s {
	case "", "heap":
		return FrontierHeap, nil
	case "linear":
		return FrontierLinear, nil
	default:
		return FrontierHeap, fmt.Errorf("%w: unknown frontier %q", ErrOptionViolation, s)
	}
}

// EventKind distinguishes trace events.
type EventKind int

const (
	// EventSettled: Location's distance became final.
	EventSettled EventKind = iota + 1

	// EventRelaxed: a strictly shorter path to Location was found via From.
	EventRelaxed
)

// String returns "settled" or "relaxed".
func (k EventKind) String() string {
	switch k {
	case EventSettled:
		return "settled"
	case EventRelaxed:
		return "relaxed"
	default:
		return "unknown"
	}
}

// Event is one step of a shortest-path computation, delivered to a tracer.
//
//	Settled: Step (1-based settle index), Location, Distance.
//	Relaxed: Step of the settling location, From, Location, Weight,
//	         Previous (old distance, possibly Unreachable) and Distance (new).
type Event struct {
	Kind     EventKind
	Step     int
	Location string
	From     string
	Weight   float64
	Previous float64
	Distance float64
}

// Options configures ComputeShortestPaths.
type Options struct {
	// Frontier selects heap (default) or linear-scan extraction.
	Frontier Frontier

	// Tracer, if non-nil, receives every settle and relax event in order.
	// It observes the computation and cannot change its result.
	Tracer func(Event)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for ComputeShortestPaths.
type Option func(*Options)

// DefaultOptions returns heap extraction and no tracer.
func DefaultOptions() Options {
	return Options{Frontier: FrontierHeap}
}

// WithFrontier selects the extraction strategy. Unknown values are recorded
// and surfaced as ErrOptionViolation when the computation starts.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		switch f {
		case FrontierHeap, FrontierLinear:
			o.Frontier = f
		default:
			o.err = fmt.Errorf("%w: frontier %d", ErrOptionViolation, int(f))
		}
	}
}

// WithTracer subscribes fn to the event stream. A nil fn is ignored.
// Several WithTracer options fan out to every subscriber in order.
func WithTracer(fn func(Event)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		if prev := o.Tracer; prev != nil {
			o.Tracer = func(e Event) {
				prev(e)
				fn(e)
			}
			return
		}
		o.Tracer = fn
	}
}

// Recorder collects events for later inspection.
//
//	rec := &dijkstra.Recorder{}
//	res, err := dijkstra.ComputeShortestPaths(g, "A", dijkstra.WithTracer(rec.Record))
type Recorder struct {
	Events []Event
}

// Record appends e. Pass rec.Record to WithTracer.
func (r *Recorder) Record(e Event) { r.Events = append(r.Events, e) }

// Settled returns the locations in the order they were settled.
func (r *Recorder) Settled() []string {
	out := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		if e.Kind == EventSettled {
			out = append(out, e.Location)
		}
	}

	return out
}
