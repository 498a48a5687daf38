package analysis

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/perturb"
)

// DefaultWorkers bounds ComputeAll's pool when WithWorkers is not given.
const DefaultWorkers = 8

// RunOptions configures ComputeAll and CongestionImpact.
type RunOptions struct {
	Workers int
	Engine  []dijkstra.Option

	err error
}

// RunOption is a functional option for ComputeAll and CongestionImpact.
type RunOption func(*RunOptions)

// WithWorkers sets the pool size. n must be positive.
func WithWorkers(n int) RunOption {
	return func(o *RunOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithEngineOptions forwards opts to every engine call.
func WithEngineOptions(opts ...dijkstra.Option) RunOption {
	return func(o *RunOptions) {
		o.Engine = append(o.Engine, opts...)
	}
}

func gatherRunOptions(opts []RunOption) (RunOptions, error) {
	o := RunOptions{Workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// ComputeAll runs one shortest-path computation per source on a bounded
// worker pool and returns the results in the order of sources.
//
// The graph is shared read-only by every task. The first error (an unknown
// source, or ctx being done before a task starts) is returned and no results
// are. A tracer passed through WithEngineOptions is called from several
// goroutines and must be safe for that.
func ComputeAll(ctx context.Context, g *core.Graph, sources []string, opts ...RunOption) ([]*dijkstra.Result, error) {
	cfg, err := gatherRunOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}

	size := cfg.Workers
	if size > len(sources) {
		size = len(sources)
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("analysis: worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		results  = make([]*dijkstra.Result, len(sources))
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			fail(err)
			break
		}
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			r, err := dijkstra.ComputeShortestPaths(g, src, cfg.Engine...)
			if err != nil {
				fail(fmt.Errorf("source %q: %w", src, err))
				return
			}
			results[i] = r
		})
		if submitErr != nil {
			wg.Done()
			fail(fmt.Errorf("analysis: submit %q: %w", src, submitErr))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

// Impact is the outcome of CongestionImpact.
type Impact struct {
	Source        string
	Perturbations []perturb.Perturbation
	Before        *dijkstra.Result
	After         *dijkstra.Result
	Changes       []RouteChange // one per target, in order
}

// Affected returns the targets whose route or distance changed.
func (im *Impact) Affected() []string {
	var out []string
	for _, c := range im.Changes {
		if c.Changed || c.Delay != 0 {
			out = append(out, c.Target)
		}
	}

	return out
}

// CongestionImpact applies ps to a copy of g, runs the engine from source on
// both graphs (in parallel) and reports a RouteChange for every target.
// g itself is never modified.
func CongestionImpact(ctx context.Context, g *core.Graph, source string, targets []string, ps []perturb.Perturbation, opts ...RunOption) (*Impact, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	cfg, err := gatherRunOptions(opts)
	if err != nil {
		return nil, err
	}
	jammed, err := perturb.Apply(g, ps...)
	if err != nil {
		return nil, err
	}

	var before, after *dijkstra.Result
	pool, err := ants.NewPool(2)
	if err != nil {
		return nil, fmt.Errorf("analysis: worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg         sync.WaitGroup
		errB, errA error
	)
	wg.Add(2)
	if err := pool.Submit(func() {
		defer wg.Done()
		before, errB = dijkstra.ComputeShortestPaths(g, source, cfg.Engine...)
	}); err != nil {
		return nil, fmt.Errorf("analysis: submit: %w", err)
	}
	if err := pool.Submit(func() {
		defer wg.Done()
		after, errA = dijkstra.ComputeShortestPaths(jammed, source, cfg.Engine...)
	}); err != nil {
		wg.Done()
		wg.Wait()
		return nil, fmt.Errorf("analysis: submit: %w", err)
	}
	wg.Wait()
	if errB != nil {
		return nil, errB
	}
	if errA != nil {
		return nil, errA
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	im := &Impact{
		Source:        source,
		Perturbations: append([]perturb.Perturbation(nil), ps...),
		Before:        before,
		After:         after,
		Changes:       make([]RouteChange, 0, len(targets)),
	}
	for _, t := range targets {
		rc, err := DetectRouteChange(before, after, t)
		if err != nil {
			return nil, err
		}
		im.Changes = append(im.Changes, *rc)
	}

	return im, nil
}
