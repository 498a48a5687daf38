package analysis_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/analysis"
	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/perturb"
)

func TestComputeAll_MatchesSequential(t *testing.T) {
	g := city(t)
	sources := g.Locations()

	got, err := analysis.ComputeAll(context.Background(), g, sources, analysis.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, got, len(sources))
	for i, src := range sources {
		want := run(t, g, src)
		require.Equal(t, src, got[i].Source())
		require.Equal(t, want.Distances(), got[i].Distances(), src)
		for _, id := range sources {
			require.Equal(t, want.PathTo(id), got[i].PathTo(id))
		}
	}
}

func TestComputeAll_EngineOptions(t *testing.T) {
	var settled atomic.Int64
	g := city(t)
	_, err := analysis.ComputeAll(context.Background(), g, []string{hospitalA, hospitalB},
		analysis.WithEngineOptions(
			dijkstra.WithFrontier(dijkstra.FrontierLinear),
			dijkstra.WithTracer(func(e dijkstra.Event) {
				if e.Kind == dijkstra.EventSettled {
					settled.Add(1)
				}
			}),
		))
	require.NoError(t, err)
	assert.Equal(t, int64(20), settled.Load())
}

func TestComputeAll_Errors(t *testing.T) {
	g := city(t)
	ctx := context.Background()

	_, err := analysis.ComputeAll(ctx, g, nil)
	require.ErrorIs(t, err, analysis.ErrNoSources)

	_, err = analysis.ComputeAll(ctx, nil, []string{hospitalA})
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = analysis.ComputeAll(ctx, g, []string{hospitalA}, analysis.WithWorkers(0))
	require.ErrorIs(t, err, analysis.ErrBadWorkers)

	_, err = analysis.ComputeAll(ctx, g, []string{hospitalA, "Airport"})
	require.ErrorIs(t, err, core.ErrNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = analysis.ComputeAll(cancelled, g, []string{hospitalA})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCongestionImpact_City(t *testing.T) {
	g := city(t)
	im, err := analysis.CongestionImpact(context.Background(), g, hospitalA,
		[]string{market, school, factory},
		[]perturb.Perturbation{{A: central, B: market, Weight: 15}},
	)
	require.NoError(t, err)

	require.Len(t, im.Changes, 3)
	assert.True(t, im.Changes[0].Changed)
	assert.Equal(t, 2.0, im.Changes[0].Delay)
	assert.False(t, im.Changes[1].Changed)
	// Factory follows Market: 13 → 15.
	assert.Equal(t, 2.0, im.Changes[2].Delay)
	assert.Equal(t, []string{market, factory}, im.Affected())

	w, err := g.Weight(central, market)
	require.NoError(t, err)
	assert.Equal(t, 4.0, w, "input graph untouched")
}

func TestCongestionImpact_Errors(t *testing.T) {
	g := city(t)
	ctx := context.Background()
	jam := []perturb.Perturbation{{A: central, B: market, Weight: 15}}

	_, err := analysis.CongestionImpact(ctx, g, hospitalA, nil, jam)
	require.ErrorIs(t, err, analysis.ErrNoTargets)

	_, err = analysis.CongestionImpact(ctx, g, hospitalA, []string{market},
		[]perturb.Perturbation{{A: school, B: market, Weight: 1}})
	require.ErrorIs(t, err, core.ErrConnectionNotFound)

	_, err = analysis.CongestionImpact(ctx, g, "Airport", []string{market}, jam)
	require.ErrorIs(t, err, dijkstra.ErrSourceNotFound)

	_, err = analysis.CongestionImpact(ctx, g, hospitalA, []string{"Airport"}, jam)
	require.ErrorIs(t, err, analysis.ErrTargetNotFound)
}
