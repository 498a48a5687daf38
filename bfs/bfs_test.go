package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/bfs"
	"github.com/katalvlaran/cityroute/builder"
	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/loader"
)

func build(t *testing.T, ids []string, conns ...core.Connection) *core.Graph {
	t.Helper()
	ls := make([]core.Location, len(ids))
	for i, id := range ids {
		ls[i] = core.Location{ID: id}
	}
	g, err := core.Build(ls, conns)
	require.NoError(t, err)

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, []string{"A"})
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartNotFound)
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxHops(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleLocation(t *testing.T) {
	res, err := bfs.BFS(build(t, []string{"A"}), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Hops["A"])
	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

// Hops ignore minutes: the one-segment road wins even though it is slow.
func TestBFS_HopsIgnoreMinutes(t *testing.T) {
	g := build(t, []string{"A", "B", "C"},
		core.Connection{A: "A", B: "C", Weight: 50},
		core.Connection{A: "A", B: "B", Weight: 1},
		core.Connection{A: "B", B: "C", Weight: 1},
	)
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, 1, res.Hops["C"])
	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, path)
}

func TestBFS_GridOrder(t *testing.T) {
	_, g, err := builder.Build("grid", nil, builder.Grid(3, 3))
	require.NoError(t, err)
	res, err := bfs.BFS(g, builder.GridID(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"r0c0", "r0c1", "r1c0", "r0c2", "r1c1", "r2c0", "r1c2", "r2c1", "r2c2"}, res.Order)
	assert.Equal(t, 4, res.Hops["r2c2"])
}

func TestBFS_MaxHopsAndFilter(t *testing.T) {
	_, g := loader.Sample()

	res, err := bfs.BFS(g, "Hospital_A", bfs.WithMaxHops(1))
	require.NoError(t, err)
	for id, h := range res.Hops {
		assert.LessOrEqual(t, h, 1, id)
	}
	assert.False(t, res.Reached("Hospital_B"))
	_, err = res.PathTo("Hospital_B")
	require.ErrorIs(t, err, core.ErrNotFound)

	slow := func(_, _ string, minutes float64) bool { return minutes <= 3 }
	res, err = bfs.BFS(g, "Hospital_A", bfs.WithFilterConnection(slow))
	require.NoError(t, err)
	full, err := bfs.BFS(g, "Hospital_A")
	require.NoError(t, err)
	assert.Less(t, len(res.Order), len(full.Order))
}

func TestBFS_Hooks(t *testing.T) {
	_, g, err := builder.Build("ring", nil, builder.Ring(5))
	require.NoError(t, err)

	var enq []string
	stop := errors.New("stop")
	_, err = bfs.BFS(g, "L0",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "L1" {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"L0", "L1", "L4"}, enq)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, g := loader.Sample()
	_, err := bfs.BFS(g, "Hospital_A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := build(t, []string{"D", "A", "C", "B", "E"},
		core.Connection{A: "A", B: "C", Weight: 1},
		core.Connection{A: "D", B: "E", Weight: 2},
	)
	assert.Equal(t, [][]string{{"A", "C"}, {"B"}, {"D", "E"}}, bfs.Components(g))
	assert.False(t, bfs.Connected(g))

	_, sample := loader.Sample()
	assert.True(t, bfs.Connected(sample))
	assert.Nil(t, bfs.Components(nil))
}
