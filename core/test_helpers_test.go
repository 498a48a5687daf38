// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
)

// Common location IDs used across core tests.
const (
	LocA = "A"
	LocB = "B"
	LocC = "C"
	LocD = "D"
	LocX = "X"
)

// Common weights used across core tests.
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.0
	Weight4 = 4.0
	Weight5 = 5.0
)

// locs turns IDs into uncategorised Locations.
func locs(ids ...string) []core.Location {
	out := make([]core.Location, len(ids))
	for i, id := range ids {
		out[i] = core.Location{ID: id}
	}

	return out
}

// mustBuild builds a graph or fails the test.
func mustBuild(t testing.TB, locations []core.Location, connections []core.Connection) *core.Graph {
	t.Helper()
	g, err := core.Build(locations, connections)
	require.NoError(t, err)

	return g
}

// square returns
//
//	A──1──B
//	│     │
//	4     2
//	│     │
//	D──5──C      plus isolated X
func square(t testing.TB) *core.Graph {
	return mustBuild(t, locs(LocA, LocB, LocC, LocD, LocX), []core.Connection{
		{A: LocA, B: LocB, Weight: Weight1},
		{A: LocB, B: LocC, Weight: Weight2},
		{A: LocC, B: LocD, Weight: Weight5},
		{A: LocD, B: LocA, Weight: Weight4},
	})
}

// collect drains a neighbor sequence into a map.
func collect(t testing.TB, g *core.Graph, id string) map[string]float64 {
	t.Helper()
	seq, err := g.Neighbors(id)
	require.NoError(t, err)
	out := make(map[string]float64)
	for n, w := range seq {
		out[n] = w
	}

	return out
}
