package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dijkstra"
)

const (
	hospitalA = "Hospital_A"
	hospitalB = "Hospital_B"
	central   = "Intersection_Central"
	market    = "Market"
	school    = "School"
	factory   = "Factory"
	fire      = "FireStation"
)

// city is the sample network, each road listed once.
func city(t testing.TB) *core.Graph {
	t.Helper()
	ids := []string{
		hospitalA, hospitalB, school, market, factory,
		fire, "PoliceStation", "Mall", "Residential_Area", central,
	}
	ls := make([]core.Location, len(ids))
	for i, id := range ids {
		ls[i] = core.Location{ID: id}
	}
	cs := []core.Connection{
		{A: hospitalA, B: central, Weight: 4},
		{A: hospitalA, B: "Mall", Weight: 7},
		{A: hospitalA, B: "PoliceStation", Weight: 8},
		{A: hospitalB, B: "Residential_Area", Weight: 4},
		{A: hospitalB, B: fire, Weight: 6},
		{A: school, B: central, Weight: 5},
		{A: market, B: central, Weight: 4},
		{A: market, B: "Mall", Weight: 3},
		{A: market, B: factory, Weight: 5},
		{A: market, B: fire, Weight: 3},
		{A: factory, B: "Residential_Area", Weight: 6},
		{A: fire, B: central, Weight: 3},
		{A: "PoliceStation", B: "Residential_Area", Weight: 5},
		{A: "Mall", B: "Residential_Area", Weight: 7},
	}
	g, err := core.Build(ls, cs)
	require.NoError(t, err)

	return g
}

func run(t testing.TB, g *core.Graph, source string) *dijkstra.Result {
	t.Helper()
	r, err := dijkstra.ComputeShortestPaths(g, source)
	require.NoError(t, err)

	return r
}
