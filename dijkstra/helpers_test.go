package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
)

// cityRoads is the sample emergency-response network, one direction per entry
// exactly as it is usually written down; core.Build merges the mirrors.
var cityRoads = map[string][]struct {
	to string
	w  float64
}{
	"Hospital_A":           {{"Intersection_Central", 4}, {"Mall", 7}, {"PoliceStation", 8}},
	"Hospital_B":           {{"Residential_Area", 4}, {"FireStation", 6}},
	"School":               {{"Intersection_Central", 5}},
	"Market":               {{"Intersection_Central", 4}, {"Mall", 3}, {"Factory", 5}, {"FireStation", 3}},
	"Factory":              {{"Market", 5}, {"Residential_Area", 6}},
	"FireStation":          {{"Intersection_Central", 3}, {"Hospital_B", 6}, {"Market", 3}},
	"PoliceStation":        {{"Residential_Area", 5}, {"Hospital_A", 8}},
	"Mall":                 {{"Market", 3}, {"Hospital_A", 7}, {"Residential_Area", 7}},
	"Residential_Area":     {{"Hospital_B", 4}, {"Factory", 6}, {"PoliceStation", 5}, {"Mall", 7}},
	"Intersection_Central": {{"Hospital_A", 4}, {"School", 5}, {"Market", 4}, {"FireStation", 3}},
}

var cityOrder = []string{
	"Hospital_A", "Hospital_B", "School", "Market", "Factory",
	"FireStation", "PoliceStation", "Mall", "Residential_Area", "Intersection_Central",
}

// cityGraph builds the sample network.
func cityGraph(t testing.TB) *core.Graph {
	t.Helper()
	ls := make([]core.Location, 0, len(cityOrder))
	var cs []core.Connection
	for _, id := range cityOrder {
		ls = append(ls, core.Location{ID: id})
		for _, r := range cityRoads[id] {
			cs = append(cs, core.Connection{A: id, B: r.to, Weight: r.w})
		}
	}
	g, err := core.Build(ls, cs)
	require.NoError(t, err)

	return g
}

// randomGraph builds an n-location graph with roughly m extra random
// connections and integer weights in [0, 9]. Integer weights keep float sums exact.
func randomGraph(t testing.TB, rng *rand.Rand, n, m int) *core.Graph {
	t.Helper()
	ls := make([]core.Location, n)
	for i := range ls {
		ls[i] = core.Location{ID: fmt.Sprintf("v%02d", i)}
	}
	seen := map[[2]int]bool{}
	var cs []core.Connection
	for k := 0; k < m; k++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if seen[[2]int{a, b}] {
			continue
		}
		seen[[2]int{a, b}] = true
		cs = append(cs, core.Connection{A: ls[a].ID, B: ls[b].ID, Weight: float64(rng.Intn(10))})
	}
	g, err := core.Build(ls, cs)
	require.NoError(t, err)

	return g
}

// bruteForce enumerates every simple path from src and returns the minimum
// weight per reachable location.
func bruteForce(g *core.Graph, src string) map[string]float64 {
	best := map[string]float64{}
	onPath := map[string]bool{}
	var walk func(u string, d float64)
	walk = func(u string, d float64) {
		if cur, ok := best[u]; !ok || d < cur {
			best[u] = d
		}
		onPath[u] = true
		seq, _ := g.Neighbors(u)
		for v, w := range seq {
			if !onPath[v] {
				walk(v, d+w)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}
