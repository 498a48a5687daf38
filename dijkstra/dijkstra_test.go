// Package dijkstra_test contains unit and property tests for the shortest-path engine.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestCompute_NilGraph(t *testing.T) {
	_, err := dijkstra.ComputeShortestPaths(nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestCompute_EmptySource(t *testing.T) {
	g := cityGraph(t)
	_, err := dijkstra.ComputeShortestPaths(g, "")
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
	require.ErrorIs(t, err, core.ErrValidation)
}

func TestCompute_SourceNotFound(t *testing.T) {
	g := cityGraph(t)
	res, err := dijkstra.ComputeShortestPaths(g, "Airport")
	require.Nil(t, res, "no partial result on failure")
	require.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestCompute_BadFrontier(t *testing.T) {
	g := cityGraph(t)
	_, err := dijkstra.ComputeShortestPaths(g, "Hospital_A", dijkstra.WithFrontier(dijkstra.Frontier(9)))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

func TestParseFrontier(t *testing.T) {
	f, err := dijkstra.ParseFrontier("linear")
	require.NoError(t, err)
	require.Equal(t, dijkstra.FrontierLinear, f)
	require.Equal(t, "linear", f.String())

	f, err = dijkstra.ParseFrontier("")
	require.NoError(t, err)
	require.Equal(t, dijkstra.FrontierHeap, f)

	_, err = dijkstra.ParseFrontier("fibonacci")
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Sample network
// ------------------------------------------------------------------------

func TestCompute_CityFromHospitalA(t *testing.T) {
	g := cityGraph(t)
	for _, f := range []dijkstra.Frontier{dijkstra.FrontierHeap, dijkstra.FrontierLinear} {
		t.Run(f.String(), func(t *testing.T) {
			res, err := dijkstra.ComputeShortestPaths(g, "Hospital_A", dijkstra.WithFrontier(f))
			require.NoError(t, err)

			want := map[string]struct {
				d    float64
				path []string
			}{
				"Hospital_A":           {0, []string{"Hospital_A"}},
				"Intersection_Central": {4, []string{"Hospital_A", "Intersection_Central"}},
				"FireStation":          {7, []string{"Hospital_A", "Intersection_Central", "FireStation"}},
				"Mall":                 {7, []string{"Hospital_A", "Mall"}},
				"Market":               {8, []string{"Hospital_A", "Intersection_Central", "Market"}},
				"PoliceStation":        {8, []string{"Hospital_A", "PoliceStation"}},
				"School":               {9, []string{"Hospital_A", "Intersection_Central", "School"}},
				"Factory":              {13, []string{"Hospital_A", "Intersection_Central", "Market", "Factory"}},
				"Hospital_B":           {13, []string{"Hospital_A", "Intersection_Central", "FireStation", "Hospital_B"}},
				"Residential_Area":     {13, []string{"Hospital_A", "PoliceStation", "Residential_Area"}},
			}
			for id, w := range want {
				d, ok := res.Distance(id)
				require.True(t, ok, id)
				assert.Equal(t, w.d, d, "distance to %s", id)
				assert.Equal(t, w.path, res.PathTo(id), "path to %s", id)
			}
			require.Equal(t, []string{
				"Hospital_A", "Intersection_Central", "FireStation", "Mall", "Market",
				"PoliceStation", "School", "Factory", "Hospital_B", "Residential_Area",
			}, res.SettleOrder())
		})
	}
}

func TestCompute_CongestedMarketRoad(t *testing.T) {
	g := cityGraph(t)
	before, err := dijkstra.ComputeShortestPaths(g, "Hospital_A")
	require.NoError(t, err)

	jammed, err := g.WithWeight("Intersection_Central", "Market", 15)
	require.NoError(t, err)
	after, err := dijkstra.ComputeShortestPaths(jammed, "Hospital_A")
	require.NoError(t, err)

	d, _ := after.Distance("Market")
	require.Equal(t, 10.0, d)
	require.Equal(t, []string{"Hospital_A", "Intersection_Central", "FireStation", "Market"}, after.PathTo("Market"))

	// earlier result untouched
	d, _ = before.Distance("Market")
	require.Equal(t, 8.0, d)
	require.Equal(t, []string{"Hospital_A", "Intersection_Central", "Market"}, before.PathTo("Market"))
}

// ------------------------------------------------------------------------
// 3. Edge cases
// ------------------------------------------------------------------------

func TestCompute_UnreachableLocation(t *testing.T) {
	g, err := core.Build(
		[]core.Location{{ID: "A"}, {ID: "B"}, {ID: "Island"}},
		[]core.Connection{{A: "A", B: "B", Weight: 2}},
	)
	require.NoError(t, err)

	res, err := dijkstra.ComputeShortestPaths(g, "A")
	require.NoError(t, err)

	d, ok := res.Distance("Island")
	require.True(t, ok)
	require.True(t, dijkstra.IsUnreachable(d))
	require.True(t, math.IsInf(d, 1))
	require.False(t, res.Reachable("Island"))
	require.Empty(t, res.PathTo("Island"))
	require.NotContains(t, res.SettleOrder(), "Island")

	_, ok = res.Distance("Nowhere")
	require.False(t, ok)
	require.False(t, res.Has("Nowhere"))
}

func TestCompute_SingleLocation(t *testing.T) {
	g, err := core.Build([]core.Location{{ID: "Solo"}}, nil)
	require.NoError(t, err)
	res, err := dijkstra.ComputeShortestPaths(g, "Solo")
	require.NoError(t, err)
	d, _ := res.Distance("Solo")
	require.Zero(t, d)
	require.Equal(t, []string{"Solo"}, res.PathTo("Solo"))
}

func TestCompute_ZeroWeights(t *testing.T) {
	g, err := core.Build(
		[]core.Location{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		[]core.Connection{{A: "A", B: "B", Weight: 0}, {A: "B", B: "C", Weight: 0}, {A: "A", B: "C", Weight: 1}},
	)
	require.NoError(t, err)
	res, err := dijkstra.ComputeShortestPaths(g, "A")
	require.NoError(t, err)
	d, _ := res.Distance("C")
	require.Zero(t, d)
	require.Equal(t, []string{"A", "B", "C"}, res.PathTo("C"))
}

func TestCompute_TieBreakByLocationID(t *testing.T) {
	// S reaches T through either M or N at cost 2; N is declared first,
	// M < N lexicographically, so M is settled first and wins.
	g, err := core.Build(
		[]core.Location{{ID: "S"}, {ID: "N"}, {ID: "M"}, {ID: "T"}},
		[]core.Connection{
			{A: "S", B: "N", Weight: 1}, {A: "S", B: "M", Weight: 1},
			{A: "N", B: "T", Weight: 1}, {A: "M", B: "T", Weight: 1},
		},
	)
	require.NoError(t, err)
	for _, f := range []dijkstra.Frontier{dijkstra.FrontierHeap, dijkstra.FrontierLinear} {
		res, err := dijkstra.ComputeShortestPaths(g, "S", dijkstra.WithFrontier(f))
		require.NoError(t, err)
		require.Equal(t, []string{"S", "M", "T"}, res.PathTo("T"), f.String())
	}
}

func TestResult_AccessorsReturnCopies(t *testing.T) {
	g := cityGraph(t)
	res, err := dijkstra.ComputeShortestPaths(g, "Hospital_A")
	require.NoError(t, err)

	p := res.PathTo("Market")
	p[0] = "tampered"
	require.Equal(t, "Hospital_A", res.PathTo("Market")[0])

	ds := res.Distances()
	ds["Market"] = -1
	d, _ := res.Distance("Market")
	require.Equal(t, 8.0, d)

	require.Equal(t, g.Locations(), res.Locations())
	require.Equal(t, "Hospital_A", res.Source())
}

// ------------------------------------------------------------------------
// 4. Tracing
// ------------------------------------------------------------------------

func TestCompute_TracerStream(t *testing.T) {
	g := cityGraph(t)
	rec := &dijkstra.Recorder{}
	var count int
	res, err := dijkstra.ComputeShortestPaths(g, "Hospital_A",
		dijkstra.WithTracer(rec.Record),
		dijkstra.WithTracer(func(dijkstra.Event) { count++ }),
		dijkstra.WithTracer(nil),
	)
	require.NoError(t, err)
	require.Equal(t, len(rec.Events), count, "every subscriber sees every event")

	first := rec.Events[0]
	require.Equal(t, dijkstra.EventSettled, first.Kind)
	require.Equal(t, "Hospital_A", first.Location)
	require.Equal(t, 1, first.Step)
	require.Zero(t, first.Distance)

	second := rec.Events[1]
	require.Equal(t, dijkstra.EventRelaxed, second.Kind)
	require.Equal(t, "Hospital_A", second.From)
	require.Equal(t, "Intersection_Central", second.Location)
	require.Equal(t, 4.0, second.Weight)
	require.True(t, dijkstra.IsUnreachable(second.Previous))
	require.Equal(t, 4.0, second.Distance)

	require.Equal(t, res.SettleOrder(), rec.Settled())
	for _, e := range rec.Events {
		if e.Kind == dijkstra.EventRelaxed {
			require.Less(t, e.Distance, e.Previous, "relax events only report strict improvements")
		}
	}
}

func TestEventKindString(t *testing.T) {
	require.Equal(t, "settled", dijkstra.EventSettled.String())
	require.Equal(t, "relaxed", dijkstra.EventRelaxed.String())
	require.Equal(t, "unknown", dijkstra.EventKind(0).String())
}

// ------------------------------------------------------------------------
// 5. Properties on random graphs
// ------------------------------------------------------------------------

func TestProperty_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 40; round++ {
		g := randomGraph(t, rng, 7, 12)
		src := g.Locations()[rng.Intn(g.Len())]
		res, err := dijkstra.ComputeShortestPaths(g, src)
		require.NoError(t, err)

		best := bruteForce(g, src)
		for _, id := range g.Locations() {
			d, _ := res.Distance(id)
			want, reachable := best[id]
			if !reachable {
				require.True(t, dijkstra.IsUnreachable(d), "round %d: %s should be unreachable", round, id)
				require.Empty(t, res.PathTo(id))
				continue
			}
			require.Equal(t, want, d, "round %d: distance to %s", round, id)

			path := res.PathTo(id)
			require.Equal(t, src, path[0])
			require.Equal(t, id, path[len(path)-1])
			pw, err := dijkstra.PathWeight(g, path)
			require.NoError(t, err)
			require.Equal(t, d, pw, "round %d: path weight to %s", round, id)
		}
		d, _ := res.Distance(src)
		require.Zero(t, d)
		require.Equal(t, []string{src}, res.PathTo(src))
	}
}

func TestProperty_FrontiersAgreeAndIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 30; round++ {
		g := randomGraph(t, rng, 30, 80)
		src := g.Locations()[rng.Intn(g.Len())]

		h1, err := dijkstra.ComputeShortestPaths(g, src)
		require.NoError(t, err)
		h2, err := dijkstra.ComputeShortestPaths(g, src)
		require.NoError(t, err)
		lin, err := dijkstra.ComputeShortestPaths(g, src, dijkstra.WithFrontier(dijkstra.FrontierLinear))
		require.NoError(t, err)

		require.Equal(t, h1.Distances(), h2.Distances())
		require.Equal(t, h1.Distances(), lin.Distances())
		require.Equal(t, h1.SettleOrder(), lin.SettleOrder())
		for _, id := range g.Locations() {
			require.Equal(t, h1.PathTo(id), h2.PathTo(id))
			require.Equal(t, h1.PathTo(id), lin.PathTo(id))
		}
	}
}

func TestProperty_MonotoneUnderWeightIncrease(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 30; round++ {
		g := randomGraph(t, rng, 12, 30)
		conns := g.Connections()
		if len(conns) == 0 {
			continue
		}
		c := conns[rng.Intn(len(conns))]
		src := g.Locations()[rng.Intn(g.Len())]

		before, err := dijkstra.ComputeShortestPaths(g, src)
		require.NoError(t, err)
		heavier, err := g.WithWeight(c.A, c.B, c.Weight+float64(1+rng.Intn(20)))
		require.NoError(t, err)
		after, err := dijkstra.ComputeShortestPaths(heavier, src)
		require.NoError(t, err)

		for _, id := range g.Locations() {
			db, _ := before.Distance(id)
			da, _ := after.Distance(id)
			require.GreaterOrEqual(t, da, db, "round %d: %s got closer after a weight increase", round, id)
		}
	}
}

// ------------------------------------------------------------------------
// 6. Helpers
// ------------------------------------------------------------------------

func TestPathWeight(t *testing.T) {
	g := cityGraph(t)
	w, err := dijkstra.PathWeight(g, []string{"Hospital_A", "Intersection_Central", "FireStation", "Market"})
	require.NoError(t, err)
	require.Equal(t, 10.0, w)

	w, err = dijkstra.PathWeight(g, []string{"School"})
	require.NoError(t, err)
	require.Zero(t, w)

	w, err = dijkstra.PathWeight(g, nil)
	require.NoError(t, err)
	require.True(t, dijkstra.IsUnreachable(w))

	_, err = dijkstra.PathWeight(g, []string{"School", "Market"})
	require.ErrorIs(t, err, core.ErrConnectionNotFound)

	_, err = dijkstra.PathWeight(g, []string{"Airport"})
	require.ErrorIs(t, err, core.ErrLocationNotFound)
}

func TestNewResult(t *testing.T) {
	inf := dijkstra.Unreachable
	res, err := dijkstra.NewResult("A",
		map[string]float64{"A": 0, "B": 3, "C": inf},
		map[string][]string{"A": {"A"}, "B": {"A", "B"}},
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.PathTo("B"))
	require.False(t, res.Reachable("C"))
	require.Empty(t, res.SettleOrder())

	_, err = dijkstra.NewResult("A", map[string]float64{"A": 1}, map[string][]string{"A": {"A"}})
	require.ErrorIs(t, err, core.ErrValidation)

	_, err = dijkstra.NewResult("A", map[string]float64{"A": 0, "B": 2}, map[string][]string{"A": {"A"}})
	require.ErrorIs(t, err, core.ErrValidation)

	_, err = dijkstra.NewResult("A", map[string]float64{"A": 0}, map[string][]string{"A": {"A"}, "Z": {"A", "Z"}})
	require.ErrorIs(t, err, core.ErrValidation)
}
