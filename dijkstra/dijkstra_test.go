// Package dijkstra_test contains unit and property tests for the Dijkstra
// implementation: the sample scenario, isolated and unknown start nodes,
// lazily discovered targets, options, and relaxation invariants over random
// graphs.
package dijkstra_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/route"
)

// ------------------------------------------------------------------------
// 1. Sample graph scenario.
// ------------------------------------------------------------------------

func TestShortestPaths_SampleGraph(t *testing.T) {
	g := builder.SampleGraph()
	dist, prev := dijkstra.ShortestPaths(g, "A")

	want := dijkstra.Distances{"A": 0, "B": 7, "C": 9, "D": 20, "E": 20, "F": 11}
	assert.Equal(t, want, dist)
	assert.Equal(t, dijkstra.Predecessors{"B": "A", "C": "A", "D": "C", "E": "F", "F": "C"}, prev)

	path := route.Reconstruct(prev, "A", "D")
	assert.Equal(t, []string{"A", "C", "D"}, path)
	cost, err := route.Cost(g, path)
	require.NoError(t, err)
	assert.Equal(t, int64(20), cost)
}

func TestShortestPaths_DoesNotMutateGraph(t *testing.T) {
	g := builder.SampleGraph()
	before := g.Clone()
	_, _ = dijkstra.ShortestPaths(g, "A")
	assert.Equal(t, before, g)
}

// ------------------------------------------------------------------------
// 2. Start node edge cases.
// ------------------------------------------------------------------------

func TestShortestPaths_StartWithoutEdges(t *testing.T) {
	g := builder.SampleGraph()
	require.NoError(t, g.AddVertex("S"))

	dist, prev := dijkstra.ShortestPaths(g, "S")

	assert.Equal(t, int64(0), dist["S"])
	for _, v := range []string{"A", "B", "C", "D", "E", "F"} {
		assert.Equal(t, dijkstra.Infinity, dist[v], "dist[%s]", v)
		assert.False(t, dist.Reachable(v))
		assert.Nil(t, route.Reconstruct(prev, "S", v))
	}
	assert.Empty(t, prev)
}

func TestShortestPaths_UnknownStart(t *testing.T) {
	g := core.Graph{"A": {"B": 1}}
	dist, prev := dijkstra.ShortestPaths(g, "Z")

	assert.Equal(t, dijkstra.Distances{"A": dijkstra.Infinity, "Z": 0}, dist)
	assert.Empty(t, prev)
	assert.Equal(t, []string{"Z"}, route.Reconstruct(prev, "Z", "Z"))
	assert.Nil(t, route.Reconstruct(prev, "Z", "B"))
}

func TestShortestPaths_NilGraph(t *testing.T) {
	dist, prev := dijkstra.ShortestPaths(nil, "A")
	assert.Equal(t, dijkstra.Distances{"A": 0}, dist)
	assert.Empty(t, prev)
}

// ------------------------------------------------------------------------
// 3. Lazy discovery of target-only nodes.
// ------------------------------------------------------------------------

func TestShortestPaths_TargetOnlyNodes(t *testing.T) {
	// T is never a top-level key; U is a target of an unreachable vertex.
	g := core.Graph{
		"A": {"T": 4},
		"X": {"U": 1},
	}
	dist, prev := dijkstra.ShortestPaths(g, "A")

	assert.Equal(t, int64(4), dist["T"])
	assert.Equal(t, "A", prev["T"])
	assert.Equal(t, dijkstra.Infinity, dist["X"])

	_, discovered := dist["U"]
	assert.False(t, discovered, "unreachable target-only node must not be pre-seeded")
	assert.False(t, dist.Reachable("U"))
}

// ------------------------------------------------------------------------
// 4. Stale entries and ties.
// ------------------------------------------------------------------------

func TestShortestPaths_StaleEntrySkipped(t *testing.T) {
	// B is first pushed at 10, then improved to 2 via C.
	g := core.Graph{
		"A": {"B": 10, "C": 1},
		"C": {"B": 1},
		"B": {"D": 1},
	}
	var settled []string
	dist, prev, err := dijkstra.Dijkstra(g, "A",
		dijkstra.WithOnSettle(func(id string, _ int64) { settled = append(settled, id) }))
	require.NoError(t, err)

	assert.Equal(t, int64(2), dist["B"])
	assert.Equal(t, int64(3), dist["D"])
	assert.Equal(t, "C", prev["B"])
	assert.Equal(t, []string{"A", "C", "B", "D"}, settled, "every node settles exactly once")
}

func TestShortestPaths_EqualCostPathsAreValid(t *testing.T) {
	g := core.Graph{
		"S": {"L": 1, "R": 1},
		"L": {"T": 1},
		"R": {"T": 1},
	}
	dist, prev := dijkstra.ShortestPaths(g, "S")
	assert.Equal(t, int64(2), dist["T"])

	path := route.Reconstruct(prev, "S", "T")
	cost, err := route.Cost(g, path)
	require.NoError(t, err)
	assert.Equal(t, dist["T"], cost)
}

func TestShortestPaths_ZeroWeightsAndSelfLoop(t *testing.T) {
	g := core.Graph{
		"A": {"A": 0, "B": 0},
		"B": {"C": 0},
	}
	dist, prev := dijkstra.ShortestPaths(g, "A")
	assert.Equal(t, dijkstra.Distances{"A": 0, "B": 0, "C": 0}, dist)
	_, hasStart := prev["A"]
	assert.False(t, hasStart, "start must not gain a predecessor")
	assert.Equal(t, []string{"A", "B", "C"}, route.Reconstruct(prev, "A", "C"))
}

func TestShortestPaths_HugeWeightsSaturate(t *testing.T) {
	g := core.Graph{
		"A": {"B": math.MaxInt64 - 1},
		"B": {"C": 10},
	}
	dist, _ := dijkstra.ShortestPaths(g, "A")
	assert.Equal(t, int64(math.MaxInt64-1), dist["B"])
	assert.False(t, dist.Reachable("C"))
}

// ------------------------------------------------------------------------
// 5. Options.
// ------------------------------------------------------------------------

func TestDijkstra_OptionViolations(t *testing.T) {
	g := builder.SampleGraph()

	_, _, err := dijkstra.Dijkstra(g, "A", dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, _, err = dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

func TestDijkstra_WeightCheck(t *testing.T) {
	g := core.Graph{"A": {"B": 2}, "B": {"C": -3}}

	_, _, err := dijkstra.Dijkstra(g, "A", dijkstra.WithWeightCheck())
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "B→C weight=-3")

	_, _, err = dijkstra.Dijkstra(builder.SampleGraph(), "A", dijkstra.WithWeightCheck())
	assert.NoError(t, err)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(builder.SampleGraph(), "A", dijkstra.WithMaxDistance(10))
	require.NoError(t, err)

	assert.Equal(t, int64(7), dist["B"])
	assert.Equal(t, int64(9), dist["C"])
	assert.Equal(t, dijkstra.Infinity, dist["D"])
	assert.Equal(t, dijkstra.Infinity, dist["F"])
	assert.Nil(t, route.Reconstruct(prev, "A", "F"))
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(core.Graph{"A": {"B": 1, "C": 0}}, "A", dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["C"])
	assert.False(t, dist.Reachable("B"))
	_, discovered := dist["B"]
	assert.False(t, discovered, "a target-only node beyond the cap is never discovered")

	// A top-level key beyond the cap keeps Infinity.
	dist, _, err = dijkstra.Dijkstra(core.Graph{"A": {"B": 1}, "B": {}}, "A", dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, dist["B"])
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// Every arc weighing 10 or more is a wall.
	dist, prev, err := dijkstra.Dijkstra(builder.SampleGraph(), "A", dijkstra.WithInfEdgeThreshold(10))
	require.NoError(t, err)

	assert.Equal(t, int64(11), dist["F"])
	assert.Equal(t, int64(20), dist["E"])
	assert.Equal(t, dijkstra.Infinity, dist["D"], "B→D 15 and C→D 11 are walls")
	assert.Equal(t, []string{"A", "C", "F", "E"}, route.Reconstruct(prev, "A", "E"))
}

// ------------------------------------------------------------------------
// 6. Properties over random graphs.
// ------------------------------------------------------------------------

func TestShortestPaths_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g, err := builder.BuildGraph(
				[]builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 30))},
				builder.RandomSparse(25, 0.12),
			)
			require.NoError(t, err)

			const start = "v0"
			dist, prev := dijkstra.ShortestPaths(g, start)
			reach := bfs.Reachable(g, start)

			assert.Equal(t, int64(0), dist[start])

			// Relaxation fixed point.
			for _, e := range g.Edges() {
				if !dist.Reachable(e.From) {
					continue
				}
				assert.LessOrEqual(t, dist[e.To], dist[e.From]+e.Weight, "edge %s→%s", e.From, e.To)
			}

			for _, v := range g.Nodes() {
				path := route.Reconstruct(prev, start, v)
				// Empty path iff unreachable.
				assert.Equal(t, path == nil, !dist.Reachable(v), "node %s", v)
				assert.Equal(t, reach[v], dist.Reachable(v), "bfs/dijkstra reachability for %s", v)
				if path == nil {
					continue
				}
				cost, err := route.Cost(g, path)
				require.NoError(t, err)
				assert.Equal(t, dist[v], cost, "path cost to %s", v)
			}

			// Idempotence.
			again, _ := dijkstra.ShortestPaths(g, start)
			assert.Equal(t, dist, again)
		})
	}
}

func TestShortestPaths_GridManhattan(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(5, 7))
	require.NoError(t, err)

	dist, _ := dijkstra.ShortestPaths(g, builder.GridID(0, 0))
	for r := 0; r < 5; r++ {
		for c := 0; c < 7; c++ {
			assert.Equal(t, int64(r+c), dist[builder.GridID(r, c)])
		}
	}
}

func TestShortestPaths_ConcurrentCallsShareGraph(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
		builder.RandomSparse(40, 0.1),
	)
	require.NoError(t, err)
	want, _ := dijkstra.ShortestPaths(g, "v0")

	results := make(chan dijkstra.Distances, 8)
	for i := 0; i < 8; i++ {
		go func() {
			d, _ := dijkstra.ShortestPaths(g, "v0")
			results <- d
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-results)
	}
}
