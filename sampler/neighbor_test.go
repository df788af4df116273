package sampler

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/stretchr/testify/require"
)

func ids(vals ...uint64) arrayops.IdArray {
	return arrayops.IdArray{Bits: arrayops.Bits64, Vals: vals}
}

// buildPathGraph builds 0->1->2->3->4 with edge ids in traversal order.
func buildPathGraph(t *testing.T) *bipartite.Graph {
	t.Helper()
	g, err := bipartite.FromCOO(5, 5, ids(0, 1, 2, 3), ids(1, 2, 3, 4))
	require.NoError(t, err)
	return g
}

func TestNeighborSampleScenario4PathGraphInEdges(t *testing.T) {
	g := buildPathGraph(t)
	rng := rand.New(rand.NewSource(1))

	flow, err := NeighborSampleOne(g, []uint64{4}, 2, 10, nil, false, "in", rng)
	require.NoError(t, err)

	require.Equal(t, 3, flow.NumLayers())
	require.Equal(t, uint64(4), flow.NodeMapping.Vals[len(flow.NodeMapping.Vals)-1])
	require.Equal(t, []uint64{0, 1, 2}, flow.FlowOffsets.Vals)
	require.Len(t, flow.EdgeMapping.Vals, 2)
	require.Contains(t, flow.EdgeMapping.Vals, uint64(3)) // edge (3->4)
	require.Contains(t, flow.EdgeMapping.Vals, uint64(2)) // edge (2->3)
}

func TestNeighborSampleScenario5SelfLoopOnIsolatedVertex(t *testing.T) {
	g, err := bipartite.FromCOO(1, 1, ids(), ids())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	flow, err := NeighborSampleOne(g, []uint64{0}, 1, 10, nil, true, "in", rng)
	require.NoError(t, err)

	require.Equal(t, []uint64{0, 0}, flow.NodeMapping.Vals)
	require.Equal(t, []uint64{NoOriginalEdge}, flow.EdgeMapping.Vals)
	require.Equal(t, []uint64{0, 1, 2}, flow.LayerOffsets.Vals)
	require.Equal(t, []uint64{0, 1}, flow.FlowOffsets.Vals)
}

func TestNeighborSampleDeduplicatesDuplicateSeeds(t *testing.T) {
	g := buildPathGraph(t)
	rng := rand.New(rand.NewSource(1))

	flow, err := NeighborSampleOne(g, []uint64{4, 4, 4}, 1, 10, nil, false, "in", rng)
	require.NoError(t, err)
	require.Equal(t, uint64(4), flow.NodeMapping.Vals[len(flow.NodeMapping.Vals)-1])
	// exactly one seed-layer vertex despite three duplicate seeds
	seedLayerStart := flow.LayerOffsets.Vals[flow.NumLayers()-1]
	require.Equal(t, uint64(len(flow.NodeMapping.Vals))-seedLayerStart, uint64(1))
}

func TestNeighborSampleExpandFactorAboveDegreeKeepsAll(t *testing.T) {
	g := buildPathGraph(t)
	rng := rand.New(rand.NewSource(1))

	flow, err := NeighborSampleOne(g, []uint64{4}, 1, 1000, nil, false, "in", rng)
	require.NoError(t, err)
	require.Len(t, flow.EdgeMapping.Vals, 1)
}

func TestNeighborSampleAddSelfLoopNoOpWhenSelfEdgeExists(t *testing.T) {
	g, err := bipartite.FromCOO(1, 1, ids(0), ids(0))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	flow, err := NeighborSampleOne(g, []uint64{0}, 1, 10, nil, true, "in", rng)
	require.NoError(t, err)
	// one flow vertex per layer plus one edge, not two
	require.Len(t, flow.EdgeMapping.Vals, 1)
	require.NotEqual(t, NoOriginalEdge, flow.EdgeMapping.Vals[0])
}

func TestNeighborSampleEmptyProbabilityIsUniform(t *testing.T) {
	g := buildPathGraph(t)
	rng := rand.New(rand.NewSource(1))
	flow, err := NeighborSampleOne(g, []uint64{4}, 1, 10, []float64{}, false, "in", rng)
	require.NoError(t, err)
	require.Len(t, flow.EdgeMapping.Vals, 1)
}

func TestNeighborSampleRejectsBadProbabilityLength(t *testing.T) {
	g := buildPathGraph(t)
	rng := rand.New(rand.NewSource(1))
	_, err := NeighborSampleOne(g, []uint64{4}, 1, 10, []float64{0.5}, false, "in", rng)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

// TestNeighborSampleWeightedProbabilityUsesArrayHeap builds a star graph
// (six sources into one destination) so the destination's in-degree (6)
// exceeds expand_factor (3), forcing sampleOneNeighborList's weighted
// branch rather than the n<=k keep-all shortcut. One edge is given an
// overwhelming weight so the draw is effectively deterministic despite
// going through the ArrayHeap's random descent.
func TestNeighborSampleWeightedProbabilityUsesArrayHeap(t *testing.T) {
	g, err := bipartite.FromCOO(6, 1, ids(0, 1, 2, 3, 4, 5), ids(0, 0, 0, 0, 0, 0))
	require.NoError(t, err)
	csr := g.GetInCSR()
	require.EqualValues(t, 6, csr.NumEdges())

	prob := []float64{0.1, 0.1, 0.1, 0.1, 0.1, 1e9}
	rng := rand.New(rand.NewSource(7))

	flow, err := NeighborSampleOne(g, []uint64{0}, 1, 3, prob, false, "in", rng)
	require.NoError(t, err)

	require.Len(t, flow.EdgeMapping.Vals, 3)
	// the weighted branch sorts the sampled vertex and edge lists
	// independently ascending after drawing (preserved reference
	// behavior); the resulting edge mapping comes back sorted regardless
	// of draw order.
	require.True(t, sort.SliceIsSorted(flow.EdgeMapping.Vals, func(i, j int) bool {
		return flow.EdgeMapping.Vals[i] < flow.EdgeMapping.Vals[j]
	}))
	require.Contains(t, flow.EdgeMapping.Vals, uint64(5))
}

func TestNeighborSampleRejectsBadEdgeType(t *testing.T) {
	g := buildPathGraph(t)
	rng := rand.New(rand.NewSource(1))
	_, err := NeighborSampleOne(g, []uint64{4}, 1, 10, nil, false, "sideways", rng)
	require.ErrorIs(t, err, ErrBadEdgeType)
}
