package sampler

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/stretchr/testify/require"
)

// buildK4 builds a complete directed graph on 4 vertices (every ordered
// pair i != j is an edge), edge ids assigned in row-major COO order.
func buildK4(t *testing.T) *bipartite.Graph {
	t.Helper()
	var row, col []uint64
	for i := uint64(0); i < 4; i++ {
		for j := uint64(0); j < 4; j++ {
			if i == j {
				continue
			}
			row = append(row, i)
			col = append(col, j)
		}
	}
	g, err := bipartite.FromCOO(4, 4, ids(row...), ids(col...))
	require.NoError(t, err)
	return g
}

func TestLayerSampleScenario6K4Determinism(t *testing.T) {
	g := buildK4(t)
	rng := rand.New(rand.NewSource(42))

	flow, err := LayerSampleOne(g, []uint64{0}, []int{2, 2}, "out", rng)
	require.NoError(t, err)

	require.True(t, len(flow.NodeMapping.Vals) >= 1)
	for i := 1; i < len(flow.LayerOffsets.Vals); i++ {
		require.LessOrEqual(t, flow.LayerOffsets.Vals[i-1], flow.LayerOffsets.Vals[i])
	}
	require.Equal(t, uint64(len(flow.EdgeMapping.Vals)), flow.FlowOffsets.Vals[len(flow.FlowOffsets.Vals)-1])
	require.Equal(t, uint64(0), flow.LayerOffsets.Vals[0])
	require.Equal(t, uint64(len(flow.NodeMapping.Vals)), flow.LayerOffsets.Vals[len(flow.LayerOffsets.Vals)-1])
	require.Len(t, flow.Probabilities(), len(flow.NodeMapping.Vals))

	// deepest layer's vertices are seeds' second-hop expansion; the layer
	// nearest the seed (last) is exactly the seed set.
	seedStart := flow.LayerOffsets.Vals[len(flow.LayerOffsets.Vals)-2]
	require.Equal(t, []uint64{0}, flow.NodeMapping.Vals[seedStart:])
}

func TestLayerSampleIsDeterministicGivenSameSeed(t *testing.T) {
	g := buildK4(t)

	flow1, err := LayerSampleOne(g, []uint64{0}, []int{3, 3}, "out", rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	flow2, err := LayerSampleOne(g, []uint64{0}, []int{3, 3}, "out", rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	require.Equal(t, flow1.NodeMapping.Vals, flow2.NodeMapping.Vals)
	require.Equal(t, flow1.EdgeMapping.Vals, flow2.EdgeMapping.Vals)
	require.Equal(t, flow1.Probabilities(), flow2.Probabilities())
}

func TestLayerSampleRejectsBadNeighType(t *testing.T) {
	g := buildK4(t)
	_, err := LayerSampleOne(g, []uint64{0}, []int{2}, "diagonal", rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrBadEdgeType)
}
