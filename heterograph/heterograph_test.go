package heterograph

import (
	"testing"

	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/stretchr/testify/require"
)

func ids(vals ...uint64) arrayops.IdArray {
	return arrayops.IdArray{Bits: arrayops.Bits64, Vals: vals}
}

// buildABC constructs A -> B -> C with A={0}, B={0,1}, C={0,1}.
func buildABC(t *testing.T) *HeteroGraph {
	t.Helper()
	ab, err := bipartite.FromCOO(1, 2, ids(0, 0), ids(0, 1))
	require.NoError(t, err)
	bc, err := bipartite.FromCOO(2, 2, ids(1, 1), ids(0, 1))
	require.NoError(t, err)
	meta := NewMetaGraph(3, []int{0, 1}, []int{1, 2})
	hg, err := New(meta, []*bipartite.Graph{ab, bc})
	require.NoError(t, err)
	return hg
}

func TestHeteroGraphConstructionValidatesSharedVertexCounts(t *testing.T) {
	hg := buildABC(t)
	n, err := hg.NumVerticesType(1) // B
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestHeteroGraphConstructionRejectsDisagreement(t *testing.T) {
	ab, _ := bipartite.FromCOO(1, 2, ids(0), ids(0))
	bc, _ := bipartite.FromCOO(3, 2, ids(1), ids(0)) // B says 3, not 2
	meta := NewMetaGraph(3, []int{0, 1}, []int{1, 2})
	_, err := New(meta, []*bipartite.Graph{ab, bc})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestEdgeSubgraphNoPreserveNodesUnionsSharedVertexType(t *testing.T) {
	hg := buildABC(t)
	sub, err := hg.EdgeSubgraph([]arrayops.IdArray{ids(0), ids(0)}, false)
	require.NoError(t, err)

	require.Equal(t, []uint64{0, 1}, sub.InducedVertices[1].Vals) // B induced = {0,1}
	nB, err := sub.Graph.NumVerticesType(1)
	require.NoError(t, err)
	require.EqualValues(t, 2, nB)

	ab, err := sub.Graph.RelationGraph(0)
	require.NoError(t, err)
	src, dst := ab.FindEdge(0)
	require.EqualValues(t, 0, src)
	require.EqualValues(t, 0, dst)

	bc, err := sub.Graph.RelationGraph(1)
	require.NoError(t, err)
	src2, dst2 := bc.FindEdge(0)
	require.EqualValues(t, 1, src2)
	require.EqualValues(t, 0, dst2)
}

func TestEdgeSubgraphPreserveNodesKeepsFullRanges(t *testing.T) {
	hg := buildABC(t)
	sub, err := hg.EdgeSubgraph([]arrayops.IdArray{ids(0), ids(0)}, true)
	require.NoError(t, err)
	nB, err := sub.Graph.NumVerticesType(1)
	require.NoError(t, err)
	require.EqualValues(t, 2, nB)
}
