package heterograph

import (
	"testing"

	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/stretchr/testify/require"
)

func TestHeteroGraphForwardsPerEtypeQueries(t *testing.T) {
	hg := buildABC(t) // A -> B (etype 0), B -> C (etype 1)

	ok, err := hg.HasVertex(1, 1) // B has vertex 1
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = hg.HasEdgeBetween(0, 0, 1) // A0 -> B1
	require.NoError(t, err)
	require.True(t, ok)

	succ, err := hg.Successors(0, 0)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1}, succ.Vals)

	pred, err := hg.Predecessors(1, 0)
	require.NoError(t, err)
	require.Equal(t, []uint64{1}, pred.Vals)

	out, err := hg.OutDegree(0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, out)

	in, err := hg.InDegree(1, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, in)

	edges, err := hg.Edges(1, "eid")
	require.NoError(t, err)
	require.Equal(t, 2, edges.Len())
}

func TestHeteroGraphForwardingRejectsBadEdgeType(t *testing.T) {
	hg := buildABC(t)
	_, err := hg.Predecessors(7, 0)
	require.ErrorIs(t, err, ErrBadEdgeType)
}

func TestHeteroGraphForwardingRejectsBadVertexType(t *testing.T) {
	hg := buildABC(t)
	_, err := hg.HasVertex(9, 0)
	require.ErrorIs(t, err, ErrBadVertexType)
}

func TestHeteroGraphAddEdgesAlwaysFails(t *testing.T) {
	hg := buildABC(t)
	err := hg.AddEdges(0, arrayops.IdArray{}, arrayops.IdArray{})
	require.ErrorIs(t, err, ErrImmutable)
}

func TestHeteroGraphContextAndNumBits(t *testing.T) {
	hg := buildABC(t)
	require.Equal(t, arrayops.CPUContext, hg.Context())
	require.Equal(t, 64, hg.NumBits())
}
