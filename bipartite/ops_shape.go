// SPDX-License-Identifier: MIT
package bipartite

import "github.com/katalvlaran/graphflow/arrayops"

// NumVertices returns num_rows for Src, num_cols for Dst.
func (g *Graph) NumVertices(v VType) (int64, error) {
	switch v {
	case Src:
		return g.numSrc, nil
	case Dst:
		return g.numDst, nil
	default:
		return 0, bipartiteErrorf("NumVertices", ErrBadVertexType, "vtype=%d", v)
	}
}

// HasVertex reports whether id is a valid vertex of type v.
func (g *Graph) HasVertex(v VType, id uint64) (bool, error) {
	n, err := g.NumVertices(v)
	if err != nil {
		return false, err
	}
	return id < uint64(n), nil
}

// HasVertices is the vector form of HasVertex.
func (g *Graph) HasVertices(v VType, ids arrayops.IdArray) (arrayops.BoolArray, error) {
	n, err := g.NumVertices(v)
	if err != nil {
		return nil, err
	}
	return arrayops.LT(ids, uint64(n)), nil
}

// HasEdgesBetween reports, for each paired (src[i], dst[i]), whether that
// edge exists. It prefers the in-CSR view when already materialized so a
// call never forces out-CSR materialization it doesn't otherwise need.
func (g *Graph) HasEdgesBetween(src, dst arrayops.IdArray) (arrayops.BoolArray, error) {
	if src.Len() != dst.Len() {
		return nil, bipartiteErrorf("HasEdgesBetween", ErrShapeMismatch, "src len=%d dst len=%d", src.Len(), dst.Len())
	}
	if g.inCSR != nil {
		return arrayops.CsrIsNonZeroVec(*g.inCSR, dst, src), nil
	}
	csr := g.GetOutCSR()
	return arrayops.CsrIsNonZeroVec(*csr, src, dst), nil
}

// HasEdgeBetween is the scalar form of HasEdgesBetween.
func (g *Graph) HasEdgeBetween(src, dst uint64) bool {
	if g.inCSR != nil {
		return arrayops.CsrIsNonZero(*g.inCSR, dst, src)
	}
	return arrayops.CsrIsNonZero(*g.GetOutCSR(), src, dst)
}
