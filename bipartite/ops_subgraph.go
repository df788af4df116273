// SPDX-License-Identifier: MIT
package bipartite

import "github.com/katalvlaran/graphflow/arrayops"

// VertexSubgraph returns the subgraph induced by vidsSrc and vidsDst, using
// csr_slice_matrix on the out-CSR view. Induced vertices are the inputs
// themselves; induced edges are the retained edges' original ids.
func (g *Graph) VertexSubgraph(vidsSrc, vidsDst arrayops.IdArray) Subgraph {
	csr := g.GetOutCSR()
	sub := arrayops.CsrSliceMatrix(*csr, vidsSrc, vidsDst)
	newG := fromOutCSRRaw(int64(vidsSrc.Len()), int64(vidsDst.Len()), sub)
	return Subgraph{
		Graph:              newG,
		InducedVerticesSrc: vidsSrc,
		InducedVerticesDst: vidsDst,
		InducedEdges:       sub.Data,
	}
}

// EdgeSubgraph returns the subgraph induced by eids. When preserveNodes is
// true, the full vertex ranges are kept and only the selected edges
// survive. When false, src and dst are densified independently via
// relabel_inplace.
func (g *Graph) EdgeSubgraph(eids arrayops.IdArray, preserveNodes bool) (Subgraph, error) {
	coo := g.GetCOO()
	row, err := arrayops.IndexSelect(coo.Row, eids)
	if err != nil {
		return Subgraph{}, bipartiteErrorf("EdgeSubgraph", ErrInvalidIDArray, "%v", err)
	}
	col, err := arrayops.IndexSelect(coo.Col, eids)
	if err != nil {
		return Subgraph{}, bipartiteErrorf("EdgeSubgraph", ErrInvalidIDArray, "%v", err)
	}

	if preserveNodes {
		newG, ferr := FromCOO(g.numSrc, g.numDst, row, col)
		if ferr != nil {
			return Subgraph{}, ferr
		}
		return Subgraph{
			Graph:              newG,
			InducedVerticesSrc: arrayops.Range(0, g.numSrc, g.bits),
			InducedVerticesDst: arrayops.Range(0, g.numDst, g.bits),
			InducedEdges:       eids,
		}, nil
	}

	srcMapping := arrayops.RelabelInplace([]*arrayops.IdArray{&row})
	dstMapping := arrayops.RelabelInplace([]*arrayops.IdArray{&col})
	newG, ferr := FromCOO(int64(srcMapping.Len()), int64(dstMapping.Len()), row, col)
	if ferr != nil {
		return Subgraph{}, ferr
	}
	return Subgraph{
		Graph:              newG,
		InducedVerticesSrc: srcMapping,
		InducedVerticesDst: dstMapping,
		InducedEdges:       eids,
	}, nil
}

// fromOutCSRRaw builds a graph directly from a pre-built out-CSR, bypassing
// FromCSR's shape validation (the CSR here is already known-consistent,
// having just been produced by CsrSliceMatrix).
func fromOutCSRRaw(numSrc, numDst int64, csr arrayops.CSRMatrix) *Graph {
	g, _ := FromCSR(numSrc, numDst, csr.Indptr, csr.Indices, csr.Data)
	return g
}
