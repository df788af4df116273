// SPDX-License-Identifier: MIT
package bipartite

import "github.com/katalvlaran/graphflow/arrayops"

// Predecessors returns the src ids with an edge into dst, using the in-CSR
// view (materializing it if absent).
func (g *Graph) Predecessors(dst uint64) arrayops.IdArray {
	return arrayops.CsrGetRowColIndices(*g.GetInCSR(), dst)
}

// Successors returns the dst ids reachable from src, using the out-CSR
// view (materializing it if absent).
func (g *Graph) Successors(src uint64) arrayops.IdArray {
	return arrayops.CsrGetRowColIndices(*g.GetOutCSR(), src)
}

// InEdges returns the (src, dst, eid) triple of every edge into dst. It
// answers via in-CSR's "out-edges from dst" row and swaps src/dst before
// returning, per the reference implementation's InEdges/Predecessors
// pattern.
func (g *Graph) InEdges(dst uint64) EdgeArray {
	csr := g.GetInCSR()
	src := arrayops.CsrGetRowColIndices(*csr, dst)
	eid := arrayops.CsrGetRowData(*csr, dst)
	dstArr := arrayops.Full(dst, src.Len(), src.Bits)
	return EdgeArray{Src: src, Dst: dstArr, Eid: eid}
}

// InEdgesVec is the vector form of InEdges over multiple destinations.
func (g *Graph) InEdgesVec(dsts arrayops.IdArray) EdgeArray {
	csr := g.GetInCSR()
	var srcOut, dstOut, eidOut []uint64
	for _, d := range dsts.Vals {
		start, end := csr.RowRange(int64(d))
		for k := start; k < end; k++ {
			srcOut = append(srcOut, csr.Indices.Vals[k])
			dstOut = append(dstOut, d)
			eidOut = append(eidOut, csr.Data.Vals[k])
		}
	}
	bits := csr.Indices.Bits
	return EdgeArray{
		Src: arrayops.IdArray{Bits: bits, Vals: srcOut},
		Dst: arrayops.IdArray{Bits: bits, Vals: dstOut},
		Eid: arrayops.IdArray{Bits: bits, Vals: eidOut},
	}
}

// OutEdges returns the (src, dst, eid) triple of every edge out of src,
// using the out-CSR view.
func (g *Graph) OutEdges(src uint64) EdgeArray {
	csr := g.GetOutCSR()
	dst := arrayops.CsrGetRowColIndices(*csr, src)
	eid := arrayops.CsrGetRowData(*csr, src)
	srcArr := arrayops.Full(src, dst.Len(), dst.Bits)
	return EdgeArray{Src: srcArr, Dst: dst, Eid: eid}
}

// OutEdgesVec is the vector form of OutEdges over multiple sources.
func (g *Graph) OutEdgesVec(srcs arrayops.IdArray) EdgeArray {
	csr := g.GetOutCSR()
	var srcOut, dstOut, eidOut []uint64
	for _, s := range srcs.Vals {
		start, end := csr.RowRange(int64(s))
		for k := start; k < end; k++ {
			srcOut = append(srcOut, s)
			dstOut = append(dstOut, csr.Indices.Vals[k])
			eidOut = append(eidOut, csr.Data.Vals[k])
		}
	}
	bits := csr.Indices.Bits
	return EdgeArray{
		Src: arrayops.IdArray{Bits: bits, Vals: srcOut},
		Dst: arrayops.IdArray{Bits: bits, Vals: dstOut},
		Eid: arrayops.IdArray{Bits: bits, Vals: eidOut},
	}
}

// EdgeID returns every edge id between src and dst (more than one under a
// multigraph). It prefers whichever CSR view already exists.
func (g *Graph) EdgeID(src, dst uint64) arrayops.IdArray {
	if g.inCSR != nil {
		return arrayops.CsrGetData(*g.inCSR, dst, src)
	}
	return arrayops.CsrGetData(*g.GetOutCSR(), src, dst)
}

// EdgeIDs is the vectorized form of EdgeID.
func (g *Graph) EdgeIDs(src, dst arrayops.IdArray) (arrayops.IdArray, arrayops.IdArray, arrayops.IdArray) {
	if g.inCSR != nil {
		rr, cc, dd := arrayops.CsrGetDataAndIndices(*g.inCSR, dst, src)
		return cc, rr, dd // swap back to (src,dst)
	}
	return arrayops.CsrGetDataAndIndices(*g.GetOutCSR(), src, dst)
}

// FindEdges returns the (src, dst) pair for each eid, from the COO view.
func (g *Graph) FindEdges(eids arrayops.IdArray) (arrayops.IdArray, arrayops.IdArray, error) {
	coo := g.GetCOO()
	src, err := arrayops.IndexSelect(coo.Row, eids)
	if err != nil {
		return arrayops.IdArray{}, arrayops.IdArray{}, bipartiteErrorf("FindEdges", ErrInvalidIDArray, "%v", err)
	}
	dst, err := arrayops.IndexSelect(coo.Col, eids)
	if err != nil {
		return arrayops.IdArray{}, arrayops.IdArray{}, bipartiteErrorf("FindEdges", ErrInvalidIDArray, "%v", err)
	}
	return src, dst, nil
}

// FindEdge is the scalar form of FindEdges.
func (g *Graph) FindEdge(eid uint64) (src, dst uint64) {
	coo := g.GetCOO()
	return coo.Row.Vals[eid], coo.Col.Vals[eid]
}

// Edges enumerates every edge as an (src, dst, eid) triple. order="" yields
// whatever the available format produces cheaply (in-CSR result swapped);
// order="eid" yields COO order (position == eid); order="srcdst" yields
// out-CSR traversal order, which is already grouped by ascending src.
func (g *Graph) Edges(order string) (EdgeArray, error) {
	switch order {
	case "":
		if g.inCSR != nil {
			flat := arrayops.CsrToCoo(*g.inCSR, false)
			return EdgeArray{Src: flat.Col, Dst: flat.Row, Eid: flat.Data}, nil
		}
		if g.outCSR != nil {
			flat := arrayops.CsrToCoo(*g.outCSR, false)
			return EdgeArray{Src: flat.Row, Dst: flat.Col, Eid: flat.Data}, nil
		}
		coo := g.GetCOO()
		return EdgeArray{Src: coo.Row, Dst: coo.Col, Eid: arrayops.Range(0, coo.NumEdges(), coo.Row.Bits)}, nil
	case "eid":
		coo := g.GetCOO()
		return EdgeArray{Src: coo.Row, Dst: coo.Col, Eid: arrayops.Range(0, coo.NumEdges(), coo.Row.Bits)}, nil
	case "srcdst":
		csr := g.GetOutCSR()
		flat := arrayops.CsrToCoo(*csr, false)
		return EdgeArray{Src: flat.Row, Dst: flat.Col, Eid: flat.Data}, nil
	default:
		return EdgeArray{}, bipartiteErrorf("Edges", ErrBadOrder, "order=%q", order)
	}
}

// OutDegree returns the number of out-edges of src.
func (g *Graph) OutDegree(src uint64) uint64 {
	return arrayops.CsrGetRowNNZ(*g.GetOutCSR(), src)
}

// OutDegrees is the vector form of OutDegree.
func (g *Graph) OutDegrees(srcs arrayops.IdArray) arrayops.IdArray {
	return arrayops.CsrGetRowNNZVec(*g.GetOutCSR(), srcs)
}

// InDegree returns the number of in-edges of dst.
func (g *Graph) InDegree(dst uint64) uint64 {
	return arrayops.CsrGetRowNNZ(*g.GetInCSR(), dst)
}

// InDegrees is the vector form of InDegree.
func (g *Graph) InDegrees(dsts arrayops.IdArray) arrayops.IdArray {
	return arrayops.CsrGetRowNNZVec(*g.GetInCSR(), dsts)
}
