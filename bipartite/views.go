// SPDX-License-Identifier: MIT
package bipartite

import (
	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/rs/zerolog"
)

// FromCOO constructs a Graph from a COO edge list. Edge id is the position
// in row/col.
func FromCOO(numSrc, numDst int64, row, col arrayops.IdArray, opts ...Option) (*Graph, error) {
	if row.Len() != col.Len() {
		return nil, bipartiteErrorf("FromCOO", ErrShapeMismatch, "row len=%d col len=%d", row.Len(), col.Len())
	}
	coo := arrayops.COOMatrix{NumRows: numSrc, NumCols: numDst, Row: row, Col: col}
	g := &Graph{numSrc: numSrc, numDst: numDst, bits: row.Bits, coo: &coo, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// FromCSR constructs a Graph from an out-CSR (rows are src vertices).
func FromCSR(numSrc, numDst int64, indptr, indices, data arrayops.IdArray, opts ...Option) (*Graph, error) {
	if int64(indptr.Len()) != numSrc+1 {
		return nil, bipartiteErrorf("FromCSR", ErrShapeMismatch, "indptr len=%d want=%d", indptr.Len(), numSrc+1)
	}
	if indices.Len() != data.Len() {
		return nil, bipartiteErrorf("FromCSR", ErrShapeMismatch, "indices len=%d data len=%d", indices.Len(), data.Len())
	}
	csr := arrayops.CSRMatrix{NumRows: numSrc, NumCols: numDst, Indptr: indptr, Indices: indices, Data: data}
	g := &Graph{numSrc: numSrc, numDst: numDst, bits: indices.Bits, outCSR: &csr, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// FromCSRAsIn builds a graph whose only materialized view is the given
// in-CSR (rows are dst vertices). Sampler output uses this directly when
// edge_type="in" rather than transposing an out-CSR it doesn't need yet.
func FromCSRAsIn(numSrc, numDst int64, csr arrayops.CSRMatrix, opts ...Option) (*Graph, error) {
	if csr.Indices.Len() != csr.Data.Len() {
		return nil, bipartiteErrorf("FromCSRAsIn", ErrShapeMismatch, "indices len=%d data len=%d", csr.Indices.Len(), csr.Data.Len())
	}
	g := &Graph{numSrc: numSrc, numDst: numDst, bits: csr.Indices.Bits, inCSR: &csr, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// GetCOO returns the COO view, materializing it from whichever CSR view is
// present if necessary (in-CSR's rows/cols are swapped back to src/dst).
func (g *Graph) GetCOO() *arrayops.COOMatrix {
	g.cooOnce.Do(func() {
		if g.coo != nil {
			return
		}
		switch {
		case g.inCSR != nil:
			flat := arrayops.CsrToCoo(*g.inCSR, true)
			coo := arrayops.COOMatrix{NumRows: g.numSrc, NumCols: g.numDst, Row: flat.Col, Col: flat.Row}
			g.coo = &coo
		case g.outCSR != nil:
			flat := arrayops.CsrToCoo(*g.outCSR, true)
			g.coo = &flat
		}
	})
	return g.coo
}

// GetOutCSR returns the out-CSR view (rows = src), transposing the in-CSR
// or building from COO if necessary.
func (g *Graph) GetOutCSR() *arrayops.CSRMatrix {
	g.outOnce.Do(func() {
		if g.outCSR != nil {
			return
		}
		if g.inCSR != nil {
			g.logger.Debug().Msg("materializing out-CSR via in-CSR transpose")
			csr := arrayops.CsrTranspose(*g.inCSR)
			g.outCSR = &csr
			return
		}
		g.logger.Debug().Msg("materializing out-CSR via COO")
		coo := g.GetCOO()
		csr := arrayops.CooToCSR(*coo)
		g.outCSR = &csr
	})
	return g.outCSR
}

// GetInCSR returns the in-CSR view (rows = dst), transposing the out-CSR
// or building from a row/col-swapped COO if necessary.
func (g *Graph) GetInCSR() *arrayops.CSRMatrix {
	g.inOnce.Do(func() {
		if g.inCSR != nil {
			return
		}
		if g.outCSR != nil {
			g.logger.Debug().Msg("materializing in-CSR via out-CSR transpose")
			csr := arrayops.CsrTranspose(*g.outCSR)
			g.inCSR = &csr
			return
		}
		g.logger.Debug().Msg("materializing in-CSR via swapped COO")
		coo := g.GetCOO()
		swapped := arrayops.COOMatrix{NumRows: g.numDst, NumCols: g.numSrc, Row: coo.Col, Col: coo.Row, Data: coo.Data}
		csr := arrayops.CooToCSR(swapped)
		g.inCSR = &csr
	})
	return g.inCSR
}

// NumEdges returns the edge count, format-independent.
func (g *Graph) NumEdges() int64 {
	switch {
	case g.coo != nil:
		return g.coo.NumEdges()
	case g.outCSR != nil:
		return g.outCSR.NumEdges()
	case g.inCSR != nil:
		return g.inCSR.NumEdges()
	default:
		return 0
	}
}

// IsMultigraph reports whether any pair of vertices is connected by more
// than one edge. The result is computed once, from whichever view is
// already materialized (in-CSR preferred, matching HasEdgesBetween's
// avoid-forcing-materialization habit), and memoized.
func (g *Graph) IsMultigraph() bool {
	g.multiOnce.Do(func() {
		switch {
		case g.inCSR != nil:
			g.multigraph = arrayops.CsrHasDuplicate(*g.inCSR)
		case g.outCSR != nil:
			g.multigraph = arrayops.CsrHasDuplicate(*g.outCSR)
		default:
			g.multigraph = arrayops.CooHasDuplicate(*g.GetCOO())
		}
	})
	return g.multigraph
}
