// SPDX-License-Identifier: MIT
package bipartite

import "github.com/katalvlaran/graphflow/arrayops"

// CSRTriple is the (indptr, indices, data) shape GetAdj returns for fmt="csr".
type CSRTriple struct {
	Indptr  arrayops.IdArray
	Indices arrayops.IdArray
	Data    arrayops.IdArray
}

// GetAdj returns the graph's adjacency in the requested format.
//
// fmt="coo" returns hstack(row,col), or hstack(col,row) when transpose is
// true. fmt="csr" has a deliberate historical quirk to match an external
// convention (rows=dst, cols=src): transpose=false returns the in-CSR,
// transpose=true returns the out-CSR. Keep this inversion; it is documented
// here rather than fixed because external callers depend on it.
func (g *Graph) GetAdj(transpose bool, format string) (interface{}, error) {
	switch format {
	case "csr":
		if !transpose {
			csr := g.GetInCSR()
			return CSRTriple{Indptr: csr.Indptr, Indices: csr.Indices, Data: csr.Data}, nil
		}
		csr := g.GetOutCSR()
		return CSRTriple{Indptr: csr.Indptr, Indices: csr.Indices, Data: csr.Data}, nil
	case "coo":
		coo := g.GetCOO()
		if transpose {
			return arrayops.HStack(coo.Col, coo.Row), nil
		}
		return arrayops.HStack(coo.Row, coo.Col), nil
	default:
		return nil, bipartiteErrorf("GetAdj", ErrBadFormat, "fmt=%q", format)
	}
}

// AddVertices always fails: bipartite.Graph is immutable once constructed.
func (g *Graph) AddVertices(int64) error {
	return bipartiteErrorf("AddVertices", ErrImmutable, "graph is read-only")
}

// AddEdge always fails: bipartite.Graph is immutable once constructed.
func (g *Graph) AddEdge(uint64, uint64) error {
	return bipartiteErrorf("AddEdge", ErrImmutable, "graph is read-only")
}

// AddEdges always fails: bipartite.Graph is immutable once constructed.
func (g *Graph) AddEdges(arrayops.IdArray, arrayops.IdArray) error {
	return bipartiteErrorf("AddEdges", ErrImmutable, "graph is read-only")
}

// Clear always fails: bipartite.Graph is immutable once constructed.
func (g *Graph) Clear() error {
	return bipartiteErrorf("Clear", ErrImmutable, "graph is read-only")
}
