// SPDX-License-Identifier: MIT
package bipartite

import (
	"sync"

	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/rs/zerolog"
)

// VType names one of the two vertex types a bipartite relation connects.
type VType uint8

const (
	// Src is vertex type 0, the row side of every adjacency format.
	Src VType = 0
	// Dst is vertex type 1, the column side of every adjacency format.
	Dst VType = 1
)

// EdgeArray is the (src, dst, eid) triple returned by InEdges, OutEdges,
// their vector forms, and Edges, mirroring the reference implementation's
// EdgeArray struct rather than three loose slices.
type EdgeArray struct {
	Src arrayops.IdArray
	Dst arrayops.IdArray
	Eid arrayops.IdArray
}

// Len returns the number of edges in the triple.
func (e EdgeArray) Len() int { return e.Src.Len() }

// Subgraph bundles a derived Graph with the vertex/edge ids of the parent
// graph it was induced from.
type Subgraph struct {
	Graph              *Graph
	InducedVerticesSrc arrayops.IdArray
	InducedVerticesDst arrayops.IdArray
	InducedEdges       arrayops.IdArray
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithLogger injects a zerolog.Logger used for debug-level messages about
// lazy format materialization. The default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Graph) { g.logger = l }
}

// Graph is a read-only two-vertex-type, one-edge-type relation graph. All
// non-nil format views represent the same edge multiset with identical
// edge ids; at least one of {coo, outCSR, inCSR} is always present.
type Graph struct {
	numSrc int64
	numDst int64
	bits   arrayops.Width

	coo    *arrayops.COOMatrix
	cooOnce sync.Once

	outCSR  *arrayops.CSRMatrix
	outOnce sync.Once

	inCSR  *arrayops.CSRMatrix
	inOnce sync.Once

	multigraph bool
	multiOnce  sync.Once

	logger zerolog.Logger
}

// NumSrc returns the source-side vertex count (num_rows).
func (g *Graph) NumSrc() int64 { return g.numSrc }

// NumDst returns the destination-side vertex count (num_cols).
func (g *Graph) NumDst() int64 { return g.numDst }

// Bits returns the id-array width the graph was constructed with.
func (g *Graph) Bits() arrayops.Width { return g.bits }

// IsReadonly always returns true: no bipartite.Graph is ever mutable.
func (g *Graph) IsReadonly() bool { return true }

// Context returns the device the graph's arrays live on.
func (g *Graph) Context() arrayops.Context { return arrayops.CPUContext }

// NumBits returns the id-array width in bits (32 or 64).
func (g *Graph) NumBits() int { return int(g.bits) }
