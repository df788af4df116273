// SPDX-License-Identifier: MIT
package heterograph

import (
	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/katalvlaran/graphflow/bipartite"
)

// Subgraph bundles a derived HeteroGraph with, per vertex type, the
// induced vertex ids, and per relation, the induced edge ids.
type Subgraph struct {
	Graph             *HeteroGraph
	InducedVertices   []arrayops.IdArray // indexed by vtype
	InducedEdges      []arrayops.IdArray // indexed by etype
}

// HeteroGraph is a collection of bipartite relations sharing a meta-graph.
type HeteroGraph struct {
	Meta            *MetaGraph
	Relations       []*bipartite.Graph
	numVertsPerType []int64
}

// New builds a HeteroGraph from a meta-graph and one bipartite relation per
// meta-graph edge. Construction validates that, for every vertex type v,
// every relation touching v (as src or as dst) agrees on |V_v| — walking
// the meta-graph's out-edges and then its in-edges for v, rather than
// trusting only the first relation that happens to touch v.
func New(meta *MetaGraph, relations []*bipartite.Graph) (*HeteroGraph, error) {
	if len(relations) != meta.NumETypes() {
		return nil, heterographErrorf("New", ErrShapeMismatch, "relations=%d etypes=%d", len(relations), meta.NumETypes())
	}
	numVerts := make([]int64, meta.NumVTypes)
	seen := make([]bool, meta.NumVTypes)
	for v := 0; v < meta.NumVTypes; v++ {
		for _, t := range meta.OutEdges(v) {
			n := relations[t].NumSrc()
			if !seen[v] {
				numVerts[v] = n
				seen[v] = true
			} else if numVerts[v] != n {
				return nil, heterographErrorf("New", ErrShapeMismatch, "vtype=%d src count disagreement: %d vs %d", v, numVerts[v], n)
			}
		}
		for _, t := range meta.InEdges(v) {
			n := relations[t].NumDst()
			if !seen[v] {
				numVerts[v] = n
				seen[v] = true
			} else if numVerts[v] != n {
				return nil, heterographErrorf("New", ErrShapeMismatch, "vtype=%d dst count disagreement: %d vs %d", v, numVerts[v], n)
			}
		}
	}
	return &HeteroGraph{Meta: meta, Relations: relations, numVertsPerType: numVerts}, nil
}

// NumVerticesType returns num_verts_per_type[v].
func (h *HeteroGraph) NumVerticesType(v int) (int64, error) {
	if v < 0 || v >= len(h.numVertsPerType) {
		return 0, heterographErrorf("NumVerticesType", ErrBadVertexType, "vtype=%d", v)
	}
	return h.numVertsPerType[v], nil
}

// RelationGraph returns the bipartite relation for etype t.
func (h *HeteroGraph) RelationGraph(t int) (*bipartite.Graph, error) {
	if t < 0 || t >= len(h.Relations) {
		return nil, heterographErrorf("RelationGraph", ErrBadEdgeType, "etype=%d", t)
	}
	return h.Relations[t], nil
}

// NumEdges returns the edge count of relation t.
func (h *HeteroGraph) NumEdges(t int) (int64, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return 0, err
	}
	return rel.NumEdges(), nil
}

// IsMultigraph reports whether any relation is a multigraph.
func (h *HeteroGraph) IsMultigraph() bool {
	for _, rel := range h.Relations {
		if rel.IsMultigraph() {
			return true
		}
	}
	return false
}

// IsReadonly always returns true.
func (h *HeteroGraph) IsReadonly() bool { return true }

// Context returns the device the graph's arrays live on. All relations in a
// HeteroGraph share one context, so this forwards to the first relation,
// or returns CPUContext when the meta-graph has no edge types.
func (h *HeteroGraph) Context() arrayops.Context {
	if len(h.Relations) == 0 {
		return arrayops.CPUContext
	}
	return h.Relations[0].Context()
}

// NumBits returns the id-array width in bits, shared across every relation.
func (h *HeteroGraph) NumBits() int {
	if len(h.Relations) == 0 {
		return 0
	}
	return h.Relations[0].NumBits()
}

// AddVertices, AddEdge, and Clear always fail: a HeteroGraph is immutable
// once constructed. AddEdges (the plural, per-etype form) lives in ops.go
// alongside the rest of the per-etype forwarding surface.
func (h *HeteroGraph) AddVertices(int, int64) error {
	return heterographErrorf("AddVertices", ErrImmutable, "graph is read-only")
}

func (h *HeteroGraph) AddEdge(int, uint64, uint64) error {
	return heterographErrorf("AddEdge", ErrImmutable, "graph is read-only")
}

func (h *HeteroGraph) Clear() error {
	return heterographErrorf("Clear", ErrImmutable, "graph is read-only")
}
