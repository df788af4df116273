// SPDX-License-Identifier: MIT
package heterograph

import (
	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/katalvlaran/graphflow/bipartite"
)

// The methods in this file forward per-etype queries to the named
// relation, mirroring the reference HeteroGraph's direct-forwarding
// surface (e.g. hg->Predecessors(etype, dst), hg->EdgeIds(etype, ...)):
// HeteroGraph owns this query surface rather than merely exposing
// RelationGraph as an escape hatch.

// HasVertex reports whether id is a valid vertex of type v.
func (h *HeteroGraph) HasVertex(v int, id uint64) (bool, error) {
	if v < 0 || v >= h.Meta.NumVTypes {
		return false, heterographErrorf("HasVertex", ErrBadVertexType, "vtype=%d", v)
	}
	n, err := h.NumVerticesType(v)
	if err != nil {
		return false, err
	}
	return id < uint64(n), nil
}

// HasVertices is the vector form of HasVertex.
func (h *HeteroGraph) HasVertices(v int, ids arrayops.IdArray) (arrayops.BoolArray, error) {
	if v < 0 || v >= h.Meta.NumVTypes {
		return nil, heterographErrorf("HasVertices", ErrBadVertexType, "vtype=%d", v)
	}
	n, err := h.NumVerticesType(v)
	if err != nil {
		return nil, err
	}
	return arrayops.LT(ids, uint64(n)), nil
}

// HasEdgeBetween forwards to relation t's HasEdgeBetween.
func (h *HeteroGraph) HasEdgeBetween(t int, src, dst uint64) (bool, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return false, err
	}
	return rel.HasEdgeBetween(src, dst), nil
}

// HasEdgesBetween forwards to relation t's HasEdgesBetween.
func (h *HeteroGraph) HasEdgesBetween(t int, src, dst arrayops.IdArray) (arrayops.BoolArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return nil, err
	}
	return rel.HasEdgesBetween(src, dst)
}

// Predecessors forwards to relation t's Predecessors.
func (h *HeteroGraph) Predecessors(t int, dst uint64) (arrayops.IdArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return arrayops.IdArray{}, err
	}
	return rel.Predecessors(dst), nil
}

// Successors forwards to relation t's Successors.
func (h *HeteroGraph) Successors(t int, src uint64) (arrayops.IdArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return arrayops.IdArray{}, err
	}
	return rel.Successors(src), nil
}

// EdgeID forwards to relation t's EdgeID.
func (h *HeteroGraph) EdgeID(t int, src, dst uint64) (arrayops.IdArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return arrayops.IdArray{}, err
	}
	return rel.EdgeID(src, dst), nil
}

// EdgeIDs forwards to relation t's EdgeIDs.
func (h *HeteroGraph) EdgeIDs(t int, src, dst arrayops.IdArray) (arrayops.IdArray, arrayops.IdArray, arrayops.IdArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return arrayops.IdArray{}, arrayops.IdArray{}, arrayops.IdArray{}, err
	}
	s, d, e := rel.EdgeIDs(src, dst)
	return s, d, e, nil
}

// FindEdges forwards to relation t's FindEdges.
func (h *HeteroGraph) FindEdges(t int, eids arrayops.IdArray) (arrayops.IdArray, arrayops.IdArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return arrayops.IdArray{}, arrayops.IdArray{}, err
	}
	return rel.FindEdges(eids)
}

// InEdges forwards to relation t's InEdges.
func (h *HeteroGraph) InEdges(t int, dst uint64) (bipartite.EdgeArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return bipartite.EdgeArray{}, err
	}
	return rel.InEdges(dst), nil
}

// InEdgesVec forwards to relation t's InEdgesVec.
func (h *HeteroGraph) InEdgesVec(t int, dsts arrayops.IdArray) (bipartite.EdgeArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return bipartite.EdgeArray{}, err
	}
	return rel.InEdgesVec(dsts), nil
}

// OutEdges forwards to relation t's OutEdges.
func (h *HeteroGraph) OutEdges(t int, src uint64) (bipartite.EdgeArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return bipartite.EdgeArray{}, err
	}
	return rel.OutEdges(src), nil
}

// OutEdgesVec forwards to relation t's OutEdgesVec.
func (h *HeteroGraph) OutEdgesVec(t int, srcs arrayops.IdArray) (bipartite.EdgeArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return bipartite.EdgeArray{}, err
	}
	return rel.OutEdgesVec(srcs), nil
}

// Edges forwards to relation t's Edges.
func (h *HeteroGraph) Edges(t int, order string) (bipartite.EdgeArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return bipartite.EdgeArray{}, err
	}
	return rel.Edges(order)
}

// InDegree forwards to relation t's InDegree.
func (h *HeteroGraph) InDegree(t int, dst uint64) (uint64, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return 0, err
	}
	return rel.InDegree(dst), nil
}

// InDegrees forwards to relation t's InDegrees.
func (h *HeteroGraph) InDegrees(t int, dsts arrayops.IdArray) (arrayops.IdArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return arrayops.IdArray{}, err
	}
	return rel.InDegrees(dsts), nil
}

// OutDegree forwards to relation t's OutDegree.
func (h *HeteroGraph) OutDegree(t int, src uint64) (uint64, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return 0, err
	}
	return rel.OutDegree(src), nil
}

// OutDegrees forwards to relation t's OutDegrees.
func (h *HeteroGraph) OutDegrees(t int, srcs arrayops.IdArray) (arrayops.IdArray, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return arrayops.IdArray{}, err
	}
	return rel.OutDegrees(srcs), nil
}

// GetAdj forwards to relation t's GetAdj.
func (h *HeteroGraph) GetAdj(t int, transpose bool, format string) (interface{}, error) {
	rel, err := h.RelationGraph(t)
	if err != nil {
		return nil, err
	}
	return rel.GetAdj(transpose, format)
}

// AddEdges always fails: a HeteroGraph is immutable once constructed.
func (h *HeteroGraph) AddEdges(int, arrayops.IdArray, arrayops.IdArray) error {
	return heterographErrorf("AddEdges", ErrImmutable, "graph is read-only")
}
