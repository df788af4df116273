// SPDX-License-Identifier: MIT
package heterograph

import (
	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/katalvlaran/graphflow/bipartite"
)

// VertexSubgraph takes one id-array per vertex type and, for each relation
// t=(sv,dv), calls rel[t].VertexSubgraph(vids[sv], vids[dv]). The new
// heterograph reuses the same meta-graph and the per-relation induced-edge
// arrays.
func (h *HeteroGraph) VertexSubgraph(vids []arrayops.IdArray) (Subgraph, error) {
	if len(vids) != h.Meta.NumVTypes {
		return Subgraph{}, heterographErrorf("VertexSubgraph", ErrInvalidIDArray, "got %d vtype arrays, want %d", len(vids), h.Meta.NumVTypes)
	}
	newRels := make([]*bipartite.Graph, h.Meta.NumETypes())
	inducedEdges := make([]arrayops.IdArray, h.Meta.NumETypes())
	for t := 0; t < h.Meta.NumETypes(); t++ {
		sv, dv := h.Meta.SrcType[t], h.Meta.DstType[t]
		sub := h.Relations[t].VertexSubgraph(vids[sv], vids[dv])
		newRels[t] = sub.Graph
		inducedEdges[t] = sub.InducedEdges
	}
	newG, err := New(h.Meta, newRels)
	if err != nil {
		return Subgraph{}, err
	}
	return Subgraph{Graph: newG, InducedVertices: append([]arrayops.IdArray(nil), vids...), InducedEdges: inducedEdges}, nil
}

// EdgeSubgraph returns the subgraph induced by eids (one id-array per
// relation). preserveNodes selects between the two algorithms in §4.3.
func (h *HeteroGraph) EdgeSubgraph(eids []arrayops.IdArray, preserveNodes bool) (Subgraph, error) {
	if len(eids) != h.Meta.NumETypes() {
		return Subgraph{}, heterographErrorf("EdgeSubgraph", ErrInvalidIDArray, "got %d etype arrays, want %d", len(eids), h.Meta.NumETypes())
	}
	if preserveNodes {
		return h.edgeSubgraphPreserveNodes(eids)
	}
	return h.edgeSubgraphNoPreserveNodes(eids)
}

// edgeSubgraphPreserveNodes runs edge_subgraph(eids[t], true) per relation
// and writes each relation's induced vertices at positions (sv, dv) of the
// result. A vertex type touched by multiple relations gets its value
// written by whichever relation visits last — every writer produces the
// identical full-range array under preserve_nodes=true, so this is safe.
func (h *HeteroGraph) edgeSubgraphPreserveNodes(eids []arrayops.IdArray) (Subgraph, error) {
	newRels := make([]*bipartite.Graph, h.Meta.NumETypes())
	inducedEdges := make([]arrayops.IdArray, h.Meta.NumETypes())
	inducedVerts := make([]arrayops.IdArray, h.Meta.NumVTypes)
	for t := 0; t < h.Meta.NumETypes(); t++ {
		sub, err := h.Relations[t].EdgeSubgraph(eids[t], true)
		if err != nil {
			return Subgraph{}, heterographErrorf("EdgeSubgraph", ErrInvalidIDArray, "etype=%d: %v", t, err)
		}
		newRels[t] = sub.Graph
		inducedEdges[t] = sub.InducedEdges
		sv, dv := h.Meta.SrcType[t], h.Meta.DstType[t]
		inducedVerts[sv] = sub.InducedVerticesSrc
		inducedVerts[dv] = sub.InducedVerticesDst
	}
	newG, err := New(h.Meta, newRels)
	if err != nil {
		return Subgraph{}, err
	}
	return Subgraph{Graph: newG, InducedVertices: inducedVerts, InducedEdges: inducedEdges}, nil
}

// edgeSubgraphNoPreserveNodes is the subtle case: relations sharing a
// vertex type must end with that type densified to a single common id
// space. Algorithm (mirrors HeteroGraph::EdgeSubgraphNoPreserveNodes):
//  1. For each relation t, gather the (src,dst) pairs for eids[t] via COO.
//  2. Bucket src into vtype2incnodes[sv], dst into vtype2incnodes[dv].
//  3. For each vertex type v, relabel_inplace(vtype2incnodes[v]) — the
//     mapping becomes induced_vertices[v]; the bucketed arrays are now in
//     densified space.
//  4. For each relation t=(sv,dv), rebuild from_coo using the densified
//     src/dst slices that were written back into the buckets.
func (h *HeteroGraph) edgeSubgraphNoPreserveNodes(eids []arrayops.IdArray) (Subgraph, error) {
	numE := h.Meta.NumETypes()
	relSrc := make([]arrayops.IdArray, numE)
	relDst := make([]arrayops.IdArray, numE)

	// vtype2incnodes[v] holds pointers into relSrc/relDst slots so that
	// RelabelInplace's in-place rewrite lands directly in the per-relation
	// arrays without a second copy pass.
	vtype2incnodes := make([][]*arrayops.IdArray, h.Meta.NumVTypes)

	for t := 0; t < numE; t++ {
		src, dst, err := h.Relations[t].FindEdges(eids[t])
		if err != nil {
			return Subgraph{}, heterographErrorf("EdgeSubgraph", ErrInvalidIDArray, "etype=%d: %v", t, err)
		}
		relSrc[t] = src
		relDst[t] = dst
		sv, dv := h.Meta.SrcType[t], h.Meta.DstType[t]
		vtype2incnodes[sv] = append(vtype2incnodes[sv], &relSrc[t])
		vtype2incnodes[dv] = append(vtype2incnodes[dv], &relDst[t])
	}

	inducedVerts := make([]arrayops.IdArray, h.Meta.NumVTypes)
	for v := 0; v < h.Meta.NumVTypes; v++ {
		inducedVerts[v] = arrayops.RelabelInplace(vtype2incnodes[v])
	}

	newRels := make([]*bipartite.Graph, numE)
	for t := 0; t < numE; t++ {
		sv, dv := h.Meta.SrcType[t], h.Meta.DstType[t]
		rel, err := bipartite.FromCOO(int64(inducedVerts[sv].Len()), int64(inducedVerts[dv].Len()), relSrc[t], relDst[t])
		if err != nil {
			return Subgraph{}, err
		}
		newRels[t] = rel
	}
	newG, err := New(h.Meta, newRels)
	if err != nil {
		return Subgraph{}, err
	}
	return Subgraph{Graph: newG, InducedVertices: inducedVerts, InducedEdges: append([]arrayops.IdArray(nil), eids...)}, nil
}
