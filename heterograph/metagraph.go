// SPDX-License-Identifier: MIT
package heterograph

// MetaGraph is a small immutable directed graph whose vertices are
// vertex-type ids and whose edges are edge-type ids: edge t names the
// (srcType, dstType) pair for relation t.
type MetaGraph struct {
	NumVTypes int
	// SrcType[t] / DstType[t] give the vertex types relation t connects.
	SrcType []int
	DstType []int
}

// NewMetaGraph builds a meta-graph over numVTypes vertex types with one
// edge per (srcType[i], dstType[i]) pair.
func NewMetaGraph(numVTypes int, srcType, dstType []int) *MetaGraph {
	return &MetaGraph{NumVTypes: numVTypes, SrcType: srcType, DstType: dstType}
}

// NumETypes returns the number of relations (meta-graph edges).
func (m *MetaGraph) NumETypes() int { return len(m.SrcType) }

// OutEdges returns the etype ids whose src vertex type is v, mirroring the
// reference meta-graph's OutEdgeVec(vtype) used by the HeteroGraph
// constructor's per-vertex-type validation walk.
func (m *MetaGraph) OutEdges(v int) []int {
	var out []int
	for t, sv := range m.SrcType {
		if sv == v {
			out = append(out, t)
		}
	}
	return out
}

// InEdges returns the etype ids whose dst vertex type is v.
func (m *MetaGraph) InEdges(v int) []int {
	var out []int
	for t, dv := range m.DstType {
		if dv == v {
			out = append(out, t)
		}
	}
	return out
}
