// SPDX-License-Identifier: MIT
package sampler

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/katalvlaran/graphflow/bipartite"
)

// neighPosEntry records, for one expanded vertex, where its raw sampled
// neighbors/edges live in the owning layer's flat neighList/edgeList.
type neighPosEntry struct {
	dst          uint64
	start, count int
}

// sampleLayer is one BFS layer's working state during neighbor sampling.
type sampleLayer struct {
	vertices  []uint64
	neighPos  []neighPosEntry
	neighList []uint64
	edgeList  []uint64
}

func sortUint64Asc(s []uint64) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

// uniqueInFirstSeenOrder deduplicates a layer's raw vertex list while
// keeping first-seen order, using a Roaring bitmap in place of the
// unordered_set<dgl_id_t> the reference sampler builds per layer.
func uniqueInFirstSeenOrder(vals []uint64) []uint64 {
	seen := arrayops.NewIDSet()
	out := make([]uint64, 0, len(vals))
	for _, v := range vals {
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	return out
}

// sampleOneNeighborList implements §4.5 step 2b for a single destination's
// neighbor list. neighbors/edges are the CSR row's raw (col, data) pair.
func sampleOneNeighborList(neighbors, edges []uint64, k int, prob []float64, rng *rand.Rand) (outN, outE []uint64) {
	n := len(neighbors)
	if n <= k {
		outN = append(outN, neighbors...)
		outE = append(outE, edges...)
		return outN, outE
	}

	if len(prob) == 0 {
		// Uniform sampling.
		if n > 2*k {
			idxSet := make(map[int]struct{}, k)
			for len(idxSet) < k {
				idxSet[rng.Intn(n)] = struct{}{}
			}
			idxs := make([]int, 0, k)
			for i := range idxSet {
				idxs = append(idxs, i)
			}
			sort.Ints(idxs)
			for _, i := range idxs {
				outN = append(outN, neighbors[i])
				outE = append(outE, edges[i])
			}
			return outN, outE
		}
		// k is large relative to n: sample the complement to drop, in
		// place of drawing k directly, per the reference NegateArray path.
		drop := n - k
		dropSet := make(map[int]struct{}, drop)
		for len(dropSet) < drop {
			dropSet[rng.Intn(n)] = struct{}{}
		}
		for i := 0; i < n; i++ {
			if _, gone := dropSet[i]; !gone {
				outN = append(outN, neighbors[i])
				outE = append(outE, edges[i])
			}
		}
		return outN, outE
	}

	// Weighted sampling via the ArrayHeap. The reference implementation
	// sorts the resulting vertex and edge lists ascending INDEPENDENTLY
	// after drawing, which breaks pairwise (neighbor,edge) correspondence
	// whenever either list wasn't already sorted. This is preserved
	// bug-for-bug; see the design notes in DESIGN.md.
	weights := make([]float64, n)
	for i, e := range edges {
		weights[i] = prob[e]
	}
	heap := NewArrayHeap(weights)
	idxs := heap.SampleKWithoutReplacement(k, rng)
	for _, i := range idxs {
		outN = append(outN, neighbors[i])
		outE = append(outE, edges[i])
	}
	sortUint64Asc(outN)
	sortUint64Asc(outE)
	return outN, outE
}

// appendSelfLoop implements §4.5 step 2c: if d has no self-edge already
// among the sampled neighbors, append d with a self-edge id looked up in
// the vertex's full original neighbor list (or NoOriginalEdge if none
// exists there either).
func appendSelfLoop(d uint64, sampledN, sampledE []uint64, origN, origE []uint64) ([]uint64, []uint64) {
	for _, v := range sampledN {
		if v == d {
			return sampledN, sampledE
		}
	}
	eid := NoOriginalEdge
	for i, v := range origN {
		if v == d {
			eid = origE[i]
			break
		}
	}
	return append(sampledN, d), append(sampledE, eid)
}

// NeighborSampleOne runs the neighbor sampler (§4.5) for a single batch of
// seeds against one relation graph, treated as CSR via edgeType.
func NeighborSampleOne(g *bipartite.Graph, seeds []uint64, numHops, expandFactor int, prob []float64, addSelfLoop bool, edgeType string, rng *rand.Rand) (*NodeFlow, error) {
	var csr *arrayops.CSRMatrix
	switch edgeType {
	case "in":
		csr = g.GetInCSR()
	case "out":
		csr = g.GetOutCSR()
	default:
		return nil, samplerErrorf("NeighborSampleOne", ErrBadEdgeType, "edge_type=%q", edgeType)
	}
	if len(prob) != 0 && len(prob) != int(csr.NumEdges()) {
		return nil, samplerErrorf("NeighborSampleOne", ErrShapeMismatch, "probability len=%d num_edges=%d", len(prob), csr.NumEdges())
	}

	layers := make([]*sampleLayer, numHops+1)
	layers[0] = &sampleLayer{vertices: uniqueInFirstSeenOrder(seeds)}

	for L := 1; L <= numHops; L++ {
		prev := layers[L-1]
		for _, d := range prev.vertices {
			start, end := csr.RowRange(int64(d))
			origN := append([]uint64(nil), csr.Indices.Vals[start:end]...)
			origE := append([]uint64(nil), csr.Data.Vals[start:end]...)

			sampN, sampE := sampleOneNeighborList(origN, origE, expandFactor, prob, rng)
			if addSelfLoop {
				sampN, sampE = appendSelfLoop(d, sampN, sampE, origN, origE)
			}

			pos := len(prev.neighList)
			prev.neighList = append(prev.neighList, sampN...)
			prev.edgeList = append(prev.edgeList, sampE...)
			prev.neighPos = append(prev.neighPos, neighPosEntry{dst: d, start: pos, count: len(sampN)})
		}
		layers[L] = &sampleLayer{vertices: uniqueInFirstSeenOrder(prev.neighList)}
	}

	return constructNodeFlow(layers, numHops, edgeType)
}

// constructNodeFlow assembles the layered DAG (§4.5, "NodeFlow
// construction") by walking layers from innermost (deepest) to outermost
// (seeds), assigning dense flow-vertex ids and translating each expanded
// vertex's raw sampled neighbors via the adjacent, already-assigned deeper
// layer's id map.
func constructNodeFlow(layers []*sampleLayer, numHops int, edgeType string) (*NodeFlow, error) {
	H := numHops + 1
	nodeMapping := make([]uint64, 0)
	layerOffsets := make([]uint64, H+1)
	flowMaps := make([]map[uint64]uint64, H)

	indptr := []uint64{0}
	indices := make([]uint64, 0)
	edgeMapping := make([]uint64, 0)

	for L := numHops; L >= 0; L-- {
		verts := append([]uint64(nil), layers[L].vertices...)
		if L != 0 {
			sortUint64Asc(verts)
		}
		m := make(map[uint64]uint64, len(verts))
		for _, v := range verts {
			m[v] = uint64(len(nodeMapping))
			nodeMapping = append(nodeMapping, v)
		}
		flowMaps[L] = m
		h := numHops - L
		layerOffsets[h+1] = uint64(len(nodeMapping))

		if L == numHops {
			// Deepest layer: every vertex is a leaf, contributing an
			// empty row each.
			for range verts {
				indptr = append(indptr, indptr[len(indptr)-1])
			}
			continue
		}

		neighPos := append([]neighPosEntry(nil), layers[L].neighPos...)
		if L != 0 {
			sort.Slice(neighPos, func(i, j int) bool { return neighPos[i].dst < neighPos[j].dst })
		}
		deeperMap := flowMaps[L+1]
		for _, entry := range neighPos {
			for k := entry.start; k < entry.start+entry.count; k++ {
				rawNeighbor := layers[L].neighList[k]
				indices = append(indices, deeperMap[rawNeighbor])
				edgeMapping = append(edgeMapping, layers[L].edgeList[k])
			}
			indptr = append(indptr, uint64(len(indices)))
		}
	}

	flowOffsets := []uint64{0}
	for L := numHops - 1; L >= 0; L-- {
		flowOffsets = append(flowOffsets, flowOffsets[len(flowOffsets)-1]+uint64(len(layers[L].neighList)))
	}

	m := len(indices)
	data := arrayops.Range(0, int64(m), arrayops.Bits64)
	n := len(nodeMapping)
	csr := arrayops.CSRMatrix{
		NumRows: int64(n), NumCols: int64(n),
		Indptr:  arrayops.IdArray{Bits: arrayops.Bits64, Vals: indptr},
		Indices: arrayops.IdArray{Bits: arrayops.Bits64, Vals: indices},
		Data:    data,
	}

	var flowGraph *bipartite.Graph
	var err error
	if edgeType == "in" {
		flowGraph, err = bipartite.FromCSRAsIn(int64(n), int64(n), csr)
	} else {
		flowGraph, err = bipartite.FromCSR(int64(n), int64(n), csr.Indptr, csr.Indices, csr.Data)
	}
	if err != nil {
		return nil, err
	}

	return &NodeFlow{
		Graph:        flowGraph,
		NodeMapping:  arrayops.IdArray{Bits: arrayops.Bits64, Vals: nodeMapping},
		EdgeMapping:  arrayops.IdArray{Bits: arrayops.Bits64, Vals: edgeMapping},
		LayerOffsets: arrayops.IdArray{Bits: arrayops.Bits64, Vals: layerOffsets},
		FlowOffsets:  arrayops.IdArray{Bits: arrayops.Bits64, Vals: flowOffsets},
	}, nil
}
