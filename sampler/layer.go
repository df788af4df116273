// SPDX-License-Identifier: MIT
package sampler

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/katalvlaran/graphflow/bipartite"
)

// rawLayer is one layer's working state during layer-wise sampling, built
// in construction order (seed layer first, deepest last) before the final
// reversal into NodeFlow order (deepest first).
type rawLayer struct {
	ids   []uint64
	probs []float64
}

// LayerSampleOne runs the layer-wise sampler (§4.6) for a single batch of
// seeds: ConstructLayers draws each layer jointly with replacement from
// the union of the previous layer's out-neighbors, then ConstructFlows
// builds the per-layer-pair CSR.
func LayerSampleOne(g *bipartite.Graph, seeds []uint64, layerSizes []int, neighType string, rng *rand.Rand) (*LayerNodeFlow, error) {
	var csr *arrayops.CSRMatrix
	switch neighType {
	case "in":
		csr = g.GetInCSR()
	case "out":
		csr = g.GetOutCSR()
	default:
		return nil, samplerErrorf("LayerSampleOne", ErrBadEdgeType, "neigh_type=%q", neighType)
	}

	seedIDs := uniqueInFirstSeenOrder(seeds)
	built := []rawLayer{{ids: seedIDs, probs: onesLike(len(seedIDs))}}

	prevIDs := seedIDs
	// layerSizes is ordered deepest-first; construction proceeds from the
	// seed-adjacent layer outward, i.e. last index to first.
	for i := len(layerSizes) - 1; i >= 0; i-- {
		layerSize := layerSizes[i]
		var candidates []uint64
		for _, v := range prevIDs {
			start, end := csr.RowRange(int64(v))
			candidates = append(candidates, csr.Indices.Vals[start:end]...)
		}
		nCandidates := len(candidates)
		if nCandidates == 0 || layerSize == 0 {
			built = append(built, rawLayer{})
			prevIDs = nil
			continue
		}

		drawOrder := make([]uint64, 0)
		occurrences := make(map[uint64]int)
		for j := 0; j < layerSize; j++ {
			d := candidates[rng.Intn(nCandidates)]
			if _, ok := occurrences[d]; !ok {
				drawOrder = append(drawOrder, d)
			}
			occurrences[d]++
		}

		ids := make([]uint64, 0, len(drawOrder))
		probs := make([]float64, 0, len(drawOrder))
		for _, d := range drawOrder {
			c := occurrences[d]
			p := float64(c) * float64(nCandidates) / float64(layerSize)
			ids = append(ids, d)
			probs = append(probs, p)
		}
		built = append(built, rawLayer{ids: ids, probs: probs})
		prevIDs = ids
	}

	// Reverse so the deepest layer comes first.
	final := make([]rawLayer, len(built))
	for i, l := range built {
		final[len(built)-1-i] = l
	}

	H := len(final)
	nodeMapping := make([]uint64, 0)
	probabilities := make([]float64, 0)
	layerOffsets := make([]uint64, H+1)
	for i, l := range final {
		nodeMapping = append(nodeMapping, l.ids...)
		probabilities = append(probabilities, l.probs...)
		layerOffsets[i+1] = uint64(len(nodeMapping))
	}

	indptr := []uint64{0}
	for range final[0].ids {
		indptr = append(indptr, indptr[len(indptr)-1])
	}

	indices := make([]uint64, 0)
	edgeMapping := make([]uint64, 0)
	flowOffsets := []uint64{0}

	for i := 0; i < H-1; i++ {
		deeper, shallower := final[i], final[i+1]
		srcMap := make(map[uint64]uint64, len(deeper.ids))
		base := layerOffsets[i]
		for k, v := range deeper.ids {
			srcMap[v] = base + uint64(k)
		}

		type flowEdge struct {
			srcPos uint64
			eid    uint64
		}
		for _, dst := range shallower.ids {
			start, end := csr.RowRange(int64(dst))
			var pairs []flowEdge
			for e := start; e < end; e++ {
				nb := csr.Indices.Vals[e]
				if pos, ok := srcMap[nb]; ok {
					pairs = append(pairs, flowEdge{srcPos: pos, eid: csr.Data.Vals[e]})
				}
			}
			sort.Slice(pairs, func(a, b int) bool { return pairs[a].srcPos < pairs[b].srcPos })
			for _, p := range pairs {
				indices = append(indices, p.srcPos)
				edgeMapping = append(edgeMapping, p.eid)
			}
			indptr = append(indptr, uint64(len(indices)))
		}
		flowOffsets = append(flowOffsets, uint64(len(indices)))
	}

	n := len(nodeMapping)
	m := len(indices)
	flowCSR := arrayops.CSRMatrix{
		NumRows: int64(n), NumCols: int64(n),
		Indptr:  arrayops.IdArray{Bits: arrayops.Bits64, Vals: indptr},
		Indices: arrayops.IdArray{Bits: arrayops.Bits64, Vals: indices},
		Data:    arrayops.Range(0, int64(m), arrayops.Bits64),
	}
	var flowGraph *bipartite.Graph
	var err error
	if neighType == "in" {
		flowGraph, err = bipartite.FromCSRAsIn(int64(n), int64(n), flowCSR)
	} else {
		flowGraph, err = bipartite.FromCSR(int64(n), int64(n), flowCSR.Indptr, flowCSR.Indices, flowCSR.Data)
	}
	if err != nil {
		return nil, err
	}

	return &LayerNodeFlow{
		NodeFlow: NodeFlow{
			Graph:        flowGraph,
			NodeMapping:  arrayops.IdArray{Bits: arrayops.Bits64, Vals: nodeMapping},
			EdgeMapping:  arrayops.IdArray{Bits: arrayops.Bits64, Vals: edgeMapping},
			LayerOffsets: arrayops.IdArray{Bits: arrayops.Bits64, Vals: layerOffsets},
			FlowOffsets:  arrayops.IdArray{Bits: arrayops.Bits64, Vals: flowOffsets},
		},
		probabilities: probabilities,
	}, nil
}

func onesLike(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
