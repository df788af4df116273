// SPDX-License-Identifier: MIT
package sampler

import (
	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/katalvlaran/graphflow/bipartite"
)

// NoOriginalEdge is the sentinel stored in a NodeFlow's EdgeMapping at
// positions corresponding to a synthetic self-loop inserted on a vertex
// that had no self-edge in the source graph. IdArray is an unsigned buffer,
// so the reference implementation's "-1 edge id" becomes the all-ones
// value for the array's width instead of a signed -1.
const NoOriginalEdge uint64 = ^uint64(0)

// NodeFlow is the output of a sampler run: a layered DAG of vertices and
// edges, expressed as a bipartite graph plus four bookkeeping arrays.
type NodeFlow struct {
	Graph        *bipartite.Graph
	NodeMapping  arrayops.IdArray
	EdgeMapping  arrayops.IdArray
	LayerOffsets arrayops.IdArray
	FlowOffsets  arrayops.IdArray
}

// NumLayers returns the number of layers H (layer_offsets has H+1 entries).
func (f *NodeFlow) NumLayers() int { return f.LayerOffsets.Len() - 1 }

// LayerNodeFlow is a NodeFlow produced by the layer-wise sampler, which
// additionally tracks each flow vertex's importance-sampling probability —
// a structural byproduct of ConstructLayers (§4.6 step 2c) that the
// distilled interface doesn't name but that the algorithm computes
// regardless of whether a caller reads it.
type LayerNodeFlow struct {
	NodeFlow
	probabilities []float64
}

// Probabilities returns the per-flow-vertex importance weight computed
// during layer construction (1.0 for every seed-layer vertex).
func (f *LayerNodeFlow) Probabilities() []float64 { return f.probabilities }
