// SPDX-License-Identifier: MIT
package sampler

import (
	"context"

	"github.com/katalvlaran/graphflow/bipartite"
)

// UniformSampling runs the neighbor sampler with an empty probability
// vector (uniform expansion at every hop).
func UniformSampling(ctx context.Context, g *bipartite.Graph, seeds []uint64, batchStart, batchSize, maxWorkers, expandFactor, numHops int, neighType string, addSelfLoop bool, baseSeed int64) ([]*NodeFlow, error) {
	return RunNeighborBatches(ctx, g, seeds, batchStart, batchSize, maxWorkers, numHops, expandFactor, nil, addSelfLoop, neighType, baseSeed)
}

// NeighborSampling runs the neighbor sampler with an explicit per-edge
// probability vector. An empty vector means uniform; a non-empty one must
// have length equal to the graph's edge count under neighType.
func NeighborSampling(ctx context.Context, g *bipartite.Graph, seeds []uint64, batchStart, batchSize, maxWorkers, expandFactor, numHops int, neighType string, addSelfLoop bool, probability []float64, baseSeed int64) ([]*NodeFlow, error) {
	return RunNeighborBatches(ctx, g, seeds, batchStart, batchSize, maxWorkers, numHops, expandFactor, probability, addSelfLoop, neighType, baseSeed)
}

// LayerSampling runs the layer-wise sampler across batches of seeds.
func LayerSampling(ctx context.Context, g *bipartite.Graph, seeds []uint64, batchStart, batchSize, maxWorkers int, layerSizes []int, neighType string, baseSeed int64) ([]*LayerNodeFlow, error) {
	return RunLayerBatches(ctx, g, seeds, batchStart, batchSize, maxWorkers, layerSizes, neighType, baseSeed)
}
