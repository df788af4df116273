// SPDX-License-Identifier: MIT
package sampler

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/internal/rng"
)

// batchPlan is one worker's slice of the seed set.
type batchPlan struct {
	workerIndex int
	seeds       []uint64
}

// planBatches splits seeds[batchStart*batchSize:] into ceil(remaining/batchSize)
// batches, then caps the worker count at maxWorkers.
func planBatches(seeds []uint64, batchStart, batchSize, maxWorkers int) []batchPlan {
	if batchSize <= 0 {
		batchSize = len(seeds)
	}
	start := batchStart * batchSize
	if start > len(seeds) {
		start = len(seeds)
	}
	remaining := seeds[start:]

	numBatches := (len(remaining) + batchSize - 1) / batchSize
	if numBatches == 0 {
		return nil
	}
	if maxWorkers > 0 && numBatches > maxWorkers {
		numBatches = maxWorkers
	}

	plans := make([]batchPlan, 0, numBatches)
	for i := 0; i < numBatches; i++ {
		lo := i * batchSize
		hi := lo + batchSize
		if hi > len(remaining) {
			hi = len(remaining)
		}
		if lo >= len(remaining) {
			break
		}
		plans = append(plans, batchPlan{workerIndex: i, seeds: remaining[lo:hi]})
	}
	return plans
}

// materializeForEdgeType forces the CSR view the workers are about to read
// concurrently. Lazy materialization (sync.Once inside bipartite.Graph) is
// safe under concurrent read-only access, but doing it once up front avoids
// every worker racing through the same Once on first touch.
func materializeForEdgeType(g *bipartite.Graph, edgeType string) {
	switch edgeType {
	case "in":
		g.GetInCSR()
	default:
		g.GetOutCSR()
	}
}

// RunNeighborBatches drives NeighborSampleOne across the given seed set,
// split into batches of at most batchSize starting at batchIndex batchStart,
// fanning out to at most maxWorkers goroutines. Each worker gets an
// independent deterministic RNG stream derived from baseSeed.
func RunNeighborBatches(ctx context.Context, g *bipartite.Graph, seeds []uint64, batchStart, batchSize, maxWorkers, numHops, expandFactor int, prob []float64, addSelfLoop bool, edgeType string, baseSeed int64) ([]*NodeFlow, error) {
	materializeForEdgeType(g, edgeType)

	plans := planBatches(seeds, batchStart, batchSize, maxWorkers)
	flows := make([]*NodeFlow, len(plans))

	eg, egCtx := errgroup.WithContext(ctx)
	for _, plan := range plans {
		plan := plan
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			workerRNG := rng.Derive(baseSeed, uint64(plan.workerIndex))
			flow, err := NeighborSampleOne(g, plan.seeds, numHops, expandFactor, prob, addSelfLoop, edgeType, workerRNG)
			if err != nil {
				return err
			}
			flows[plan.workerIndex] = flow
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return flows, nil
}

// RunLayerBatches drives LayerSampleOne across the given seed set the same
// way RunNeighborBatches drives the neighbor sampler.
func RunLayerBatches(ctx context.Context, g *bipartite.Graph, seeds []uint64, batchStart, batchSize, maxWorkers int, layerSizes []int, neighType string, baseSeed int64) ([]*LayerNodeFlow, error) {
	materializeForEdgeType(g, neighType)

	plans := planBatches(seeds, batchStart, batchSize, maxWorkers)
	flows := make([]*LayerNodeFlow, len(plans))

	eg, egCtx := errgroup.WithContext(ctx)
	for _, plan := range plans {
		plan := plan
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			workerRNG := rng.Derive(baseSeed, uint64(plan.workerIndex))
			flow, err := LayerSampleOne(g, plan.seeds, layerSizes, neighType, workerRNG)
			if err != nil {
				return err
			}
			flows[plan.workerIndex] = flow
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return flows, nil
}

// singleWorkerRNG returns one deterministic stream for sampling outside the
// batch driver. No call site in the module uses it: UniformSampling goes
// through RunNeighborBatches, and the tests build their own *rand.Rand.
func singleWorkerRNG(seed int64) *rand.Rand {
	return rng.FromSeed(seed)
}
