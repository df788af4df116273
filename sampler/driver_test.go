package sampler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanBatchesSplitsAndCapsWorkers(t *testing.T) {
	seeds := []uint64{0, 1, 2, 3, 4, 5, 6}
	plans := planBatches(seeds, 0, 2, 10)
	require.Len(t, plans, 4) // ceil(7/2)
	require.Equal(t, []uint64{0, 1}, plans[0].seeds)
	require.Equal(t, []uint64{6}, plans[3].seeds)

	capped := planBatches(seeds, 0, 2, 2)
	require.Len(t, capped, 2)
}

func TestPlanBatchesHonorsBatchStart(t *testing.T) {
	seeds := []uint64{0, 1, 2, 3, 4, 5}
	plans := planBatches(seeds, 1, 2, 10)
	require.Len(t, plans, 2)
	require.Equal(t, []uint64{2, 3}, plans[0].seeds)
	require.Equal(t, []uint64{4, 5}, plans[1].seeds)
}

func TestRunNeighborBatchesProducesOneFlowPerWorker(t *testing.T) {
	g := buildPathGraph(t)
	flows, err := RunNeighborBatches(context.Background(), g, []uint64{4, 3}, 0, 1, 4, 1, 10, nil, false, "in", 1)
	require.NoError(t, err)
	require.Len(t, flows, 2)
	for _, f := range flows {
		require.NotNil(t, f)
	}
}

func TestRunLayerBatchesProducesOneFlowPerWorker(t *testing.T) {
	g := buildK4(t)
	flows, err := RunLayerBatches(context.Background(), g, []uint64{0, 1}, 0, 1, 4, []int{2}, "out", 1)
	require.NoError(t, err)
	require.Len(t, flows, 2)
	for _, f := range flows {
		require.NotNil(t, f)
	}
}
