package sampler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayHeapSampleRespectsZeroWeight(t *testing.T) {
	h := NewArrayHeap([]float64{0, 0, 5, 0})
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		require.Equal(t, 2, h.Sample(rng))
	}
}

func TestArrayHeapDeleteExcludesFromFutureSamples(t *testing.T) {
	h := NewArrayHeap([]float64{1, 1, 1})
	h.Delete(0)
	h.Delete(1)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		require.Equal(t, 2, h.Sample(rng))
	}
}

func TestArrayHeapSampleKWithoutReplacementIsDistinct(t *testing.T) {
	h := NewArrayHeap([]float64{1, 2, 3, 4, 5})
	rng := rand.New(rand.NewSource(7))
	idxs := h.SampleKWithoutReplacement(5, rng)
	seen := make(map[int]bool)
	for _, i := range idxs {
		require.False(t, seen[i], "index %d drawn twice", i)
		seen[i] = true
	}
	require.Len(t, idxs, 5)
}
