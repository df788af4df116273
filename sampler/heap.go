// SPDX-License-Identifier: MIT
package sampler

import "math/rand"

// ArrayHeap is a perfect-binary-tree segment sum over [0, 2^ceil(log2 n)),
// used for O(log n) weighted draw-and-remove. Leaves hold weights; each
// internal node holds the sum of its children.
type ArrayHeap struct {
	n     int
	limit int
	heap  []float64
}

// NewArrayHeap builds a heap over the given weights in O(n).
func NewArrayHeap(weights []float64) *ArrayHeap {
	n := len(weights)
	limit := 1
	for limit < n {
		limit <<= 1
	}
	if limit == 0 {
		limit = 1
	}
	heap := make([]float64, limit<<1)
	for i, w := range weights {
		heap[limit+i] = w
	}
	for i := limit - 1; i >= 1; i-- {
		heap[i] = heap[2*i] + heap[2*i+1]
	}
	return &ArrayHeap{n: n, limit: limit, heap: heap}
}

// Delete zeroes out leaf index (and its ancestors' contribution), so later
// draws never select it again. O(log n).
func (h *ArrayHeap) Delete(index int) {
	i := index + h.limit
	w := h.heap[i]
	if w == 0 {
		return
	}
	for i >= 1 {
		h.heap[i] -= w
		i >>= 1
	}
}

// Add increases leaf index's weight by w, propagating the delta upward. O(log n).
func (h *ArrayHeap) Add(index int, w float64) {
	i := index + h.limit
	for i >= 1 {
		h.heap[i] += w
		i >>= 1
	}
}

// Sample draws an index proportional to its current weight, descending
// from the root. O(log n).
func (h *ArrayHeap) Sample(rng *rand.Rand) int {
	xi := h.heap[1] * rng.Float64()
	i := 1
	for i < h.limit {
		i *= 2
		if xi >= h.heap[i] {
			xi -= h.heap[i]
			i++
		}
	}
	return i - h.limit
}

// SampleKWithoutReplacement draws k indices, deleting each as it is drawn
// so it cannot be redrawn.
func (h *ArrayHeap) SampleKWithoutReplacement(k int, rng *rand.Rand) []int {
	out := make([]int, 0, k)
	for i := 0; i < k; i++ {
		idx := h.Sample(rng)
		out = append(out, idx)
		h.Delete(idx)
	}
	return out
}
