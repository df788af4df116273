// SPDX-License-Identifier: MIT
// Package sampler builds layered "node flow" subgraphs from a heterograph
// relation by stochastic multi-hop expansion: a weighted segment-tree heap
// for draw-without-replacement (ArrayHeap), a per-seed neighbor sampler
// that expands outward hop by hop, a layer-wise sampler that draws whole
// layers jointly with importance weights, and a parallel batch driver that
// fans a seed array out across a worker pool.
package sampler
