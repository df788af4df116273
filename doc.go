// SPDX-License-Identifier: MIT
// Package graphflow is a read-only heterogeneous graph engine with
// multi-format adjacency storage and multi-hop neighborhood sampling.
//
// It serves graph-learning pipelines that repeatedly issue structural
// queries (neighbors, degrees, edge lookups, subgraph extraction) against
// bipartite relation graphs and heterographs composed of them, and that
// draw stochastic, layered "node flow" subgraphs from batches of seed
// vertices via neighbor expansion or layer-wise importance sampling.
//
// The package layout:
//
//	arrayops     typed id-array and sparse-matrix primitives (COO/CSR kernels)
//	bipartite    a two-vertex-type relation graph over {coo, out-csr, in-csr}
//	heterograph  a collection of bipartite relations sharing a meta-graph
//	sampler      neighbor and layer-wise samplers, and the parallel batch driver
//	cmd/graphctl a demonstration CLI
//
// Graphs constructed by this package are immutable after construction; all
// adjacency formats a bipartite graph may hold always describe the same
// edge multiset with identical edge ids.
package graphflow
