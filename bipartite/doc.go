// SPDX-License-Identifier: MIT
// Package bipartite implements a read-only, two-vertex-type relation
// graph. A single edge multiset may be held in up to three adjacency
// formats — COO, out-CSR, in-CSR — and the package lazily materializes
// whichever format a query needs, caching the result for the graph's
// lifetime.
//
// A Graph is built once via FromCOO or FromCSR and never mutated
// afterward; Add* and Clear exist only to satisfy the external operation
// surface and always fail with ErrImmutable.
package bipartite
