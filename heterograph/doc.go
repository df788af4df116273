// SPDX-License-Identifier: MIT
// Package heterograph composes many bipartite relation graphs under a
// shared meta-graph (a small vertex-type / edge-type schema), forwarding
// per-relation queries and implementing the cross-relation subgraph
// operations that must keep vertex identity consistent across relations
// that share a vertex type.
package heterograph
