// SPDX-License-Identifier: MIT
package bipartite

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched via errors.Is. See ambient error-kind mapping in
// the package documentation of the sibling packages that share this style.
var (
	// ErrImmutable is returned by any mutation attempt on a constructed graph.
	ErrImmutable = errors.New("bipartite: graph is immutable")
	// ErrUnsupportedOperation marks an op invoked on a format that cannot
	// serve it. Every operation in this package materializes the format it
	// needs on demand, so none of them returns this error.
	ErrUnsupportedOperation = errors.New("bipartite: unsupported operation for available format")
	// ErrBadVertexType is returned when a vtype argument is outside {src,dst}.
	ErrBadVertexType = errors.New("bipartite: bad vertex type")
	// ErrBadOrder is returned when an edges() order tag is outside the
	// closed vocabulary {"", "eid", "srcdst"}.
	ErrBadOrder = errors.New("bipartite: bad edge order")
	// ErrBadFormat is returned when a get_adj fmt tag is outside {"csr","coo"}.
	ErrBadFormat = errors.New("bipartite: bad adjacency format")
	// ErrInvalidIDArray is returned when a required id array is empty or malformed.
	ErrInvalidIDArray = errors.New("bipartite: invalid id array")
	// ErrShapeMismatch is returned when paired arrays disagree in length.
	ErrShapeMismatch = errors.New("bipartite: shape mismatch")
)

func bipartiteErrorf(op string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("bipartite.%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}
