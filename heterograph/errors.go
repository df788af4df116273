// SPDX-License-Identifier: MIT
package heterograph

import (
	"errors"
	"fmt"
)

var (
	// ErrImmutable is returned by any mutation attempt on a heterograph.
	ErrImmutable = errors.New("heterograph: graph is immutable")
	// ErrBadVertexType is returned for a vtype id outside the meta-graph's range.
	ErrBadVertexType = errors.New("heterograph: bad vertex type")
	// ErrBadEdgeType is returned for an etype id outside the meta-graph's range.
	ErrBadEdgeType = errors.New("heterograph: bad edge type")
	// ErrShapeMismatch is returned when relation graphs disagree on a shared
	// vertex type's cardinality.
	ErrShapeMismatch = errors.New("heterograph: relation vertex counts disagree")
	// ErrInvalidIDArray is returned when a required per-type id-array slice
	// doesn't have one entry per vertex or edge type.
	ErrInvalidIDArray = errors.New("heterograph: invalid id array")
)

func heterographErrorf(op string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("heterograph.%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}
