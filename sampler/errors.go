// SPDX-License-Identifier: MIT
package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrBadEdgeType is returned for a neigh_type/edge_type tag outside {"in","out"}.
	ErrBadEdgeType = errors.New("sampler: bad edge type")
	// ErrShapeMismatch is returned when a probability vector's length doesn't
	// equal the graph's edge count.
	ErrShapeMismatch = errors.New("sampler: probability vector length mismatch")
	// ErrInvalidIDArray is returned for an empty or malformed seed/layer-size input.
	ErrInvalidIDArray = errors.New("sampler: invalid id array")
)

func samplerErrorf(op string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("sampler.%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}
