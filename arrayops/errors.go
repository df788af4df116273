// SPDX-License-Identifier: MIT
package arrayops

import (
	"errors"
	"fmt"
)

// Sentinel errors for the array/sparse primitives. Callers match these with
// errors.Is; wrapped instances always carry call-site context via %w.
var (
	// ErrInvalidIDArray is returned when an id array is empty, has an
	// unsupported width, or is otherwise not usable where one is required.
	ErrInvalidIDArray = errors.New("arrayops: invalid id array")
	// ErrShapeMismatch is returned when two arrays that must have matching
	// lengths (or matrices that must have matching dimensions) don't.
	ErrShapeMismatch = errors.New("arrayops: shape mismatch")
	// ErrBadWidth is returned when an operation that requires a specific
	// integer width is given an array of a different width.
	ErrBadWidth = errors.New("arrayops: bad width")
	// ErrIndexOutOfRange is returned by row/col lookups outside a matrix's
	// declared shape.
	ErrIndexOutOfRange = errors.New("arrayops: index out of range")
)

// arrayopsErrorf wraps sentinel with call-site context of the form
// "arrayops.<op>: <message>: <sentinel>".
func arrayopsErrorf(op string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("arrayops.%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}
