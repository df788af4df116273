// SPDX-License-Identifier: MIT
package arrayops

// Width is the logical bit-width of an id array. The concrete storage below
// is always a []uint64, but Bits records what the caller asked for so that
// operations can reject a 32-bit array where a 64-bit one is required
// (BadWidth) without actually shrinking the backing slice.
type Width uint8

const (
	// Bits32 tags an id array as logically 32-bit.
	Bits32 Width = 32
	// Bits64 tags an id array as logically 64-bit.
	Bits64 Width = 64
)

// IdArray is a dense, contiguous, 1-D buffer of unsigned vertex or edge ids.
type IdArray struct {
	Bits Width
	Vals []uint64
}

// NewIdArray wraps vals as an id array of the given width. It does not copy.
func NewIdArray(vals []uint64, bits Width) IdArray {
	return IdArray{Bits: bits, Vals: vals}
}

// Len returns the number of elements.
func (a IdArray) Len() int { return len(a.Vals) }

// Valid reports whether the array's width is one of the two supported and
// its backing slice is non-nil (an empty, non-nil slice is a valid
// zero-length array; a nil slice is not, matching InvalidIdArray semantics
// for "empty/wrong-dtype" inputs).
func (a IdArray) Valid() bool {
	return (a.Bits == Bits32 || a.Bits == Bits64) && a.Vals != nil
}

// Clone returns a deep copy.
func (a IdArray) Clone() IdArray {
	out := make([]uint64, len(a.Vals))
	copy(out, a.Vals)
	return IdArray{Bits: a.Bits, Vals: out}
}

// BoolArray is a dense 1-D buffer of booleans, the result type of lt() and
// the vector forms of csr_is_nonzero.
type BoolArray []bool

// COOMatrix is the (num_rows, num_cols, row[E], col[E]) sparse layout.
// Data is optional: when it has the same length as Row/Col it carries an
// explicit edge id per position (needed when a COO is derived from a CSR
// without renumbering); when empty, edge id is implied by position.
type COOMatrix struct {
	NumRows int64
	NumCols int64
	Row     IdArray
	Col     IdArray
	Data    IdArray
}

// NumEdges returns the edge count.
func (m COOMatrix) NumEdges() int64 { return int64(m.Row.Len()) }

// CSRMatrix is the (num_rows, num_cols, indptr[R+1], indices[E], data[E])
// sparse layout. Row r's out-neighbors are indices[indptr[r]:indptr[r+1]];
// data[k] is the original edge id of that entry.
type CSRMatrix struct {
	NumRows int64
	NumCols int64
	Indptr  IdArray
	Indices IdArray
	Data    IdArray
}

// NumEdges returns the edge count.
func (m CSRMatrix) NumEdges() int64 { return int64(m.Indices.Len()) }

// RowRange returns the [start,end) index range into Indices/Data for row r.
func (m CSRMatrix) RowRange(r int64) (uint64, uint64) {
	return m.Indptr.Vals[r], m.Indptr.Vals[r+1]
}
