// SPDX-License-Identifier: MIT
package arrayops

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Backend is the interface this module treats an external typed-array
// runtime as implementing: the primitives spec.md's §1 calls out as "out of
// scope, consumed via interface". arrayops itself is the concrete
// implementation for everything above this package; Backend exists so a
// caller embedding graphflow in a larger system can substitute its own
// array runtime for id-array construction without touching bipartite,
// heterograph, or sampler.
type Backend interface {
	// FromUint32 builds an IdArray from a raw Arrow uint32 array.
	FromUint32(arr *array.Uint32) IdArray
	// FromUint64 builds an IdArray from a raw Arrow uint64 array.
	FromUint64(arr *array.Uint64) IdArray
	// ToArrow exports an IdArray as an arrow.Array, materialized at the
	// width recorded on the array (Bits32 -> uint32, Bits64 -> uint64).
	ToArrow(a IdArray) arrow.Array
}

// ArrowBackend is the one Backend implementation in this module, backed by
// a real arrow/memory allocator. It is the boundary where graphflow's plain
// []uint64-backed IdArray meets an actual columnar buffer library.
type ArrowBackend struct {
	Mem memory.Allocator
}

// NewArrowBackend returns a Backend using the given allocator, or the
// default Go allocator if mem is nil.
func NewArrowBackend(mem memory.Allocator) *ArrowBackend {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &ArrowBackend{Mem: mem}
}

// FromUint32 copies arr's values into a Bits32 IdArray.
func (b *ArrowBackend) FromUint32(arr *array.Uint32) IdArray {
	vals := make([]uint64, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		vals[i] = uint64(arr.Value(i))
	}
	return IdArray{Bits: Bits32, Vals: vals}
}

// FromUint64 copies arr's values into a Bits64 IdArray.
func (b *ArrowBackend) FromUint64(arr *array.Uint64) IdArray {
	vals := make([]uint64, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		vals[i] = arr.Value(i)
	}
	return IdArray{Bits: Bits64, Vals: vals}
}

// ToArrow materializes a as a fresh Arrow array, choosing the builder width
// from a.Bits. The caller owns the returned array and must Release it.
func (b *ArrowBackend) ToArrow(a IdArray) arrow.Array {
	if a.Bits == Bits32 {
		bld := array.NewUint32Builder(b.Mem)
		defer bld.Release()
		bld.Reserve(len(a.Vals))
		for _, v := range a.Vals {
			bld.Append(uint32(v))
		}
		return bld.NewArray()
	}
	bld := array.NewUint64Builder(b.Mem)
	defer bld.Release()
	bld.Reserve(len(a.Vals))
	for _, v := range a.Vals {
		bld.Append(v)
	}
	return bld.NewArray()
}
