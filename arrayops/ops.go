// SPDX-License-Identifier: MIT
package arrayops

// Range returns [lo, hi) as a dense id array.
func Range(lo, hi int64, bits Width) IdArray {
	if hi < lo {
		hi = lo
	}
	vals := make([]uint64, 0, hi-lo)
	for i := lo; i < hi; i++ {
		vals = append(vals, uint64(i))
	}
	return IdArray{Bits: bits, Vals: vals}
}

// Full returns a length-n array filled with value.
func Full(value uint64, length int, bits Width) IdArray {
	vals := make([]uint64, length)
	for i := range vals {
		vals[i] = value
	}
	return IdArray{Bits: bits, Vals: vals}
}

// VecToArray wraps a plain slice as an id array of the given width, copying
// it so the caller's slice can be reused freely afterward.
func VecToArray(vals []uint64, bits Width) IdArray {
	out := make([]uint64, len(vals))
	copy(out, vals)
	return IdArray{Bits: bits, Vals: out}
}

// IndexSelect gathers arr[idx[i]] for each i, i.e. arr.IndexSelect(idx)[i] ==
// arr[idx[i]]. Out-of-range indices return ErrIndexOutOfRange.
func IndexSelect(arr, idx IdArray) (IdArray, error) {
	out := make([]uint64, idx.Len())
	for i, j := range idx.Vals {
		if j >= uint64(len(arr.Vals)) {
			return IdArray{}, arrayopsErrorf("IndexSelect", ErrIndexOutOfRange, "index %d at position %d, len=%d", j, i, len(arr.Vals))
		}
		out[i] = arr.Vals[j]
	}
	return IdArray{Bits: arr.Bits, Vals: out}, nil
}

// HStack concatenates a followed by b into a single array, the flattening
// convention used by get_adj's COO output (row then col).
func HStack(a, b IdArray) IdArray {
	out := make([]uint64, 0, a.Len()+b.Len())
	out = append(out, a.Vals...)
	out = append(out, b.Vals...)
	bits := a.Bits
	if bits == 0 {
		bits = b.Bits
	}
	return IdArray{Bits: bits, Vals: out}
}

// RelabelInplace computes the union of all values across arrs in first-seen
// order, rewrites every array in arrs to hold the densified index of each
// original value, and returns the ordered union (original ids indexed by
// their new dense id).
func RelabelInplace(arrs []*IdArray) IdArray {
	seen := make(map[uint64]uint64)
	mapping := make([]uint64, 0)
	bits := Bits64
	for _, a := range arrs {
		if a.Bits != 0 {
			bits = a.Bits
		}
		for _, v := range a.Vals {
			if _, ok := seen[v]; !ok {
				seen[v] = uint64(len(mapping))
				mapping = append(mapping, v)
			}
		}
	}
	for _, a := range arrs {
		for i, v := range a.Vals {
			a.Vals[i] = seen[v]
		}
	}
	return IdArray{Bits: bits, Vals: mapping}
}

// LT returns, for each element, whether it is strictly less than scalar.
func LT(arr IdArray, scalar uint64) BoolArray {
	out := make(BoolArray, arr.Len())
	for i, v := range arr.Vals {
		out[i] = v < scalar
	}
	return out
}
