// SPDX-License-Identifier: MIT
package arrayops

import roaring "github.com/RoaringBitmap/roaring/v2"

// IDSet is a compressed membership set over uint32 vertex/edge ids, backed
// by a Roaring bitmap. It replaces the unordered_set<dgl_id_t> the reference
// sampler builds per layer to deduplicate visited vertices — a bitmap is a
// better fit than a Go map for the dense small-integer ids this module
// deals with, and it is exercised on every sampling call.
type IDSet struct {
	bm *roaring.Bitmap
}

// NewIDSet returns an empty set.
func NewIDSet() *IDSet {
	return &IDSet{bm: roaring.New()}
}

// Add inserts id and reports whether it was newly added (false if it was
// already present).
func (s *IDSet) Add(id uint64) bool {
	return s.bm.CheckedAdd(uint32(id))
}

// Contains reports whether id is present.
func (s *IDSet) Contains(id uint64) bool {
	return s.bm.Contains(uint32(id))
}

// Len returns the number of distinct ids stored.
func (s *IDSet) Len() int {
	return int(s.bm.GetCardinality())
}

// ToSortedSlice returns every stored id in ascending order.
func (s *IDSet) ToSortedSlice() []uint64 {
	out := make([]uint64, 0, s.Len())
	it := s.bm.Iterator()
	for it.HasNext() {
		out = append(out, uint64(it.Next()))
	}
	return out
}
