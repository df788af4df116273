package arrayops

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/require"
)

func TestArrowBackendRoundTripsBits64(t *testing.T) {
	backend := NewArrowBackend(nil)
	ids := idarr(3, 1, 4, 1, 5)

	arr := backend.ToArrow(ids)
	defer arr.Release()

	u64, ok := arr.(*array.Uint64)
	require.True(t, ok)
	back := backend.FromUint64(u64)
	require.Equal(t, ids, back)
}

func TestArrowBackendRoundTripsBits32(t *testing.T) {
	backend := NewArrowBackend(nil)
	ids := IdArray{Bits: Bits32, Vals: []uint64{7, 8, 9}}

	arr := backend.ToArrow(ids)
	defer arr.Release()

	u32, ok := arr.(*array.Uint32)
	require.True(t, ok)
	back := backend.FromUint32(u32)
	require.Equal(t, ids, back)
}
