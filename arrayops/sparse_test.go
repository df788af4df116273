package arrayops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func idarr(vals ...uint64) IdArray {
	return IdArray{Bits: Bits64, Vals: vals}
}

func TestCooToCsrToCooRoundTrip(t *testing.T) {
	coo := COOMatrix{
		NumRows: 3, NumCols: 4,
		Row: idarr(0, 0, 1, 2),
		Col: idarr(1, 2, 0, 3),
	}
	csr := CooToCSR(coo)
	require.Equal(t, []uint64{0, 2, 3, 4}, csr.Indptr.Vals)

	back := CsrToCoo(csr, true)
	require.Equal(t, coo.Row.Vals, back.Row.Vals)
	require.Equal(t, coo.Col.Vals, back.Col.Vals)
	require.Equal(t, 0, back.Data.Len())
}

func TestCsrTransposePreservesEdgeIDs(t *testing.T) {
	coo := COOMatrix{
		NumRows: 3, NumCols: 4,
		Row: idarr(0, 0, 1, 2),
		Col: idarr(1, 2, 0, 3),
	}
	out := CooToCSR(coo)
	in := CsrTranspose(out)
	require.EqualValues(t, 4, in.NumRows)
	require.EqualValues(t, 3, in.NumCols)

	// Every edge id from the original CSR must still appear exactly once.
	seen := map[uint64]bool{}
	for _, d := range in.Data.Vals {
		seen[d] = true
	}
	require.Len(t, seen, 4)
	for i := uint64(0); i < 4; i++ {
		require.True(t, seen[i])
	}
}

func TestCsrSliceMatrixDropsOutOfSetColumns(t *testing.T) {
	coo := COOMatrix{
		NumRows: 3, NumCols: 4,
		Row: idarr(0, 0, 1, 2),
		Col: idarr(1, 2, 0, 3),
	}
	csr := CooToCSR(coo)
	sub := CsrSliceMatrix(csr, idarr(0, 2), idarr(1, 3))
	require.EqualValues(t, 2, sub.NumRows)
	require.EqualValues(t, 2, sub.NumCols)
	// row 0 keeps only col 1 (renumbered to 0); row 2 (now row index 1) keeps col 3 (renumbered to 1).
	require.Equal(t, []uint64{0, 1, 2}, sub.Indptr.Vals)
	require.Equal(t, []uint64{0, 1}, sub.Indices.Vals)
}

func TestRelabelInplaceUnionFirstSeenOrder(t *testing.T) {
	a := idarr(5, 2, 5)
	b := idarr(2, 9)
	mapping := RelabelInplace([]*IdArray{&a, &b})
	require.Equal(t, []uint64{5, 2, 9}, mapping.Vals)
	require.Equal(t, []uint64{0, 1, 0}, a.Vals)
	require.Equal(t, []uint64{1, 2}, b.Vals)
}

func TestCooHasDuplicate(t *testing.T) {
	dup := COOMatrix{NumRows: 2, NumCols: 2, Row: idarr(0, 0), Col: idarr(1, 1)}
	require.True(t, CooHasDuplicate(dup))

	nodup := COOMatrix{NumRows: 2, NumCols: 2, Row: idarr(0, 1), Col: idarr(1, 0)}
	require.False(t, CooHasDuplicate(nodup))
}

func TestIDSetAddContains(t *testing.T) {
	s := NewIDSet()
	require.True(t, s.Add(3))
	require.False(t, s.Add(3))
	require.True(t, s.Contains(3))
	require.False(t, s.Contains(4))
	require.Equal(t, 1, s.Len())
}

func TestHStackConcatenates(t *testing.T) {
	out := HStack(idarr(0, 0, 1, 2), idarr(1, 2, 0, 3))
	require.Equal(t, []uint64{0, 0, 1, 2, 1, 2, 0, 3}, out.Vals)
}
