// SPDX-License-Identifier: MIT
package arrayops

// CooToCSR builds a CSR from a COO by counting-sort on row. Within a row,
// entries keep their original relative order (a stable bucket sort), so the
// result's Data carries coo.Data verbatim when present, or the original
// position otherwise (edge id = position, per the COO convention).
func CooToCSR(coo COOMatrix) CSRMatrix {
	n := coo.NumRows
	e := coo.Row.Len()
	indptr := make([]uint64, n+1)
	for i := 0; i < e; i++ {
		indptr[coo.Row.Vals[i]+1]++
	}
	for r := int64(0); r < n; r++ {
		indptr[r+1] += indptr[r]
	}
	cursor := make([]uint64, n)
	copy(cursor, indptr[:n])

	indices := make([]uint64, e)
	data := make([]uint64, e)
	hasData := coo.Data.Len() == e
	for i := 0; i < e; i++ {
		r := coo.Row.Vals[i]
		pos := cursor[r]
		indices[pos] = coo.Col.Vals[i]
		if hasData {
			data[pos] = coo.Data.Vals[i]
		} else {
			data[pos] = uint64(i)
		}
		cursor[r]++
	}
	bits := coo.Row.Bits
	return CSRMatrix{
		NumRows: n,
		NumCols: coo.NumCols,
		Indptr:  IdArray{Bits: bits, Vals: indptr},
		Indices: IdArray{Bits: bits, Vals: indices},
		Data:    IdArray{Bits: bits, Vals: data},
	}
}

// CsrToCoo flattens a CSR back into COO form. When withDataOrder is true,
// the output row/col are placed at position eid (csr.Data's value), so the
// result's edge id equals its position and Data is left empty. When false,
// row/col follow CSR traversal order and Data carries the original edge ids
// verbatim (mirroring the reference's Edges(order="") behavior).
func CsrToCoo(csr CSRMatrix, withDataOrder bool) COOMatrix {
	e := csr.Indices.Len()
	rowOut := make([]uint64, e)
	colOut := make([]uint64, e)
	bits := csr.Indices.Bits

	if withDataOrder {
		for r := int64(0); r < csr.NumRows; r++ {
			start, end := csr.RowRange(r)
			for k := start; k < end; k++ {
				eid := csr.Data.Vals[k]
				rowOut[eid] = uint64(r)
				colOut[eid] = csr.Indices.Vals[k]
			}
		}
		return COOMatrix{NumRows: csr.NumRows, NumCols: csr.NumCols,
			Row: IdArray{Bits: bits, Vals: rowOut}, Col: IdArray{Bits: bits, Vals: colOut}}
	}

	dataOut := make([]uint64, e)
	idx := 0
	for r := int64(0); r < csr.NumRows; r++ {
		start, end := csr.RowRange(r)
		for k := start; k < end; k++ {
			rowOut[idx] = uint64(r)
			colOut[idx] = csr.Indices.Vals[k]
			dataOut[idx] = csr.Data.Vals[k]
			idx++
		}
	}
	return COOMatrix{NumRows: csr.NumRows, NumCols: csr.NumCols,
		Row: IdArray{Bits: bits, Vals: rowOut}, Col: IdArray{Bits: bits, Vals: colOut},
		Data: IdArray{Bits: bits, Vals: dataOut}}
}

// CsrTranspose swaps rows and columns while preserving each entry's original
// edge id (unlike a plain CooToCSR(CsrToCoo(...)) round trip which would
// renumber edges by position).
func CsrTranspose(csr CSRMatrix) CSRMatrix {
	coo := CsrToCoo(csr, false)
	swapped := COOMatrix{
		NumRows: csr.NumCols,
		NumCols: csr.NumRows,
		Row:     coo.Col,
		Col:     coo.Row,
		Data:    coo.Data,
	}
	return CooToCSR(swapped)
}

// CsrSliceRows returns the sub-CSR containing only the given rows, in the
// given order, renumbered 0..len(rows)-1. Column indices and edge ids are
// copied verbatim.
func CsrSliceRows(csr CSRMatrix, rows IdArray) CSRMatrix {
	indptr := make([]uint64, rows.Len()+1)
	indices := make([]uint64, 0)
	data := make([]uint64, 0)
	for i, r := range rows.Vals {
		start, end := csr.RowRange(int64(r))
		indices = append(indices, csr.Indices.Vals[start:end]...)
		data = append(data, csr.Data.Vals[start:end]...)
		indptr[i+1] = uint64(len(indices))
	}
	bits := csr.Indices.Bits
	return CSRMatrix{
		NumRows: int64(rows.Len()), NumCols: csr.NumCols,
		Indptr: IdArray{Bits: bits, Vals: indptr}, Indices: IdArray{Bits: bits, Vals: indices},
		Data: IdArray{Bits: bits, Vals: data},
	}
}

// CsrSliceMatrix returns the sub-CSR restricted to rows and cols, both
// renumbered into 0..len(rows)-1 / 0..len(cols)-1 space. Entries whose
// original column falls outside cols are dropped.
func CsrSliceMatrix(csr CSRMatrix, rows, cols IdArray) CSRMatrix {
	colMap := make(map[uint64]uint64, cols.Len())
	for j, c := range cols.Vals {
		colMap[c] = uint64(j)
	}
	indptr := make([]uint64, rows.Len()+1)
	indices := make([]uint64, 0)
	data := make([]uint64, 0)
	for i, r := range rows.Vals {
		start, end := csr.RowRange(int64(r))
		for k := start; k < end; k++ {
			c := csr.Indices.Vals[k]
			if nc, ok := colMap[c]; ok {
				indices = append(indices, nc)
				data = append(data, csr.Data.Vals[k])
			}
		}
		indptr[i+1] = uint64(len(indices))
	}
	bits := csr.Indices.Bits
	return CSRMatrix{
		NumRows: int64(rows.Len()), NumCols: int64(cols.Len()),
		Indptr: IdArray{Bits: bits, Vals: indptr}, Indices: IdArray{Bits: bits, Vals: indices},
		Data: IdArray{Bits: bits, Vals: data},
	}
}

// CsrIsNonZero reports whether entry (r,c) exists. CSR rows are not
// guaranteed sorted by column (CooToCSR is a stable bucket sort, not a
// per-row sort), so this is a linear scan of the row.
func CsrIsNonZero(csr CSRMatrix, r, c uint64) bool {
	start, end := csr.RowRange(int64(r))
	for k := start; k < end; k++ {
		if csr.Indices.Vals[k] == c {
			return true
		}
	}
	return false
}

// CsrIsNonZeroVec is the paired vector form: result[i] = CsrIsNonZero(csr,
// rows[i], cols[i]).
func CsrIsNonZeroVec(csr CSRMatrix, rows, cols IdArray) BoolArray {
	out := make(BoolArray, rows.Len())
	for i := range rows.Vals {
		out[i] = CsrIsNonZero(csr, rows.Vals[i], cols.Vals[i])
	}
	return out
}

// CsrGetRowColIndices returns the column indices of row r.
func CsrGetRowColIndices(csr CSRMatrix, r uint64) IdArray {
	start, end := csr.RowRange(int64(r))
	return IdArray{Bits: csr.Indices.Bits, Vals: append([]uint64(nil), csr.Indices.Vals[start:end]...)}
}

// CsrGetRowData returns the edge ids of row r.
func CsrGetRowData(csr CSRMatrix, r uint64) IdArray {
	start, end := csr.RowRange(int64(r))
	return IdArray{Bits: csr.Data.Bits, Vals: append([]uint64(nil), csr.Data.Vals[start:end]...)}
}

// CsrGetData returns the edge ids of every entry (r,c); a multigraph may
// have more than one parallel edge between the same pair.
func CsrGetData(csr CSRMatrix, r, c uint64) IdArray {
	start, end := csr.RowRange(int64(r))
	out := make([]uint64, 0)
	for k := start; k < end; k++ {
		if csr.Indices.Vals[k] == c {
			out = append(out, csr.Data.Vals[k])
		}
	}
	return IdArray{Bits: csr.Data.Bits, Vals: out}
}

// CsrGetDataAndIndices is the vectorized form of CsrGetData: for each
// (rows[i], cols[i]) pair, gathers every matching edge id. Because a pair
// may match zero, one, or many edges, the result reports the row/col that
// produced each output edge id alongside it.
func CsrGetDataAndIndices(csr CSRMatrix, rows, cols IdArray) (outRows, outCols, outData IdArray) {
	var rr, cc, dd []uint64
	for i := range rows.Vals {
		r, c := rows.Vals[i], cols.Vals[i]
		start, end := csr.RowRange(int64(r))
		for k := start; k < end; k++ {
			if csr.Indices.Vals[k] == c {
				rr = append(rr, r)
				cc = append(cc, c)
				dd = append(dd, csr.Data.Vals[k])
			}
		}
	}
	bits := csr.Indices.Bits
	return IdArray{Bits: bits, Vals: rr}, IdArray{Bits: bits, Vals: cc}, IdArray{Bits: bits, Vals: dd}
}

// CsrGetRowNNZ returns the number of entries in row r.
func CsrGetRowNNZ(csr CSRMatrix, r uint64) uint64 {
	start, end := csr.RowRange(int64(r))
	return end - start
}

// CsrGetRowNNZVec is the vector form of CsrGetRowNNZ.
func CsrGetRowNNZVec(csr CSRMatrix, rows IdArray) IdArray {
	out := make([]uint64, rows.Len())
	for i, r := range rows.Vals {
		out[i] = CsrGetRowNNZ(csr, r)
	}
	return IdArray{Bits: rows.Bits, Vals: out}
}

// pairKey packs (row,col) into a single sortable key for duplicate scans.
func pairKey(row, col uint64) uint64 {
	// Adequate for the ids this module deals with: vertex/edge counts stay
	// well under 2^32 in every code path that calls this.
	return row<<32 | (col & 0xffffffff)
}

// CooHasDuplicate reports whether any (row,col) pair repeats. Stays on a
// plain map rather than IDSet: pairKey packs both ids into one 64-bit key,
// which doesn't fit IDSet's uint32 domain the way a single row's column ids
// do in CsrHasDuplicate.
func CooHasDuplicate(coo COOMatrix) bool {
	seen := make(map[uint64]struct{}, coo.Row.Len())
	for i := range coo.Row.Vals {
		k := pairKey(coo.Row.Vals[i], coo.Col.Vals[i])
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}
	return false
}

// CsrHasDuplicate reports whether any row holds a repeated column. Column
// ids are row-local (a single vertex's neighbor ids), which fit IDSet's
// uint32 domain under the same id-range assumption pairKey relies on, so a
// fresh IDSet per row serves as the dedup set in place of a sort-and-scan.
func CsrHasDuplicate(csr CSRMatrix) bool {
	for r := int64(0); r < csr.NumRows; r++ {
		start, end := csr.RowRange(r)
		if end-start < 2 {
			continue
		}
		seen := NewIDSet()
		for _, col := range csr.Indices.Vals[start:end] {
			if !seen.Add(col) {
				return true
			}
		}
	}
	return false
}
