// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural edits on Dynamic storage: remove/insert a row or column,
//     the append/prepend/pop wrappers, Reshape, TransposeInPlace and Resize.
//
// Contract:
//   - Fixed and Mapped storage reject every shape change with ErrStaticShape;
//     a square TransposeInPlace works on any storage.
//   - Each edit builds a copy plan (copyplan.go), fills a freshly allocated
//     buffer and installs it; raw slices from Data() and pointers from Ref()
//     taken before the edit no longer alias the matrix.
//   - Validation happens before allocation: a failed edit leaves m unchanged.

package matrix

// dynamicStore runs NotNil → Dynamic and returns the editable container.
func (m *Matrix[T]) dynamicStore(method string, a, b int) (*Dynamic[T], error) {
	if m == nil {
		return nil, denseErrorf(method, a, b, ErrNilMatrix)
	}
	d, ok := m.store.(*Dynamic[T])
	if !ok {
		return nil, denseErrorf(method, a, b, ErrStaticShape)
	}

	return d, nil
}

// clamp bounds idx to [0, hi].
func clamp(idx, hi int) int {
	if idx < 0 {
		return 0
	}
	if idx > hi {
		return hi
	}

	return idx
}

// RemoveRow deletes row r, shifting later rows up.
// Errors: ErrNilMatrix, ErrStaticShape, ErrOutOfRange.
// Complexity: O(rows*cols).
func (m *Matrix[T]) RemoveRow(r int) error {
	d, err := m.dynamicStore("RemoveRow", r, 0)
	if err != nil {
		return err
	}
	if r < 0 || r >= d.rows {
		return denseErrorf("RemoveRow", r, 0, ErrOutOfRange)
	}
	outer, inner := blockShape(m.order, d.rows, d.cols)
	p := planRemove(editAxis(m.order, true), outer, inner, r)
	d.install(d.rows-1, d.cols, applyPlan(p, d.data, nil))

	return nil
}

// RemoveCol deletes column c, shifting later columns left.
// Errors: ErrNilMatrix, ErrStaticShape, ErrOutOfRange.
// Complexity: O(rows*cols).
func (m *Matrix[T]) RemoveCol(c int) error {
	d, err := m.dynamicStore("RemoveCol", 0, c)
	if err != nil {
		return err
	}
	if c < 0 || c >= d.cols {
		return denseErrorf("RemoveCol", 0, c, ErrOutOfRange)
	}
	outer, inner := blockShape(m.order, d.rows, d.cols)
	p := planRemove(editAxis(m.order, false), outer, inner, c)
	d.install(d.rows, d.cols-1, applyPlan(p, d.data, nil))

	return nil
}

// InsertRow inserts a new row before index idx.
//
// Behavior highlights:
//   - idx is clamped to [0, Rows()]; out-of-range values append or prepend.
//   - values[j] lands in column j; a short slice is zero-padded, a long one truncated.
//   - an empty 0×0 matrix adopts len(values) as its column count.
//
// Errors: ErrNilMatrix, ErrStaticShape.
// Complexity: O(rows*cols).
func (m *Matrix[T]) InsertRow(idx int, values []T) error {
	d, err := m.dynamicStore("InsertRow", idx, 0)
	if err != nil {
		return err
	}
	rows, cols := d.rows, d.cols
	if rows == 0 && cols == 0 {
		cols = len(values)
	}
	idx = clamp(idx, rows)
	outer, inner := blockShape(m.order, rows, cols)
	p := planInsert(editAxis(m.order, true), outer, inner, idx)
	d.install(rows+1, cols, applyPlan(p, d.data, values))

	return nil
}

// InsertCol inserts a new column before index idx.
// values[i] lands in row i; padding, truncation and clamping follow InsertRow.
// An empty 0×0 matrix adopts len(values) as its row count.
// Errors: ErrNilMatrix, ErrStaticShape.
// Complexity: O(rows*cols).
func (m *Matrix[T]) InsertCol(idx int, values []T) error {
	d, err := m.dynamicStore("InsertCol", 0, idx)
	if err != nil {
		return err
	}
	rows, cols := d.rows, d.cols
	if rows == 0 && cols == 0 {
		rows = len(values)
	}
	idx = clamp(idx, cols)
	outer, inner := blockShape(m.order, rows, cols)
	p := planInsert(editAxis(m.order, false), outer, inner, idx)
	d.install(rows, cols+1, applyPlan(p, d.data, values))

	return nil
}

// AppendRow inserts values as the last row.
func (m *Matrix[T]) AppendRow(values []T) error { return m.InsertRow(m.Rows(), values) }

// PrependRow inserts values as the first row.
func (m *Matrix[T]) PrependRow(values []T) error { return m.InsertRow(0, values) }

// AppendCol inserts values as the last column.
func (m *Matrix[T]) AppendCol(values []T) error { return m.InsertCol(m.Cols(), values) }

// PrependCol inserts values as the first column.
func (m *Matrix[T]) PrependCol(values []T) error { return m.InsertCol(0, values) }

// PopBackRow removes the last row. An empty matrix yields ErrOutOfRange.
func (m *Matrix[T]) PopBackRow() error { return m.RemoveRow(m.Rows() - 1) }

// PopFrontRow removes the first row.
func (m *Matrix[T]) PopFrontRow() error { return m.RemoveRow(0) }

// PopBackCol removes the last column.
func (m *Matrix[T]) PopBackCol() error { return m.RemoveCol(m.Cols() - 1) }

// PopFrontCol removes the first column.
func (m *Matrix[T]) PopFrontCol() error { return m.RemoveCol(0) }

// Reshape reinterprets the matrix as rows×cols keeping the row-major
// flattened sequence of elements: element k of the old row-by-row walk is
// element k of the new one.
//
// Implementation:
//   - RowMajor: the buffer already is that sequence; only the counts change.
//   - ColMajor: elements are re-permuted into a new buffer.
//
// Errors: ErrNilMatrix, ErrStaticShape, ErrInvalidArgument when rows or cols is
// negative or rows*cols != Size().
// Complexity: O(1) for RowMajor, O(rows*cols) for ColMajor.
func (m *Matrix[T]) Reshape(rows, cols int) error {
	d, err := m.dynamicStore("Reshape", rows, cols)
	if err != nil {
		return err
	}
	if rows < 0 || cols < 0 || rows*cols != d.Size() {
		return denseErrorf("Reshape", rows, cols, ErrInvalidArgument)
	}
	if rows == d.rows && cols == d.cols {
		return nil
	}
	if m.order == RowMajor {
		d.install(rows, cols, d.data)
		return nil
	}

	var k, oldRows, oldCols int
	oldRows, oldCols = d.rows, d.cols
	dst := make([]T, len(d.data))
	for k = 0; k < len(d.data); k++ {
		// k is the row-major position; map it through both shapes.
		src := (k%oldCols)*oldRows + k/oldCols
		dst[(k%cols)*rows+k/cols] = d.data[src]
	}
	d.install(rows, cols, dst)

	return nil
}

// TransposeInPlace replaces m with mᵀ, keeping its storage order.
// Square matrices are transposed by element swaps; any other shape needs
// Dynamic storage because the dimensions exchange.
// Errors: ErrNilMatrix, ErrStaticShape for a non-square static matrix.
// Complexity: O(rows*cols).
func (m *Matrix[T]) TransposeInPlace() error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Matrix.TransposeInPlace", err)
	}
	rows, cols := m.Rows(), m.Cols()
	data := m.store.Data()
	var i, j int
	if rows == cols {
		for i = 0; i < rows; i++ {
			for j = i + 1; j < cols; j++ {
				a, b := m.Index(i, j), m.Index(j, i)
				data[a], data[b] = data[b], data[a]
			}
		}

		return nil
	}

	d, ok := m.store.(*Dynamic[T])
	if !ok {
		return matrixErrorf("Matrix.TransposeInPlace", ErrStaticShape)
	}
	dst := make([]T, len(data))
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// (i, j) of m lands on (j, i) of the cols×rows result.
			if m.order == ColMajor {
				dst[i*cols+j] = data[m.Index(i, j)]
			} else {
				dst[j*rows+i] = data[m.Index(i, j)]
			}
		}
	}
	d.install(cols, rows, dst)

	return nil
}

// Resize reallocates storage to rows×cols zero values (content is not kept).
// Non-positive dimensions deallocate to 0×0; identical dimensions are a no-op.
// Errors: ErrNilMatrix, ErrStaticShape.
func (m *Matrix[T]) Resize(rows, cols int) error {
	if m == nil {
		return denseErrorf("Resize", rows, cols, ErrNilMatrix)
	}
	rs, ok := m.store.(Resizable[T])
	if !ok {
		return denseErrorf("Resize", rows, cols, ErrStaticShape)
	}
	rs.Resize(rows, cols)

	return nil
}
