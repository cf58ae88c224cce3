// SPDX-License-Identifier: MIT

// Package matrix: storage containers.
//
// A container owns a linear sequence of elements, the row/column counts and a
// scratch buffer of length max(rows, cols) used transiently by row/column swaps.
// Containers perform NO validation: the Matrix facade checks every index before
// touching Data().
//
// Variants:
//   - Fixed:   dimensions chosen once at construction, never resized.
//   - Dynamic: dimensions may change through Resize (content is reset).
//   - Mapped:  fixed dimensions, elements live in a memory-mapped file (mapped.go).
package matrix

// Container is the storage contract consumed by Matrix.
// Invariant: Size() == RowCount()*ColCount() == len(Data()).
type Container[T Number] interface {
	// Size returns RowCount()*ColCount().
	Size() int
	// RowCount returns the number of rows.
	RowCount() int
	// ColCount returns the number of columns.
	ColCount() int
	// Data exposes the raw backing array. Access is unchecked.
	Data() []T
	// Swap exposes the scratch buffer of length max(RowCount(), ColCount()).
	// A Mapped container of size zero has none.
	Swap() []T
}

// Resizable is implemented by containers whose dimensions may change.
type Resizable[T Number] interface {
	Container[T]
	// Resize reallocates storage for rows×cols zeroed elements.
	// Same dimensions: no-op. Either dimension <= 0: deallocate to 0×0.
	Resize(rows, cols int)
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// ---------- Fixed ----------

// Fixed is a container whose dimensions are set once at construction.
type Fixed[T Number] struct {
	rows, cols int
	data       []T
	swap       []T
}

// NewFixed allocates a rows×cols Fixed container of zero values.
// Errors: ErrInvalidDimensions if rows < 0 or cols < 0.
// Complexity: O(rows*cols).
func NewFixed[T Number](rows, cols int) (*Fixed[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewFixed", ErrInvalidDimensions)
	}

	return &Fixed[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
		swap: make([]T, maxInt(rows, cols)),
	}, nil
}

// Size returns rows*cols.
func (f *Fixed[T]) Size() int { return f.rows * f.cols }

// RowCount returns the number of rows.
func (f *Fixed[T]) RowCount() int { return f.rows }

// ColCount returns the number of columns.
func (f *Fixed[T]) ColCount() int { return f.cols }

// Data returns the backing array.
func (f *Fixed[T]) Data() []T { return f.data }

// Swap returns the scratch buffer.
func (f *Fixed[T]) Swap() []T { return f.swap }

// ---------- Dynamic ----------

// Dynamic is a heap-allocated container whose dimensions may change.
type Dynamic[T Number] struct {
	rows, cols int
	data       []T
	swap       []T
}

// NewDynamic allocates a rows×cols Dynamic container of zero values.
// A zero dimension yields an empty container with the other count preserved,
// so that a 0×3 matrix can still grow by rows.
// Errors: ErrInvalidDimensions if rows < 0 or cols < 0.
// Complexity: O(rows*cols).
func NewDynamic[T Number](rows, cols int) (*Dynamic[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewDynamic", ErrInvalidDimensions)
	}
	d := &Dynamic[T]{rows: rows, cols: cols}
	if rows*cols > 0 {
		d.data = make([]T, rows*cols)
	}
	if n := maxInt(rows, cols); n > 0 {
		d.swap = make([]T, n)
	}

	return d, nil
}

// Size returns rows*cols.
func (d *Dynamic[T]) Size() int { return d.rows * d.cols }

// RowCount returns the number of rows.
func (d *Dynamic[T]) RowCount() int { return d.rows }

// ColCount returns the number of columns.
func (d *Dynamic[T]) ColCount() int { return d.cols }

// Data returns the backing array.
func (d *Dynamic[T]) Data() []T { return d.data }

// Swap returns the scratch buffer.
func (d *Dynamic[T]) Swap() []T { return d.swap }

// Resize drops the current buffer and allocates rows×cols zero values.
//
// Behavior highlights:
//   - identical dimensions: no-op, data kept;
//   - rows <= 0 or cols <= 0: pure deallocation, dimensions become 0×0;
//   - otherwise: old data is NOT preserved (capacity reset, not a reshape).
//
// Complexity: O(rows*cols).
func (d *Dynamic[T]) Resize(rows, cols int) {
	if rows == d.rows && cols == d.cols {
		return
	}
	if rows <= 0 || cols <= 0 {
		d.rows, d.cols = 0, 0
		d.data, d.swap = nil, nil

		return
	}
	d.install(rows, cols, make([]T, rows*cols))
}

// install replaces the buffer with data (already sized rows*cols) and
// reallocates the scratch buffer. Used by structural edits; no validation.
func (d *Dynamic[T]) install(rows, cols int, data []T) {
	Logger().Debug("matrix: storage reallocated",
		"from_rows", d.rows, "from_cols", d.cols,
		"rows", rows, "cols", cols)
	d.rows, d.cols = rows, cols
	d.data = data
	if n := maxInt(rows, cols); n != len(d.swap) {
		d.swap = make([]T, n)
	}
}

// Compile-time interface checks.
var (
	_ Container[float64] = (*Fixed[float64])(nil)
	_ Resizable[float64] = (*Dynamic[float64])(nil)
)
