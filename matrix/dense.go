// SPDX-License-Identifier: MIT

// Package matrix: the Matrix facade.
//
// Matrix wraps exactly one Container plus a storage-order tag fixed at
// construction, translates (row, col) into linear offsets, and implements
// element access, fill and row/column swaps. Arithmetic lives in
// ops_elementwise.go, structural edits in impl_structure.go.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a dense rows×cols matrix of T backed by a Container.
// The zero value is not usable; construct with New, NewDense, FromRows, ...
type Matrix[T Number] struct {
	store Container[T] // exclusively owned
	order Order        // fixed for the lifetime of the matrix
}

// newStorage allocates a container of the requested kind.
func newStorage[T Number](rows, cols int, o Options) (Container[T], error) {
	if o.dynamic {
		return NewDynamic[T](rows, cols)
	}

	return NewFixed[T](rows, cols)
}

// New returns an empty 0×0 matrix. Combine with WithFixed for an empty static matrix.
// Complexity: O(1).
func New[T Number](opts ...Option) *Matrix[T] {
	o := gatherOptions(opts...)
	store, _ := newStorage[T](0, 0, o) // 0×0 never fails

	return &Matrix[T]{store: store, order: o.order}
}

// NewSquare returns an n×n zero matrix.
// Errors: ErrInvalidDimensions if n < 0.
func NewSquare[T Number](n int, opts ...Option) (*Matrix[T], error) {
	return NewDense[T](n, n, opts...)
}

// NewDense returns a rows×cols zero matrix.
// Stage 1 (Validate): rows >= 0 and cols >= 0.
// Stage 2 (Prepare): resolve options, allocate storage.
// Errors: ErrInvalidDimensions on negative dimensions.
// Complexity: O(rows*cols) time and memory.
func NewDense[T Number](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf("NewDense", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	store, err := newStorage[T](rows, cols, o)
	if err != nil {
		return nil, denseErrorf("NewDense", rows, cols, err)
	}

	return &Matrix[T]{store: store, order: o.order}, nil
}

// NewFilled returns a rows×cols matrix with every element set to v.
func NewFilled[T Number](rows, cols int, v T, opts ...Option) (*Matrix[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	m.Fill(v)

	return m, nil
}

// FromRows builds a matrix from a nested literal, one inner slice per row.
//
// Implementation:
//   - Stage 1: every row must have len(rows[0]) elements, else ErrShape naming the row.
//   - Stage 2: allocate len(rows)×len(rows[0]) and copy through Index.
//
// An empty literal yields a 0×0 matrix.
// Complexity: O(rows*cols).
func FromRows[T Number](rows [][]T, opts ...Option) (*Matrix[T], error) {
	var r, c, i, j int
	r = len(rows)
	if r > 0 {
		c = len(rows[0])
	}
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d elements, want %d: %w", i, len(rows[i]), c, ErrShape)
		}
	}

	m, err := NewDense[T](r, c, opts...)
	if err != nil {
		return nil, err
	}
	data := m.store.Data()
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data[m.Index(i, j)] = rows[i][j]
		}
	}

	return m, nil
}

// FromSlice copies rows*cols elements of data verbatim into the backing array,
// so data must already be laid out in the storage order selected by opts.
// Extra elements are ignored.
// Errors: ErrInvalidDimensions, or ErrDimensionMismatch if len(data) < rows*cols.
// Complexity: O(rows*cols).
func FromSlice[T Number](rows, cols int, data []T, opts ...Option) (*Matrix[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) < rows*cols {
		return nil, denseErrorf("FromSlice", rows, cols, ErrDimensionMismatch)
	}
	copy(m.store.Data(), data[:rows*cols])

	return m, nil
}

// FromContainer wraps an existing container (for example a Mapped file).
// The matrix takes ownership of c; only the order option is consulted.
// Errors: ErrNilMatrix if c is nil.
func FromContainer[T Number](c Container[T], opts ...Option) (*Matrix[T], error) {
	if c == nil {
		return nil, matrixErrorf("FromContainer", ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	return &Matrix[T]{store: c, order: o.order}, nil
}

// Clone returns a deep copy with the same order and storage kind.
// A matrix over Mapped storage clones into in-memory Fixed storage.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	o := Options{order: m.order, dynamic: m.IsDynamic()}
	store, _ := newStorage[T](m.Rows(), m.Cols(), o) // dimensions already valid
	copy(store.Data(), m.store.Data())

	return &Matrix[T]{store: store, order: m.order}
}

// CopyFrom deep-assigns src into m, keeping m's storage order.
//
// Behavior highlights:
//   - same shape: elements copied in logical (row, col) space;
//   - different shape, Dynamic receiver: storage resized first;
//   - different shape, Fixed receiver: ErrStaticShape, m untouched.
//
// Complexity: O(rows*cols).
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if m == nil || src == nil {
		return matrixErrorf("Matrix.CopyFrom", ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if m.Rows() != src.Rows() || m.Cols() != src.Cols() {
		d, ok := m.store.(*Dynamic[T])
		if !ok {
			return denseErrorf("CopyFrom", src.Rows(), src.Cols(), ErrStaticShape)
		}
		d.install(src.Rows(), src.Cols(), make([]T, src.Size()))
	}
	m.copyLogical(src)

	return nil
}

// copyLogical copies src into m element by element in (row, col) space.
// Shapes must match.
func (m *Matrix[T]) copyLogical(src *Matrix[T]) {
	if m.order == src.order {
		copy(m.store.Data(), src.store.Data())
		return
	}
	var i, j int
	dst, from := m.store.Data(), src.store.Data()
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			dst[m.Index(i, j)] = from[src.Index(i, j)]
		}
	}
}

// Rows returns the number of rows (0 for a nil matrix).
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.store.RowCount()
}

// Cols returns the number of columns (0 for a nil matrix).
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.store.ColCount()
}

// Size returns Rows()*Cols().
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return m.store.Size()
}

// Order returns the storage order chosen at construction, DefaultOrder for nil.
func (m *Matrix[T]) Order() Order {
	if m == nil {
		return DefaultOrder
	}

	return m.order
}

// IsDynamic reports whether the matrix supports structural edits.
func (m *Matrix[T]) IsDynamic() bool {
	if m == nil {
		return false
	}
	_, ok := m.store.(*Dynamic[T])

	return ok
}

// Container returns the underlying storage, nil for a nil matrix.
func (m *Matrix[T]) Container() Container[T] {
	if m == nil {
		return nil
	}

	return m.store
}

// Data returns the raw backing array in storage order.
// The slice is invalidated by any structural edit or resize.
func (m *Matrix[T]) Data() []T {
	if m == nil {
		return nil
	}

	return m.store.Data()
}

// Index maps (row, col) to a linear offset without bounds checking:
// row*cols+col for RowMajor, col*rows+row for ColMajor.
// Complexity: O(1).
func (m *Matrix[T]) Index(row, col int) int {
	if m.order == ColMajor {
		return col*m.store.RowCount() + row
	}

	return row*m.store.ColCount() + col
}

// indexOf validates (row, col) and returns its offset.
// Errors: ErrNilMatrix, ErrOutOfRange (negative indices included).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, denseErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.store.RowCount() || col < 0 || col >= m.store.ColCount() {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return m.Index(row, col), nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.store.Data()[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.store.Data()[idx] = v

	return nil
}

// Ref returns a pointer to the element at (row, col) for in-place updates.
// The pointer is invalidated by structural edits and resizes.
func (m *Matrix[T]) Ref(row, col int) (*T, error) {
	idx, err := m.indexOf("Ref", row, col)
	if err != nil {
		return nil, err
	}

	return &m.store.Data()[idx], nil
}

// Fill overwrites every element with v.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Fill(v T) {
	if m == nil {
		return
	}
	data := m.store.Data()
	for i := range data {
		data[i] = v
	}
}

// SwapRows exchanges rows a and b.
// Under RowMajor the rows are contiguous and move through the scratch buffer;
// under ColMajor the columns are walked element by element.
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(cols).
func (m *Matrix[T]) SwapRows(a, b int) error {
	if m == nil {
		return denseErrorf("SwapRows", a, b, ErrNilMatrix)
	}
	rows := m.store.RowCount()
	if a < 0 || a >= rows || b < 0 || b >= rows {
		return denseErrorf("SwapRows", a, b, ErrOutOfRange)
	}
	m.swapUnits(true, a, b)

	return nil
}

// SwapCols exchanges columns a and b.
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(rows).
func (m *Matrix[T]) SwapCols(a, b int) error {
	if m == nil {
		return denseErrorf("SwapCols", a, b, ErrNilMatrix)
	}
	cols := m.store.ColCount()
	if a < 0 || a >= cols || b < 0 || b >= cols {
		return denseErrorf("SwapCols", a, b, ErrOutOfRange)
	}
	m.swapUnits(false, a, b)

	return nil
}

// swapUnits swaps two rows (rowOp) or columns; indices are already validated.
func (m *Matrix[T]) swapUnits(rowOp bool, a, b int) {
	if a == b {
		return
	}
	data := m.store.Data()
	outer, inner := blockShape(m.order, m.store.RowCount(), m.store.ColCount())

	if editAxis(m.order, rowOp) == majorAxis {
		// Contiguous path: both units are whole blocks.
		tmp := m.store.Swap()[:inner]
		ua := data[a*inner : (a+1)*inner]
		ub := data[b*inner : (b+1)*inner]
		copy(tmp, ua)
		copy(ua, ub)
		copy(ub, tmp)

		return
	}

	// Strided path: one element per block.
	var blk int
	for blk = 0; blk < outer; blk++ {
		base := blk * inner
		data[base+a], data[base+b] = data[base+b], data[base+a]
	}
}

// kind renders the storage kind for String.
func (m *Matrix[T]) kind() string {
	if m.IsDynamic() {
		return "Dynamic"
	}

	return "Static"
}

// String renders a diagnostic view:
//
//	Matrix<float64>[2][3] // RowMajor, Dynamic
//	1 2 3
//	4 5 6
//
// The format is not meant to be parsed.
// Complexity: O(rows*cols).
func (m *Matrix[T]) String() string {
	if m == nil {
		return "Matrix<nil>"
	}
	var zero T
	var sb strings.Builder
	var i, j int
	fmt.Fprintf(&sb, "Matrix<%T>[%d][%d] // %s, %s\n", zero, m.Rows(), m.Cols(), m.order, m.kind())
	data := m.store.Data()
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, data[m.Index(i, j)])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
