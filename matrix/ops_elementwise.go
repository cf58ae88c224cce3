// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Arithmetic and comparison on Matrix: Add, Sub, Mul, Scale, Div, their
//     in-place forms, Equal and ApproxEqual.
//   - Every operation validates before touching data: a failed call leaves
//     both operands unmodified.
//
// Determinism & Performance:
//   - Operands sharing a storage order run over the flat buffers directly.
//   - Mixed orders fall back to (row, col) loops through Index.
//   - Results inherit the left operand's order and storage kind.

package matrix

// zipInto writes dst[i,j] = f(a[i,j], b[i,j]) for same-shape operands.
// dst may alias a.
func zipInto[T Number](dst, a, b *Matrix[T], f func(x, y T) T) {
	da, db, dd := a.store.Data(), b.store.Data(), dst.store.Data()
	if a.order == b.order && a.order == dst.order {
		for i := range dd {
			dd[i] = f(da[i], db[i])
		}

		return
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			dd[dst.Index(i, j)] = f(da[a.Index(i, j)], db[b.Index(i, j)])
		}
	}
}

// mapInPlace applies f to every element of m.
func mapInPlace[T Number](m *Matrix[T], f func(x T) T) {
	data := m.store.Data()
	for i := range data {
		data[i] = f(data[i])
	}
}

func add[T Number](x, y T) T { return x + y }
func sub[T Number](x, y T) T { return x - y }

// Add returns m + b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf("Matrix.Add", err)
	}
	out := m.Clone()
	zipInto(out, m, b, add[T])

	return out, nil
}

// Sub returns m - b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf("Matrix.Sub", err)
	}
	out := m.Clone()
	zipInto(out, m, b, sub[T])

	return out, nil
}

// Mul returns the matrix product m × b (naive triple loop, i→k→j).
// The result is rows(m)×cols(b) in m's order and storage kind.
// Errors: ErrNilMatrix, ErrDimensionMismatch if m.Cols() != b.Rows().
// Complexity: O(n·m·p).
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Matrix.Mul", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Matrix.Mul", err)
	}
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf("Matrix.Mul", err)
	}

	return m.product(b), nil
}

// product computes m × b; shapes already validated.
func (m *Matrix[T]) product(b *Matrix[T]) *Matrix[T] {
	n, inner, p := m.Rows(), m.Cols(), b.Cols()
	store, _ := newStorage[T](n, p, Options{order: m.order, dynamic: m.IsDynamic()})
	out := &Matrix[T]{store: store, order: m.order}

	var i, j, k int
	var aik T
	da, db, dd := m.store.Data(), b.store.Data(), store.Data()
	for i = 0; i < n; i++ {
		for k = 0; k < inner; k++ {
			aik = da[m.Index(i, k)]
			for j = 0; j < p; j++ {
				dd[out.Index(i, j)] += aik * db[b.Index(k, j)]
			}
		}
	}

	return out
}

// Scale returns s·m as a new matrix.
// Errors: ErrNilMatrix.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Scale(s T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Matrix.Scale", err)
	}
	out := m.Clone()
	mapInPlace(out, func(x T) T { return x * s })

	return out, nil
}

// Div returns m/s as a new matrix.
// Integer element types reject s == 0 with ErrDivideByZero; floating-point
// types follow IEEE-754 and yield ±Inf or NaN.
// Errors: ErrNilMatrix, ErrDivideByZero.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Div(s T) (*Matrix[T], error) {
	if err := ValidateDivisor(m, s); err != nil {
		return nil, matrixErrorf("Matrix.Div", err)
	}
	out := m.Clone()
	mapInPlace(out, func(x T) T { return x / s })

	return out, nil
}

// AddInPlace sets m = m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m untouched).
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf("Matrix.AddInPlace", err)
	}
	zipInto(m, m, b, add[T])

	return nil
}

// SubInPlace sets m = m - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m untouched).
func (m *Matrix[T]) SubInPlace(b *Matrix[T]) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf("Matrix.SubInPlace", err)
	}
	zipInto(m, m, b, sub[T])

	return nil
}

// MulInPlace sets m = m × b.
// When b is not square the shape of m changes, which requires Dynamic storage.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrStaticShape (m untouched).
func (m *Matrix[T]) MulInPlace(b *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Matrix.MulInPlace", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf("Matrix.MulInPlace", err)
	}
	if err := ValidateMulCompatible(m, b); err != nil {
		return matrixErrorf("Matrix.MulInPlace", err)
	}
	if b.Cols() != m.Cols() {
		if err := ValidateDynamic(m); err != nil {
			return matrixErrorf("Matrix.MulInPlace", err)
		}
	}
	prod := m.product(b)
	if d, ok := m.store.(*Dynamic[T]); ok && (prod.Rows() != d.rows || prod.Cols() != d.cols) {
		d.install(prod.Rows(), prod.Cols(), prod.store.Data())
		return nil
	}
	copy(m.store.Data(), prod.store.Data())

	return nil
}

// ScaleInPlace sets m = s·m.
// Errors: ErrNilMatrix.
func (m *Matrix[T]) ScaleInPlace(s T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Matrix.ScaleInPlace", err)
	}
	mapInPlace(m, func(x T) T { return x * s })

	return nil
}

// DivInPlace sets m = m/s.
// Errors: ErrNilMatrix, ErrDivideByZero for integral T (m untouched).
func (m *Matrix[T]) DivInPlace(s T) error {
	if err := ValidateDivisor(m, s); err != nil {
		return matrixErrorf("Matrix.DivInPlace", err)
	}
	mapInPlace(m, func(x T) T { return x / s })

	return nil
}

// Equal reports whether m and b have the same shape and identical elements.
// Elements are compared in logical (row, col) space, so matrices of different
// storage order compare by content. Comparison is exact: NaN != NaN.
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Equal(b *Matrix[T]) bool {
	return m.compare(b, func(x, y T) bool { return x == y })
}

// ApproxEqual is Equal with an absolute tolerance: |m(i,j) - b(i,j)| <= eps.
func (m *Matrix[T]) ApproxEqual(b *Matrix[T], eps T) bool {
	return m.compare(b, func(x, y T) bool {
		if x > y {
			return x-y <= eps
		}

		return y-x <= eps
	})
}

func (m *Matrix[T]) compare(b *Matrix[T], eq func(x, y T) bool) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.Rows() != b.Rows() || m.Cols() != b.Cols() {
		return false
	}
	da, db := m.store.Data(), b.store.Data()
	if m.order == b.order {
		for i := range da {
			if !eq(da[i], db[i]) {
				return false
			}
		}

		return true
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if !eq(da[m.Index(i, j)], db[b.Index(i, j)]) {
				return false
			}
		}
	}

	return true
}
