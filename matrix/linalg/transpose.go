// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/mafs/matrix"
)

// like returns construction options reproducing m's storage order and kind.
func like[T matrix.Number](m *matrix.Matrix[T]) []matrix.Option {
	opts := []matrix.Option{matrix.WithOrder(m.Order())}
	if !m.IsDynamic() {
		opts = append(opts, matrix.WithFixed())
	}

	return opts
}

// Transpose returns a new cols×rows matrix with result(j,i) = m(i,j).
// The result keeps m's storage order and kind.
// Errors: matrix.ErrNilMatrix.
// Complexity: O(rows*cols).
func Transpose[T matrix.Number](m *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	out, err := matrix.NewDense[T](m.Cols(), m.Rows(), like(m)...)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}

	var i, j int
	src, dst := m.Data(), out.Data()
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			dst[out.Index(j, i)] = src[m.Index(i, j)]
		}
	}

	return out, nil
}

// UpperTriangular returns a copy of m keeping entries with i <= j (diagonal
// included) and zero elsewhere.
// Errors: matrix.ErrNilMatrix, matrix.ErrDomain if m is not square.
// Complexity: O(n²).
func UpperTriangular[T matrix.Number](m *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return triangular(m, "UpperTriangular", func(i, j int) bool { return i <= j })
}

// LowerTriangular returns a copy of m keeping entries with j <= i (diagonal
// included) and zero elsewhere.
// Errors: matrix.ErrNilMatrix, matrix.ErrDomain if m is not square.
// Complexity: O(n²).
func LowerTriangular[T matrix.Number](m *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return triangular(m, "LowerTriangular", func(i, j int) bool { return j <= i })
}

func triangular[T matrix.Number](m *matrix.Matrix[T], tag string, keep func(i, j int) bool) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	n := m.Rows()
	out, err := matrix.NewDense[T](n, n, like(m)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	var i, j int
	src, dst := m.Data(), out.Data()
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if keep(i, j) {
				dst[out.Index(i, j)] = src[m.Index(i, j)]
			}
		}
	}

	return out, nil
}
