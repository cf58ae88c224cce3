// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/mafs/matrix"
)

// Multiply returns a × b for operands of one element type.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidArgument if a.Cols() != b.Rows().
// Complexity: O(n·m·p).
func Multiply[T matrix.Number](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return MultiplyAs[T, T, T](a, b)
}

// MultiplyAs returns a × b with elements of type R, converting each operand
// element to R before multiplying. This lets an integer permutation matrix
// act on floating-point data:
//
//	pb, err := linalg.MultiplyAs[float64](p, b) // p *Matrix[int], b *Matrix[float64]
//
// The result is a Dynamic matrix in a's storage order.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidArgument on inner mismatch.
// Complexity: O(n·m·p).
func MultiplyAs[R, A, B matrix.Number](a *matrix.Matrix[A], b *matrix.Matrix[B]) (*matrix.Matrix[R], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("Multiply: %dx%d × %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrInvalidArgument)
	}
	out, err := matrix.NewDense[R](a.Rows(), b.Cols(), matrix.WithOrder(a.Order()))
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}

	var (
		i, j, k int
		acc     R
	)
	ad, bd, od := a.Data(), b.Data(), out.Data()
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			acc = 0
			for k = 0; k < a.Cols(); k++ {
				acc += R(ad[a.Index(i, k)]) * R(bd[b.Index(k, j)])
			}
			od[out.Index(i, j)] = acc
		}
	}

	return out, nil
}

// Identity returns the n×n identity matrix.
// Errors: matrix.ErrInvalidArgument if n <= 0.
// Complexity: O(n²).
func Identity[T matrix.Number](n int, opts ...matrix.Option) (*matrix.Matrix[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, matrix.ErrInvalidArgument)
	}
	m, err := matrix.NewSquare[T](n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Identity(%d): %w", n, err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 1)
	}

	return m, nil
}
