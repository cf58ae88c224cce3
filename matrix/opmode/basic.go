// SPDX-License-Identifier: MIT

package opmode

import (
	"github.com/katalvlaran/mafs/matrix"
	"github.com/katalvlaran/mafs/matrix/linalg"
)

// BasicBackend runs every operation through the matrix facade.
type BasicBackend[T matrix.Number] struct{}

// Mode returns Basic.
func (BasicBackend[T]) Mode() Mode { return Basic }

// Sum returns a + b.
func (BasicBackend[T]) Sum(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) { return a.Add(b) }

// Subtraction returns a - b.
func (BasicBackend[T]) Subtraction(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return a.Sub(b)
}

// Multiplication returns a × b.
func (BasicBackend[T]) Multiplication(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return a.Mul(b)
}

// ScalarMultiplication returns s·a.
func (BasicBackend[T]) ScalarMultiplication(a *matrix.Matrix[T], s T) (*matrix.Matrix[T], error) {
	return a.Scale(s)
}

// ScalarDivision returns a/s.
func (BasicBackend[T]) ScalarDivision(a *matrix.Matrix[T], s T) (*matrix.Matrix[T], error) {
	return a.Div(s)
}

// Transpose returns aᵀ.
func (BasicBackend[T]) Transpose(a *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return linalg.Transpose(a)
}

// Equals reports exact equality.
func (BasicBackend[T]) Equals(a, b *matrix.Matrix[T]) bool { return a.Equal(b) }

// InplaceSum sets a = a + b.
func (BasicBackend[T]) InplaceSum(a, b *matrix.Matrix[T]) error { return a.AddInPlace(b) }

// InplaceSubtraction sets a = a - b.
func (BasicBackend[T]) InplaceSubtraction(a, b *matrix.Matrix[T]) error { return a.SubInPlace(b) }

// InplaceMultiplication sets a = a × b.
func (BasicBackend[T]) InplaceMultiplication(a, b *matrix.Matrix[T]) error { return a.MulInPlace(b) }

// InplaceScalarMultiplication sets a = s·a.
func (BasicBackend[T]) InplaceScalarMultiplication(a *matrix.Matrix[T], s T) error {
	return a.ScaleInPlace(s)
}

// InplaceScalarDivision sets a = a/s.
func (BasicBackend[T]) InplaceScalarDivision(a *matrix.Matrix[T], s T) error {
	return a.DivInPlace(s)
}

// InplaceTranspose sets a = aᵀ.
func (BasicBackend[T]) InplaceTranspose(a *matrix.Matrix[T]) error { return a.TransposeInPlace() }

var _ Backend[float64] = BasicBackend[float64]{}
