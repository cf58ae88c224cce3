// SPDX-License-Identifier: MIT

package opmode

import "github.com/katalvlaran/mafs/matrix"

// Sum returns a + b on the selected backend.
func Sum[T matrix.Number](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return For[T]().Sum(a, b)
}

// Subtraction returns a - b on the selected backend.
func Subtraction[T matrix.Number](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return For[T]().Subtraction(a, b)
}

// Multiplication returns a × b on the selected backend.
func Multiplication[T matrix.Number](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return For[T]().Multiplication(a, b)
}

// ScalarMultiplication returns s·a on the selected backend.
func ScalarMultiplication[T matrix.Number](a *matrix.Matrix[T], s T) (*matrix.Matrix[T], error) {
	return For[T]().ScalarMultiplication(a, s)
}

// ScalarDivision returns a/s on the selected backend.
func ScalarDivision[T matrix.Number](a *matrix.Matrix[T], s T) (*matrix.Matrix[T], error) {
	return For[T]().ScalarDivision(a, s)
}

// Transpose returns aᵀ on the selected backend.
func Transpose[T matrix.Number](a *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return For[T]().Transpose(a)
}

// Equals compares a and b on the selected backend.
func Equals[T matrix.Number](a, b *matrix.Matrix[T]) bool {
	return For[T]().Equals(a, b)
}

// InplaceSum sets a = a + b on the selected backend.
func InplaceSum[T matrix.Number](a, b *matrix.Matrix[T]) error {
	return For[T]().InplaceSum(a, b)
}

// InplaceSubtraction sets a = a - b on the selected backend.
func InplaceSubtraction[T matrix.Number](a, b *matrix.Matrix[T]) error {
	return For[T]().InplaceSubtraction(a, b)
}

// InplaceMultiplication sets a = a × b on the selected backend.
func InplaceMultiplication[T matrix.Number](a, b *matrix.Matrix[T]) error {
	return For[T]().InplaceMultiplication(a, b)
}

// InplaceScalarMultiplication sets a = s·a on the selected backend.
func InplaceScalarMultiplication[T matrix.Number](a *matrix.Matrix[T], s T) error {
	return For[T]().InplaceScalarMultiplication(a, s)
}

// InplaceScalarDivision sets a = a/s on the selected backend.
func InplaceScalarDivision[T matrix.Number](a *matrix.Matrix[T], s T) error {
	return For[T]().InplaceScalarDivision(a, s)
}

// InplaceTranspose sets a = aᵀ on the selected backend.
func InplaceTranspose[T matrix.Number](a *matrix.Matrix[T]) error {
	return For[T]().InplaceTranspose(a)
}
