// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and its sub-packages (linalg, opmode). All operations MUST return
// these sentinels (optionally wrapped with an operation tag) and tests MUST
// check them via errors.Is. No operation panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Call sites wrap with an operation tag via matrixErrorf / denseErrorf, e.g.
// "Matrix.At(3,1): matrix: index out of range". Callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> storage kind (static) -> index/shape -> numeric (divide by zero).

var (
	// ErrOutOfRange indicates that an element, row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes for an elementwise
	// operation or a matrix product (a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDomain signals that a square matrix was required but the input wasn't,
	// or that an output buffer does not match its source (LU, Solve).
	ErrDomain = errors.New("matrix: operand outside the operation's domain")

	// ErrInvalidArgument signals a nonsensical size parameter: zero-dimension identity,
	// a reshape whose product differs from the current size, a malformed pivot vector.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrShape is returned when a nested literal has rows of different lengths.
	ErrShape = errors.New("matrix: ragged rows in literal")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrStaticShape is returned when a structural edit or resize targets fixed storage.
	ErrStaticShape = errors.New("matrix: storage has a fixed shape")

	// ErrDivideByZero is returned by scalar division of an integer matrix by zero.
	// Floating-point matrices follow IEEE-754 instead (±Inf / NaN).
	ErrDivideByZero = errors.New("matrix: integer division by zero")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrCorruptMapping is returned when a mapped file header does not describe
	// a matrix of the requested element type.
	ErrCorruptMapping = errors.New("matrix: corrupt mapped matrix file")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// Produces "Matrix.<method>(a,b): <err>".
// Complexity: O(1).
func denseErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, a, b, err)
}
