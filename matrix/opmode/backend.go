// SPDX-License-Identifier: MIT

// Package opmode selects the backend that executes elementwise matrix
// operations.
//
// The backend is a build-time choice:
//
//	go build ./...                        // Selected == Basic
//	go build -tags mafs_accelerated ./... // Selected == Accelerated (stub)
//
// Callers use the package-level functions (Sum, Subtraction, ...) which
// forward to For[T](), or pick a backend explicitly with New. Every backend
// validates the same preconditions and reports the same matrix sentinels.
//
// The Accelerated backend is a placeholder for a parallel/GPU implementation:
// it validates its inputs, logs a warning and returns a copy of the left
// operand without computing anything.
package opmode

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/mafs/matrix"
)

// ErrUnknownMode is returned by New for a Mode without a backend.
var ErrUnknownMode = errors.New("opmode: unknown operation mode")

// Mode identifies a backend.
type Mode uint8

const (
	// Basic runs every operation on the CPU through the matrix facade.
	Basic Mode = iota
	// Accelerated is reserved for a parallel backend; currently a stub.
	Accelerated
)

// String returns "Basic", "Accelerated" or "Mode(n)".
func (m Mode) String() string {
	switch m {
	case Basic:
		return "Basic"
	case Accelerated:
		return "Accelerated"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Backend executes elementwise operations on matrices of T.
//
// Binary operations require same-shape operands (matrix.ErrDimensionMismatch),
// Multiplication requires a.Cols() == b.Rows(). Nil operands yield
// matrix.ErrNilMatrix. In-place forms mutate only their first argument and
// only after validation succeeds.
type Backend[T matrix.Number] interface {
	// Mode reports which backend this is.
	Mode() Mode

	// Sum returns a + b.
	Sum(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error)
	// Subtraction returns a - b.
	Subtraction(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error)
	// Multiplication returns the matrix product a × b.
	Multiplication(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error)
	// ScalarMultiplication returns s·a.
	ScalarMultiplication(a *matrix.Matrix[T], s T) (*matrix.Matrix[T], error)
	// ScalarDivision returns a/s; integral T rejects s == 0.
	ScalarDivision(a *matrix.Matrix[T], s T) (*matrix.Matrix[T], error)
	// Transpose returns aᵀ.
	Transpose(a *matrix.Matrix[T]) (*matrix.Matrix[T], error)
	// Equals reports element-wise equality in logical (row, col) space.
	Equals(a, b *matrix.Matrix[T]) bool

	// InplaceSum sets a = a + b.
	InplaceSum(a, b *matrix.Matrix[T]) error
	// InplaceSubtraction sets a = a - b.
	InplaceSubtraction(a, b *matrix.Matrix[T]) error
	// InplaceMultiplication sets a = a × b; a must be Dynamic when the column count changes.
	InplaceMultiplication(a, b *matrix.Matrix[T]) error
	// InplaceScalarMultiplication sets a = s·a.
	InplaceScalarMultiplication(a *matrix.Matrix[T], s T) error
	// InplaceScalarDivision sets a = a/s.
	InplaceScalarDivision(a *matrix.Matrix[T], s T) error
	// InplaceTranspose sets a = aᵀ; a must be square or Dynamic.
	InplaceTranspose(a *matrix.Matrix[T]) error
}

// New returns the backend for mode.
// Errors: ErrUnknownMode.
func New[T matrix.Number](mode Mode) (Backend[T], error) {
	switch mode {
	case Basic:
		return BasicBackend[T]{}, nil
	case Accelerated:
		return AcceleratedBackend[T]{}, nil
	default:
		return nil, fmt.Errorf("opmode.New(%s): %w", mode, ErrUnknownMode)
	}
}

// For returns the backend chosen at build time (see Selected).
func For[T matrix.Number]() Backend[T] {
	b, _ := New[T](Selected) // Selected is always a known mode
	return b
}
