// SPDX-License-Identifier: MIT

package opmode

import (
	"fmt"

	"github.com/katalvlaran/mafs/matrix"
)

// AcceleratedBackend is the placeholder for a parallel backend.
//
// It checks exactly the preconditions of BasicBackend, so callers see the same
// errors, and then skips the computation: matrix-returning operations return a
// clone of the left operand and in-place operations leave it untouched.
// Every call logs a warning through matrix.Logger().
type AcceleratedBackend[T matrix.Number] struct{}

// Mode returns Accelerated.
func (AcceleratedBackend[T]) Mode() Mode { return Accelerated }

func warnStub(op string) {
	matrix.Logger().Warn("opmode: accelerated backend is not implemented, result is the left operand", "op", op)
}

func stubErrorf(op string, err error) error {
	return fmt.Errorf("opmode.Accelerated.%s: %w", op, err)
}

// binary validates same-shape operands and returns a clone of a.
func (AcceleratedBackend[T]) binary(op string, a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateBinarySameShape(a, b); err != nil {
		return nil, stubErrorf(op, err)
	}
	warnStub(op)

	return a.Clone(), nil
}

// Sum returns a copy of a after validating the shapes.
func (x AcceleratedBackend[T]) Sum(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return x.binary("Sum", a, b)
}

// Subtraction returns a copy of a after validating the shapes.
func (x AcceleratedBackend[T]) Subtraction(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return x.binary("Subtraction", a, b)
}

// Multiplication returns a copy of a after validating a.Cols() == b.Rows().
func (AcceleratedBackend[T]) Multiplication(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := validateMul(a, b); err != nil {
		return nil, stubErrorf("Multiplication", err)
	}
	warnStub("Multiplication")

	return a.Clone(), nil
}

func validateMul[T matrix.Number](a, b *matrix.Matrix[T]) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return err
	}

	return matrix.ValidateMulCompatible(a, b)
}

// ScalarMultiplication returns a copy of a.
func (AcceleratedBackend[T]) ScalarMultiplication(a *matrix.Matrix[T], _ T) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, stubErrorf("ScalarMultiplication", err)
	}
	warnStub("ScalarMultiplication")

	return a.Clone(), nil
}

// ScalarDivision returns a copy of a; an integral zero divisor is still rejected.
func (AcceleratedBackend[T]) ScalarDivision(a *matrix.Matrix[T], s T) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateDivisor(a, s); err != nil {
		return nil, stubErrorf("ScalarDivision", err)
	}
	warnStub("ScalarDivision")

	return a.Clone(), nil
}

// Transpose returns a copy of a.
func (AcceleratedBackend[T]) Transpose(a *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, stubErrorf("Transpose", err)
	}
	warnStub("Transpose")

	return a.Clone(), nil
}

// Equals falls back to the exact comparison of the facade.
func (AcceleratedBackend[T]) Equals(a, b *matrix.Matrix[T]) bool {
	warnStub("Equals")
	return a.Equal(b)
}

// InplaceSum validates and leaves a unchanged.
func (AcceleratedBackend[T]) InplaceSum(a, b *matrix.Matrix[T]) error {
	if err := matrix.ValidateBinarySameShape(a, b); err != nil {
		return stubErrorf("InplaceSum", err)
	}
	warnStub("InplaceSum")

	return nil
}

// InplaceSubtraction validates and leaves a unchanged.
func (AcceleratedBackend[T]) InplaceSubtraction(a, b *matrix.Matrix[T]) error {
	if err := matrix.ValidateBinarySameShape(a, b); err != nil {
		return stubErrorf("InplaceSubtraction", err)
	}
	warnStub("InplaceSubtraction")

	return nil
}

// InplaceMultiplication validates and leaves a unchanged.
func (AcceleratedBackend[T]) InplaceMultiplication(a, b *matrix.Matrix[T]) error {
	if err := validateMul(a, b); err != nil {
		return stubErrorf("InplaceMultiplication", err)
	}
	if b.Cols() != a.Cols() {
		if err := matrix.ValidateDynamic(a); err != nil {
			return stubErrorf("InplaceMultiplication", err)
		}
	}
	warnStub("InplaceMultiplication")

	return nil
}

// InplaceScalarMultiplication validates and leaves a unchanged.
func (AcceleratedBackend[T]) InplaceScalarMultiplication(a *matrix.Matrix[T], _ T) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return stubErrorf("InplaceScalarMultiplication", err)
	}
	warnStub("InplaceScalarMultiplication")

	return nil
}

// InplaceScalarDivision validates and leaves a unchanged.
func (AcceleratedBackend[T]) InplaceScalarDivision(a *matrix.Matrix[T], s T) error {
	if err := matrix.ValidateDivisor(a, s); err != nil {
		return stubErrorf("InplaceScalarDivision", err)
	}
	warnStub("InplaceScalarDivision")

	return nil
}

// InplaceTranspose validates and leaves a unchanged.
func (AcceleratedBackend[T]) InplaceTranspose(a *matrix.Matrix[T]) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return stubErrorf("InplaceTranspose", err)
	}
	if a.Rows() != a.Cols() {
		if err := matrix.ValidateDynamic(a); err != nil {
			return stubErrorf("InplaceTranspose", err)
		}
	}
	warnStub("InplaceTranspose")

	return nil
}

var _ Backend[float64] = AcceleratedBackend[float64]{}
