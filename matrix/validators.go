// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep facades and kernels (linalg, opmode) minimal by delegating
//     nil/shape/storage-kind checks here.
//   - Return sentinels wrapped with a validator tag so call sites can add
//     their own operation tag uniformly.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).
//   - Single-purpose validators state what they assume (e.g. no nil check).

package matrix

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (see ValidateBinarySameShape).
// Returns wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[A, B Number](a *Matrix[A], b *Matrix[B]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Returns wrapped ErrDomain.
// Complexity: O(1).
func ValidateSquare[T Number](m *Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDomain)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows for a matrix product.
// Assumes a and b are not nil. Returns wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[A, B Number](a *Matrix[A], b *Matrix[B]) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDynamic checks that m supports structural edits.
// Assumes m is not nil. Returns wrapped ErrStaticShape.
// Complexity: O(1).
func ValidateDynamic[T Number](m *Matrix[T]) error {
	if !m.IsDynamic() {
		return validatorErrorf("ValidateDynamic", ErrStaticShape)
	}

	return nil
}

// ValidateDivisor runs NotNil(m) → integral zero divisor.
// Floating-point T accepts s == 0 (IEEE-754 semantics).
// Returns ErrNilMatrix or wrapped ErrDivideByZero.
// Complexity: O(1).
func ValidateDivisor[T Number](m *Matrix[T], s T) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if s == 0 && isIntegral[T]() {
		return validatorErrorf("ValidateDivisor", ErrDivideByZero)
	}

	return nil
}

// ValidateBinarySameShape runs NotNil(a) → NotNil(b) → SameShape(a, b).
// Complexity: O(1).
func ValidateBinarySameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquareNonNil runs NotNil(m) → Square(m).
// Complexity: O(1).
func ValidateSquareNonNil[T Number](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}
