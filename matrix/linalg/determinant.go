// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/mafs/matrix"
)

// Determinant returns det(m) through LUP.
// The 0×0 matrix has determinant 1 (empty product).
// Errors: matrix.ErrNilMatrix, matrix.ErrDomain if m is not square.
// Complexity: O(N³).
func Determinant[T matrix.Float](m *matrix.Matrix[T]) (T, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, fmt.Errorf("Determinant: %w", err)
	}
	lu, err := matrix.NewSquare[T](m.Rows(), matrix.WithOrder(m.Order()))
	if err != nil {
		return 0, fmt.Errorf("Determinant: %w", err)
	}
	pivot, err := LUP(m, lu)
	if err != nil {
		return 0, fmt.Errorf("Determinant: %w", err)
	}

	return DeterminantLU(lu, pivot)
}

// DeterminantLU returns the product of the diagonal of lu, negated when the
// swap counter pivot[N] is odd.
// Errors: matrix.ErrNilMatrix, matrix.ErrDomain (non-square lu),
// matrix.ErrInvalidArgument (malformed pivot).
// Complexity: O(N).
func DeterminantLU[T matrix.Float](lu *matrix.Matrix[T], pivot Pivot) (T, error) {
	if err := matrix.ValidateSquareNonNil(lu); err != nil {
		return 0, fmt.Errorf("DeterminantLU: %w", err)
	}
	n := lu.Rows()
	if err := pivot.validate(n); err != nil {
		return 0, fmt.Errorf("DeterminantLU: %w", err)
	}

	var det T = 1
	d := lu.Data()
	for i := 0; i < n; i++ {
		det *= d[lu.Index(i, i)]
	}
	// Parity of the permutation is the parity of the exchange count, not
	// (pivot[N-1]-(N-1)) % 2, which misreads cyclic permutations.
	if pivot.Swaps()%2 != 0 {
		return -det, nil
	}

	return det, nil
}
