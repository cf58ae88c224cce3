// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/mafs/matrix"
)

// Inverse returns m⁻¹ via LUP and InverseFromLU.
// Blueprint:
//
//	Stage 1 (Validate): m square.
//	Stage 2 (Decompose): P·A = L·U.
//	Stage 3 (Execute): InverseFromLU.
//
// A singular m is not reported; its inverse contains ±Inf or NaN.
// Errors: matrix.ErrNilMatrix, matrix.ErrDomain.
// Complexity: O(N³).
func Inverse[T matrix.Float](m *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	lu, err := matrix.NewSquare[T](m.Rows(), like(m)...)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	pivot, err := LUP(m, lu)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	return InverseFromLU(lu, pivot)
}

// InverseFromLU builds the inverse column by column: column j starts as the
// j-th basis vector permuted by pivot, then is forward- and back-substituted
// in place against lu.
// The result uses lu's storage order and kind.
// Errors: matrix.ErrNilMatrix, matrix.ErrDomain (non-square lu),
// matrix.ErrInvalidArgument (malformed pivot).
// Complexity: O(N³).
func InverseFromLU[T matrix.Float](lu *matrix.Matrix[T], pivot Pivot) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateSquareNonNil(lu); err != nil {
		return nil, fmt.Errorf("InverseFromLU: %w", err)
	}
	n := lu.Rows()
	if err := pivot.validate(n); err != nil {
		return nil, fmt.Errorf("InverseFromLU: %w", err)
	}
	inv, err := matrix.NewSquare[T](n, like(lu)...)
	if err != nil {
		return nil, fmt.Errorf("InverseFromLU: %w", err)
	}

	var (
		i, j, k int
		v       T
	)
	d, id := lu.Data(), inv.Data()
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			v = 0
			if pivot[i] == j {
				v = 1
			}
			for k = 0; k < i; k++ {
				v -= d[lu.Index(i, k)] * id[inv.Index(k, j)]
			}
			id[inv.Index(i, j)] = v
		}
		for i = n - 1; i >= 0; i-- {
			v = id[inv.Index(i, j)]
			for k = i + 1; k < n; k++ {
				v -= d[lu.Index(i, k)] * id[inv.Index(k, j)]
			}
			id[inv.Index(i, j)] = v / d[lu.Index(i, i)]
		}
	}

	return inv, nil
}
