// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/mafs/matrix"
)

// Solve returns X with A·X = B, given lu and pivot from LUP(A, lu).
//
// Implementation:
//   - Stage 1 (Validate): lu square, lu.Cols() == b.Rows(), pivot sized N+1.
//   - Stage 2 (Permute): b' = MakePivotMatrix(pivot) · B.
//   - Stage 3 (Forward): y[i] = b'[i] - Σ_{k<i} LU[i][k]·y[k].
//   - Stage 4 (Backward): x[i] = (y[i] - Σ_{k>i} LU[i][k]·x[k]) / LU[i][i].
//
// Every column of B is an independent right-hand side; X is N×B.Cols() and
// uses lu's storage order and kind.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDomain (non-square lu or
// lu.Cols() != b.Rows()), matrix.ErrInvalidArgument (malformed pivot).
// Complexity: O(N²·M) for M right-hand sides.
func Solve[T matrix.Float](lu, b *matrix.Matrix[T], pivot Pivot) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateSquareNonNil(lu); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if lu.Cols() != b.Rows() {
		return nil, fmt.Errorf("Solve: LU has %d cols, B has %d rows: %w", lu.Cols(), b.Rows(), matrix.ErrDomain)
	}
	n := lu.Rows()
	if err := pivot.validate(n); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	pm, err := MakePivotMatrix(pivot)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	pb, err := MultiplyAs[T](pm, b)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	x, err := matrix.NewDense[T](n, b.Cols(), like(lu)...)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	var (
		i, k, c int
		sum     T
	)
	d, bd, xd := lu.Data(), pb.Data(), x.Data()
	for c = 0; c < b.Cols(); c++ {
		for i = 0; i < n; i++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += d[lu.Index(i, k)] * xd[x.Index(k, c)]
			}
			xd[x.Index(i, c)] = bd[pb.Index(i, c)] - sum
		}
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for k = i + 1; k < n; k++ {
				sum += d[lu.Index(i, k)] * xd[x.Index(k, c)]
			}
			xd[x.Index(i, c)] = (xd[x.Index(i, c)] - sum) / d[lu.Index(i, i)]
		}
	}

	return x, nil
}

// SolveSystem decomposes a and solves A·X = B in one call.
// Errors: as LUP followed by Solve.
func SolveSystem[T matrix.Float](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("SolveSystem: %w", err)
	}
	lu, err := matrix.NewDense[T](a.Rows(), a.Cols(), matrix.WithOrder(a.Order()))
	if err != nil {
		return nil, fmt.Errorf("SolveSystem: %w", err)
	}
	pivot, err := LUP(a, lu)
	if err != nil {
		return nil, fmt.Errorf("SolveSystem: %w", err)
	}

	return Solve(lu, b, pivot)
}
