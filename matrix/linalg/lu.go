// SPDX-License-Identifier: MIT

// Package linalg: LU decomposition with partial pivoting (Doolittle).
//
// Layout of the result:
//   - LU packs L strictly below the diagonal (unit diagonal implied) and U on
//     and above the diagonal, in the caller's buffer.
//   - Pivot has N+1 entries: Pivot[0:N] is the row permutation (row i of LU
//     came from row Pivot[i] of A) and Pivot[N] counts the row exchanges.
package linalg

import (
	"fmt"

	"github.com/katalvlaran/mafs/matrix"
)

// Pivot is the permutation vector produced by LUP.
type Pivot []int

// NewPivot returns the identity pivot [0, 1, ..., n-1, 0] for an n×n system.
func NewPivot(n int) Pivot {
	p := make(Pivot, n+1)
	for i := 0; i < n; i++ {
		p[i] = i
	}

	return p
}

// N returns the system dimension (len(p)-1, or 0 for an empty pivot).
func (p Pivot) N() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Swaps returns the number of row exchanges recorded by LUP.
func (p Pivot) Swaps() int {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1]
}

// Perm returns the permutation part of the pivot (shared, not copied).
func (p Pivot) Perm() []int { return p[:p.N()] }

// validate checks that p describes an n×n system with in-range entries.
func (p Pivot) validate(n int) error {
	if len(p) != n+1 {
		return fmt.Errorf("pivot length %d, want %d: %w", len(p), n+1, matrix.ErrInvalidArgument)
	}
	for i := 0; i < n; i++ {
		if p[i] < 0 || p[i] >= n {
			return fmt.Errorf("pivot[%d]=%d out of [0,%d): %w", i, p[i], n, matrix.ErrInvalidArgument)
		}
	}

	return nil
}

// abs returns |v| for floating-point v.
func abs[T matrix.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// LUP decomposes the square matrix a into lu using Doolittle's method with
// partial pivoting and returns the pivot vector.
//
// Implementation:
//   - Stage 1 (Validate): a, lu non-nil; a square; lu the same shape as a.
//   - Stage 2 (Prepare): lu := a; pivot := [0..N-1, 0].
//   - Stage 3 (Execute): for every column k:
//     1. scan rows k..N-1 of column k of lu for the largest |value|;
//     2. if that row imax != k, swap pivot[k]/pivot[imax], count the swap and
//     swap rows k/imax of lu;
//     3. U[k][j] = lu[k][j] - Σ_{r<k} L[k][r]·U[r][j] for j >= k;
//     4. L[i][k] = (lu[i][k] - Σ_{r<k} L[i][r]·U[r][k]) / U[k][k] for i > k.
//
// Behavior highlights:
//   - lu keeps its own storage order; a may use a different one.
//   - P·A = L·U where P = MakePivotMatrix(pivot).
//   - A zero pivot is not reported: the division yields ±Inf or NaN.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDomain (non-square a or mismatched lu).
//   - lu is overwritten from Stage 2 onward.
//
// Complexity: O(N³) time, O(N) extra memory.
func LUP[T matrix.Float](a, lu *matrix.Matrix[T]) (Pivot, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("LUP: %w", err)
	}
	if err := matrix.ValidateNotNil(lu); err != nil {
		return nil, fmt.Errorf("LUP: %w", err)
	}
	if lu.Rows() != a.Rows() || lu.Cols() != a.Cols() {
		return nil, fmt.Errorf("LUP: LU is %dx%d, want %dx%d: %w",
			lu.Rows(), lu.Cols(), a.Rows(), a.Cols(), matrix.ErrDomain)
	}
	if err := lu.CopyFrom(a); err != nil {
		return nil, fmt.Errorf("LUP: %w", err)
	}

	n := a.Rows()
	pivot := NewPivot(n)
	d := lu.Data()
	log := matrix.Logger()

	var (
		i, j, k, r, imax int
		maxVal, absVal   T
		sum              T
	)
	for k = 0; k < n; k++ {
		maxVal, imax = 0, k
		for i = k; i < n; i++ {
			if absVal = abs(d[lu.Index(i, k)]); absVal > maxVal {
				maxVal, imax = absVal, i
			}
		}

		if imax != k {
			pivot[k], pivot[imax] = pivot[imax], pivot[k]
			pivot[n]++
			_ = lu.SwapRows(k, imax) // indices are in range
			log.Debug("linalg: LUP row exchange", "column", k, "row", imax, "swaps", pivot[n])
		}

		for j = k; j < n; j++ {
			sum = 0
			for r = 0; r < k; r++ {
				sum += d[lu.Index(k, r)] * d[lu.Index(r, j)]
			}
			d[lu.Index(k, j)] -= sum
		}

		for i = k + 1; i < n; i++ {
			sum = 0
			for r = 0; r < k; r++ {
				sum += d[lu.Index(i, r)] * d[lu.Index(r, k)]
			}
			d[lu.Index(i, k)] = (d[lu.Index(i, k)] - sum) / d[lu.Index(k, k)]
		}
	}

	return pivot, nil
}

// SplitLU unpacks a compact LU into L (unit diagonal made explicit, zero
// above) and U (diagonal included, zero below). Entries are only copied, so
// any Number works.
// outL and outU are assigned with CopyFrom semantics: Dynamic outputs take the
// shape of lu, Fixed outputs must already match.
// Errors: matrix.ErrNilMatrix, matrix.ErrDomain (non-square lu), matrix.ErrStaticShape.
// Complexity: O(N²).
func SplitLU[T matrix.Number](lu, outL, outU *matrix.Matrix[T]) error {
	if err := matrix.ValidateSquareNonNil(lu); err != nil {
		return fmt.Errorf("SplitLU: %w", err)
	}
	if outL == nil || outU == nil {
		return fmt.Errorf("SplitLU: %w", matrix.ErrNilMatrix)
	}

	l, err := LowerTriangular(lu)
	if err != nil {
		return fmt.Errorf("SplitLU: %w", err)
	}
	for i := 0; i < l.Rows(); i++ {
		_ = l.Set(i, i, 1)
	}
	if err = outL.CopyFrom(l); err != nil {
		return fmt.Errorf("SplitLU: L: %w", err)
	}

	u, err := UpperTriangular(lu)
	if err != nil {
		return fmt.Errorf("SplitLU: %w", err)
	}
	if err = outU.CopyFrom(u); err != nil {
		return fmt.Errorf("SplitLU: U: %w", err)
	}

	return nil
}

// MakePivotMatrix builds the N×N permutation matrix P with P[i][p[i]] = 1.
// The trailing swap counter is ignored. Multiplying P·A reorders the rows of
// A the same way LUP did.
// Errors: matrix.ErrInvalidArgument if len(p) < 1 or an entry is outside [0, N).
// Complexity: O(N²).
func MakePivotMatrix(p Pivot) (*matrix.Matrix[int], error) {
	if len(p) < 1 {
		return nil, fmt.Errorf("MakePivotMatrix: empty pivot: %w", matrix.ErrInvalidArgument)
	}
	n := p.N()
	if err := p.validate(n); err != nil {
		return nil, fmt.Errorf("MakePivotMatrix: %w", err)
	}
	pm, err := matrix.NewSquare[int](n)
	if err != nil {
		return nil, fmt.Errorf("MakePivotMatrix: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = pm.Set(i, p[i], 1)
	}

	return pm, nil
}
