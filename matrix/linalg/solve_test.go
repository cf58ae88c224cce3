// SPDX-License-Identifier: MIT
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/mafs/matrix"
	"github.com/katalvlaran/mafs/matrix/linalg"
	"github.com/stretchr/testify/require"
)

func TestSolve_Sample(t *testing.T) {
	for _, o := range orders {
		t.Run(o.name, func(t *testing.T) {
			a := mustFromRows(t, sample3, o.opt)
			lu := mustSquare(t, 3, o.opt)
			p, err := linalg.LUP(a, lu)
			require.NoError(t, err)

			b := mustFromRows(t, [][]float64{{1}, {2}, {0}})
			x, err := linalg.Solve(lu, b, p)
			require.NoError(t, err)
			requireApprox(t, [][]float64{{1.0832156609418226}, {1.2503473813374502}, {-2.723158742874067}}, x, 1e-9)
			require.Equal(t, lu.Order(), x.Order())

			ax, err := linalg.Multiply(a, x)
			require.NoError(t, err)
			require.True(t, ax.ApproxEqual(b, 1e-12))
		})
	}
}

// TestSolve_MultipleRHS solves each column of B independently.
func TestSolve_MultipleRHS(t *testing.T) {
	a := wellConditioned(t, 5, 9)
	b := mustFromRows(t, [][]float64{{1, 0, 2}, {0, 1, 2}, {0, 0, 2}, {3, 0, 2}, {0, -1, 2}}, matrix.WithColMajor())

	x, err := linalg.SolveSystem(a, b)
	require.NoError(t, err)
	require.Equal(t, 5, x.Rows())
	require.Equal(t, 3, x.Cols())

	ax, err := linalg.Multiply(a, x)
	require.NoError(t, err)
	require.True(t, ax.ApproxEqual(b, eps))

	for c := 0; c < 3; c++ {
		col := matrix.New[float64]()
		for i := 0; i < 5; i++ {
			require.NoError(t, col.AppendRow([]float64{mustAt(t, b, i, c)}))
		}
		xc, err := linalg.SolveSystem(a, col)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			require.InDelta(t, mustAt(t, x, i, c), mustAt(t, xc, i, 0), eps)
		}
	}
}

func TestSolve_Errors(t *testing.T) {
	lu := mustSquare(t, 3)
	p := linalg.NewPivot(3)

	_, err := linalg.Solve(lu, mustSquare(t, 2), p)
	require.ErrorIs(t, err, matrix.ErrDomain)

	_, err = linalg.Solve(mustFromRows(t, [][]float64{{1, 2}}), mustSquare(t, 2), linalg.NewPivot(2))
	require.ErrorIs(t, err, matrix.ErrDomain)

	b := mustFromRows(t, [][]float64{{1}, {2}, {3}})
	_, err = linalg.Solve(lu, b, linalg.NewPivot(2))
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = linalg.Solve(lu, b, linalg.Pivot{0, 1, 3, 0})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = linalg.Solve(lu, nil, p)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = linalg.SolveSystem(mustFromRows(t, [][]float64{{1, 2}}), b)
	require.ErrorIs(t, err, matrix.ErrDomain)
}
