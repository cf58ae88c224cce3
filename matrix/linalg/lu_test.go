// SPDX-License-Identifier: MIT
package linalg_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/mafs/matrix"
	"github.com/katalvlaran/mafs/matrix/linalg"
	"github.com/stretchr/testify/require"
)

func TestNewPivot(t *testing.T) {
	p := linalg.NewPivot(3)
	require.Equal(t, linalg.Pivot{0, 1, 2, 0}, p)
	require.Equal(t, 3, p.N())
	require.Equal(t, 0, p.Swaps())
	require.Equal(t, []int{0, 1, 2}, p.Perm())

	var empty linalg.Pivot
	require.Equal(t, 0, empty.N())
	require.Equal(t, 0, empty.Swaps())
}

// TestLUP_Sample pins the compact LU and pivot for the 3×3 fixture.
func TestLUP_Sample(t *testing.T) {
	for _, o := range orders {
		t.Run(o.name, func(t *testing.T) {
			a := mustFromRows(t, sample3, o.opt)
			lu := mustSquare(t, 3)

			p, err := linalg.LUP(a, lu)
			require.NoError(t, err)
			require.Equal(t, linalg.Pivot{0, 2, 1, 1}, p)
			requireApprox(t, [][]float64{
				{0.448, 0.832, 0.193},
				{-0.7120535714285714, 1.4764285714285714, 0.4164263392857143},
				{0.9397321428571428, 0.001451378809869431, -0.3889726959361393},
			}, lu, eps)

			// input untouched
			requireApprox(t, sample3, a, 0)
		})
	}
}

// TestLUP_Reconstructs checks L·U == P·A on the 4×4 fixture in every order pairing.
func TestLUP_Reconstructs(t *testing.T) {
	rows := [][]float64{{1, 2, 3, 4}, {1, 2, -3, -4}, {-1, 0, 2, 3}, {1, -4, -1, 1}}
	for _, oa := range orders {
		for _, olu := range orders {
			t.Run(oa.name+"/"+olu.name, func(t *testing.T) {
				a := mustFromRows(t, rows, oa.opt)
				lu := mustSquare(t, 4, olu.opt)
				p, err := linalg.LUP(a, lu)
				require.NoError(t, err)
				require.Equal(t, linalg.Pivot{0, 3, 1, 2, 2}, p)

				l, u := matrix.New[float64](), matrix.New[float64]()
				require.NoError(t, linalg.SplitLU(lu, l, u))
				for i := 0; i < 4; i++ {
					require.Equal(t, 1.0, mustAt(t, l, i, i))
					for j := i + 1; j < 4; j++ {
						require.Zero(t, mustAt(t, l, i, j))
						require.Zero(t, mustAt(t, u, j, i))
					}
				}

				pm, err := linalg.MakePivotMatrix(p)
				require.NoError(t, err)
				pa, err := linalg.MultiplyAs[float64](pm, a)
				require.NoError(t, err)
				prod, err := linalg.Multiply(l, u)
				require.NoError(t, err)
				require.True(t, prod.ApproxEqual(pa, eps))
			})
		}
	}
}

func TestLUP_Errors(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := linalg.LUP(a, mustSquare(t, 2))
	require.ErrorIs(t, err, matrix.ErrDomain)

	sq := mustSquare(t, 3)
	_, err = linalg.LUP(sq, mustSquare(t, 2))
	require.ErrorIs(t, err, matrix.ErrDomain)

	_, err = linalg.LUP(nil, sq)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = linalg.LUP(sq, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestLUP_FixedOutput decomposes into preallocated Fixed storage.
func TestLUP_FixedOutput(t *testing.T) {
	a := mustFromRows(t, sample3)
	lu := mustSquare(t, 3, matrix.WithFixed(), matrix.WithColMajor())
	p, err := linalg.LUP(a, lu)
	require.NoError(t, err)
	require.Equal(t, 1, p.Swaps())
	require.InDelta(t, 1.4764285714285714, mustAt(t, lu, 1, 1), eps)
}

// TestLUP_ZeroPivot documents that singular input propagates NaN instead of failing.
func TestLUP_ZeroPivot(t *testing.T) {
	a := mustFromRows(t, [][]float64{{0, 0}, {0, 0}})
	lu := mustSquare(t, 2)
	_, err := linalg.LUP(a, lu)
	require.NoError(t, err)
	require.True(t, math.IsNaN(mustAt(t, lu, 1, 0)))
}

func TestLUP_LogsRowExchanges(t *testing.T) {
	var buf bytes.Buffer
	matrix.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { matrix.SetLogger(nil) })

	_, err := linalg.LUP(mustFromRows(t, sample3), mustSquare(t, 3))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "linalg: LUP row exchange")
	require.Contains(t, buf.String(), "column=1 row=2 swaps=1")
}

func TestSplitLU(t *testing.T) {
	lu := mustFromRows(t, [][]float64{{2, 3}, {0.5, 4}})
	l := mustSquare(t, 2, matrix.WithFixed())
	u := matrix.New[float64](matrix.WithColMajor())
	require.NoError(t, linalg.SplitLU(lu, l, u))
	requireApprox(t, [][]float64{{1, 0}, {0.5, 1}}, l, 0)
	requireApprox(t, [][]float64{{2, 3}, {0, 4}}, u, 0)
	require.Equal(t, matrix.ColMajor, u.Order())

	small := mustSquare(t, 1, matrix.WithFixed())
	require.ErrorIs(t, linalg.SplitLU(lu, small, u), matrix.ErrStaticShape)
	require.ErrorIs(t, linalg.SplitLU(lu, nil, u), matrix.ErrNilMatrix)
	require.ErrorIs(t, linalg.SplitLU(mustFromRows(t, [][]float64{{1, 2}}), l, u), matrix.ErrDomain)
}

func TestSplitLU_Integer(t *testing.T) {
	for _, o := range orders {
		t.Run(o.name, func(t *testing.T) {
			lu := mustFromRows(t, [][]int{{1, 2, 3}, {7, 8, 4}, {5, 6, 9}}, o.opt)
			l, err := matrix.NewSquare[int](3, matrix.WithFixed())
			require.NoError(t, err)
			u, err := matrix.NewSquare[int](3, o.opt)
			require.NoError(t, err)

			require.NoError(t, linalg.SplitLU(lu, l, u))
			require.True(t, l.Equal(mustFromRows(t, [][]int{{1, 0, 0}, {7, 1, 0}, {5, 6, 1}})))
			require.True(t, u.Equal(mustFromRows(t, [][]int{{1, 2, 3}, {0, 8, 4}, {0, 0, 9}})))
		})
	}
}

func TestMakePivotMatrix(t *testing.T) {
	pm, err := linalg.MakePivotMatrix(linalg.Pivot{1, 2, 0, 2})
	require.NoError(t, err)
	require.Equal(t, 3, pm.Rows())
	for i, want := range [][]int{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}} {
		for j := range want {
			require.Equal(t, want[j], mustAt(t, pm, i, j))
		}
	}

	// P·A reorders rows of A: row i of the product is row p[i] of A.
	a := mustFromRows(t, [][]float64{{1}, {2}, {3}})
	pa, err := linalg.MultiplyAs[float64](pm, a)
	require.NoError(t, err)
	requireApprox(t, [][]float64{{2}, {3}, {1}}, pa, 0)

	empty, err := linalg.MakePivotMatrix(linalg.Pivot{0})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Size())

	_, err = linalg.MakePivotMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = linalg.MakePivotMatrix(linalg.Pivot{0, 5, 0})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = linalg.MakePivotMatrix(linalg.Pivot{-1, 0, 0})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}
