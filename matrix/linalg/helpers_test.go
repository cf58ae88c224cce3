// SPDX-License-Identifier: MIT
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/mafs/matrix"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

const eps = 1e-9

// sample3 is the 3×3 fixture with a single row exchange at column 1.
var sample3 = [][]float64{
	{0.448, 0.832, 0.193},
	{0.421, 0.784, -0.207},
	{-0.319, 0.884, 0.279},
}

// orders lists both storage orders for table-driven tests.
var orders = []struct {
	name string
	opt  matrix.Option
}{
	{"RowMajor", matrix.WithRowMajor()},
	{"ColMajor", matrix.WithColMajor()},
}

func mustFromRows[T matrix.Number](tb testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(tb, err)

	return m
}

func mustSquare(tb testing.TB, n int, opts ...matrix.Option) *matrix.Matrix[float64] {
	tb.Helper()
	m, err := matrix.NewSquare[float64](n, opts...)
	require.NoError(tb, err)

	return m
}

func mustAt[T matrix.Number](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// requireApprox asserts m matches want element-wise within eps.
func requireApprox(tb testing.TB, want [][]float64, m *matrix.Matrix[float64], delta float64) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(tb, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDeltaf(tb, want[i][j], mustAt(tb, m, i, j), delta, "(%d,%d)", i, j)
		}
	}
}

// wellConditioned returns a seeded random n×n matrix with n added to the diagonal.
func wellConditioned(tb testing.TB, n int, seed byte, opts ...matrix.Option) *matrix.Matrix[float64] {
	tb.Helper()
	key := make([]byte, 32)
	key[0] = seed
	m := mustSquare(tb, n, opts...)
	require.NoError(tb, matrix.RandomFill(m, frand.NewCustom(key, 1024, 12)))
	for i := 0; i < n; i++ {
		require.NoError(tb, m.Set(i, i, mustAt(tb, m, i, i)+float64(n)))
	}

	return m
}
