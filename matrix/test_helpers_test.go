// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities shared by the tests.
//   • Keep all data finite and well-formed; random data comes from a seeded frand.RNG.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mafs/matrix"
	"lukechampine.com/frand"
)

// orders lists both storage orders for table-driven tests.
var orders = []struct {
	name string
	opt  matrix.Option
}{
	{"RowMajor", matrix.WithRowMajor()},
	{"ColMajor", matrix.WithColMajor()},
}

// MustDense ALLOCATES an r×c matrix or fails the test (fatal on error).
// Implementation:
//   - Stage 1: call matrix.NewDense(r, c, opts...).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Returns a zero-initialized matrix.
func MustDense[T matrix.Number](tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c, opts...)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a matrix from a nested literal or fails the test.
func MustFromRows[T matrix.Number](tb testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet[T matrix.Number](tb testing.TB, m *matrix.Matrix[T], i, j int, v T) {
	tb.Helper()
	if err := m.Set(i, j, v); err != nil {
		tb.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// ToRows reads m back into a nested literal in logical (row, col) order.
func ToRows[T matrix.Number](tb testing.TB, m *matrix.Matrix[T]) [][]T {
	tb.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(tb, m, i, j)
		}
	}

	return out
}

// Sequential returns an r×c matrix with element (i,j) = i*c + j + 1.
func Sequential(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Matrix[int] {
	tb.Helper()
	m := MustDense[int](tb, r, c, opts...)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(tb, m, i, j, i*c+j+1)
		}
	}

	return m
}

// seededRNG returns a deterministic generator; equal seeds give equal streams.
func seededRNG(seed byte) *frand.RNG {
	key := make([]byte, 32)
	key[0] = seed

	return frand.NewCustom(key, 1024, 12)
}

// RandomDense returns an r×c float64 matrix filled from seededRNG(seed).
func RandomDense(tb testing.TB, r, c int, seed byte, opts ...matrix.Option) *matrix.Matrix[float64] {
	tb.Helper()
	m := MustDense[float64](tb, r, c, opts...)
	if err := matrix.RandomFill(m, seededRNG(seed)); err != nil {
		tb.Fatalf("RandomFill: %v", err)
	}

	return m
}
