// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mafs/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultOrder, o.Order())
	require.Equal(t, matrix.DefaultDynamic, o.Dynamic())
}

// 2) TestNewOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestNewOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithColMajor(), matrix.WithRowMajor())
	require.Equal(t, matrix.RowMajor, o.Order())
	require.True(t, o.Dynamic())

	o = matrix.NewOptions(matrix.WithFixed(), matrix.WithColMajor())
	require.Equal(t, matrix.ColMajor, o.Order())
	require.False(t, o.Dynamic())

	o = matrix.NewOptions(matrix.WithStatic(), matrix.WithDynamic())
	require.True(t, o.Dynamic())

	o = matrix.NewOptions(nil, matrix.WithOrder(matrix.ColMajor), nil)
	require.Equal(t, matrix.ColMajor, o.Order())
}

// 3) TestWithOrder_PanicsOnUnknown guards against nonsensical orders.
func TestWithOrder_PanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { matrix.WithOrder(matrix.Order(7)) })
	require.Equal(t, "Order(7)", matrix.Order(7).String())
}

// 4) TestOptions_ReachConstructors checks every flag changes the built matrix.
func TestOptions_ReachConstructors(t *testing.T) {
	m := MustDense[int](t, 2, 2, matrix.WithColMajor(), matrix.WithFixed())
	require.Equal(t, matrix.ColMajor, m.Order())
	require.False(t, m.IsDynamic())
	require.Equal(t, 1, m.Index(1, 0))

	m = MustDense[int](t, 2, 2)
	require.Equal(t, matrix.RowMajor, m.Order())
	require.True(t, m.IsDynamic())
	require.Equal(t, 2, m.Index(1, 0))
}
