//go:build !mafs_accelerated

package opmode_test

import (
	"testing"

	"github.com/katalvlaran/mafs/matrix/opmode"
	"github.com/stretchr/testify/require"
)

func TestSelected_DefaultBuildComputes(t *testing.T) {
	require.Equal(t, opmode.Basic, opmode.Selected)

	x := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	sum, err := opmode.Sum(x, x)
	require.NoError(t, err)
	require.True(t, opmode.Equals(sum, mustFromRows(t, [][]int{{2, 4}, {6, 8}})))

	require.NoError(t, opmode.InplaceScalarMultiplication(x, -1))
	require.True(t, x.Equal(mustFromRows(t, [][]int{{-1, -2}, {-3, -4}})))

	require.NoError(t, opmode.InplaceTranspose(x))
	require.True(t, x.Equal(mustFromRows(t, [][]int{{-1, -3}, {-2, -4}})))
}
