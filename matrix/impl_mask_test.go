// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/corrmap/matrix"
	"github.com/stretchr/testify/require"
)

func TestMaskUpper_StrictLowerKept(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.NoError(t, err)

	for _, in := range []matrix.Matrix{m, hide{m}} {
		masked, err := matrix.MaskUpper(in)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				v := MustAt(t, masked, i, j)
				if i <= j {
					requireNaN(t, v, "(%d,%d) must be absent", i, j)
					continue
				}
				require.Equal(t, MustAt(t, m, i, j), v)
			}
		}

		ok, err := matrix.IsLowerMasked(masked)
		require.NoError(t, err)
		require.True(t, ok)
	}

	// Input is untouched.
	require.Equal(t, 5.0, MustAt(t, m, 1, 1))
	ok, err := matrix.IsLowerMasked(m)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMaskUpper_Degenerate(t *testing.T) {
	t.Parallel()

	empty, err := matrix.NewDenseFrom(0, 0, nil)
	require.NoError(t, err)
	masked, err := matrix.MaskUpper(empty)
	require.NoError(t, err)
	require.Equal(t, 0, masked.Rows())

	one, err := matrix.NewDenseFrom(1, 1, []float64{1})
	require.NoError(t, err)
	masked, err = matrix.MaskUpper(one)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, masked, 0, 0)))

	rect, err := matrix.NewDenseFrom(2, 3, make([]float64, 6))
	require.NoError(t, err)
	_, err = matrix.MaskUpper(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MaskUpper(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
