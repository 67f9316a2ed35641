// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/corrmap/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	tests := []struct {
		name string
		data []float64
		tol  float64
		want error
	}{
		{"symmetric", []float64{1, 2, 2, 1}, 0, nil},
		{"nan pair", []float64{1, nan, nan, 1}, 0, nil},
		{"nan one side", []float64{1, nan, 0.5, 1}, 0, matrix.ErrAsymmetry},
		{"within tol", []float64{1, 0.5, 0.5 + 1e-10, 1}, -1e-9, nil},
		{"outside tol", []float64{1, 0.5, 0.6, 1}, 1e-9, matrix.ErrAsymmetry},
		{"bad tol", []float64{1, 0, 0, 1}, math.Inf(1), matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.NewDenseFrom(2, 2, tc.data)
			require.NoError(t, err)
			err = matrix.ValidateSymmetric(m, tc.tol)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}

	rect, err := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrDimensionMismatch)
}
