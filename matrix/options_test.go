// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/corrmap/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	require.Equal(t, matrix.DefaultMinPeriods, o.MinPeriods())
}

func TestNewMatrixOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewMatrixOptions(
		matrix.WithNoValidateNaNInf(),
		matrix.WithMinPeriods(3),
		nil,
		matrix.WithValidateNaNInf(),
	)
	require.True(t, o.ValidateNaNInf())
	require.Equal(t, 3, o.MinPeriods())

	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf())
}

func TestWithNoValidateNaNInf_AdmitsNaNAfterStrict(t *testing.T) {
	t.Parallel()

	src := []float64{1, math.NaN()}
	m, err := matrix.NewDenseFrom(1, 2, src, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	requireNaN(t, MustAt(t, m, 0, 1))
	require.NoError(t, m.Set(0, 0, math.Inf(-1)))
}

func TestWithMinPeriods_PanicsBelowOne(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrix.WithMinPeriods(0) })
	require.NotPanics(t, func() { matrix.WithMinPeriods(1) })
}
