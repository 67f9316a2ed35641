// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/corrmap/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the non-*Dense (fallback) paths in code under test.
type hide struct{ matrix.Matrix }

// FromColumns builds an r×c *Dense from column slices (equal length).
func FromColumns(t *testing.T, cols ...[]float64) *matrix.Dense {
	t.Helper()

	r := 0
	if len(cols) > 0 {
		r = len(cols[0])
	}
	data := make([]float64, r*len(cols))
	for j, col := range cols {
		require.Len(t, col, r, "column %d length", j)
		for i, v := range col {
			data[i*len(cols)+j] = v
		}
	}
	m, err := matrix.NewDenseFrom(r, len(cols), data)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()

	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireNaN asserts v is NaN.
func requireNaN(t *testing.T, v float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, math.IsNaN(v), msgAndArgs...)
}
