// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Triangular masking for display of symmetric matrices: the diagonal and
//     upper triangle carry no information beyond the strict lower triangle.
//
// Policy:
//   - The "absent" marker is NaN. Positions with row <= col are absent.
//   - Masking is positional (index comparison), never label-based.

package matrix

import "math"

const (
	opMaskUpper     = "MaskUpper"
	opIsLowerMasked = "IsLowerMasked"
)

// MaskUpper returns a copy of the square matrix m with every (i,j), i <= j,
// replaced by NaN. Strictly-lower entries are copied unchanged.
//
// Behavior highlights:
//   - Input is not modified; the result uses the permissive numeric policy.
//   - 0×0 input yields a 0×0 result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), wrapped At errors.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func MaskUpper(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMaskUpper, err)
	}

	n := m.Rows()
	out := newDenseWithPolicy(n, n, false)
	nan := math.NaN()

	var i, j int
	var v float64
	var err error
	src, fast := m.(*Dense)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i <= j {
				out.data[i*n+j] = nan
				continue
			}
			if fast {
				out.data[i*n+j] = src.data[i*n+j]
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMaskUpper, err)
			}
			out.data[i*n+j] = v
		}
	}

	return out, nil
}

// IsLowerMasked reports whether every (i,j) with i <= j holds NaN.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func IsLowerMasked(m Matrix) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opIsLowerMasked, err)
	}

	n := m.Rows()
	var v float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, _ = m.At(i, j)
			if !math.IsNaN(v) {
				return false, nil
			}
		}
	}

	return true, nil
}
