// SPDX-License-Identifier: MIT

// Package matrix: converters between Matrix and plain Go slices.
package matrix

// Rows2D returns m as a freshly allocated [][]float64 (one slice per row).
// A 0-row matrix yields an empty, non-nil slice.
//
// Errors: ErrNilMatrix; wrapped At errors from non-Dense implementations.
// Time Complexity: O(r*c)
func Rows2D(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Rows2D", err)
	}

	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			row := make([]float64, c)
			copy(row, d.data[i*c:(i+1)*c])
			out[i] = row
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("Rows2D", err)
			}
			row[j] = v
		}
		out[i] = row
	}

	return out, nil
}
