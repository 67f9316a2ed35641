// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column statistics and Pearson correlation over observation
//     matrices (rows = observations, columns = variables) where a missing
//     observation is encoded as NaN.
//
// Exposed API:
//   - ColumnStats(X)          -> []ColumnStat  // present count, mean, sample std per column
//   - Correlation(X, opts...) -> *Dense        // pairwise-complete Pearson, NaN when undefined
//
// Missing-data policy (pairwise-complete):
//   - NaN and ±Inf cells are treated as missing.
//   - Entry (i,j) uses only the rows where both column i and column j are present.
//   - Fewer than MinPeriods such rows, or zero variance on either side over
//     those rows, yields NaN ("undefined") for that entry.
//
// Determinism & Performance:
//   - Fixed i→j traversal; each pair is computed once (j <= i) and mirrored,
//     so the output is exactly symmetric.
//   - Two-pass (mean, then centered sums) per pair for numerical stability.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnStats = "ColumnStats"
	opCorrelation = "Correlation"
)

// ColumnStat summarizes one column of an observation matrix.
type ColumnStat struct {
	Count int     // number of present (finite) observations
	Mean  float64 // mean over present observations; NaN when Count == 0
	Std   float64 // sample standard deviation; NaN when Count < 2
}

// present reports whether v is a usable observation.
func present(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// columnsOf copies X into column-major slices (one slice per column).
// Dense fast-path reads the flat buffer; other implementations go through At.
// Complexity: O(r*c) time and space.
func columnsOf(X Matrix) ([][]float64, error) {
	r, c := X.Rows(), X.Cols()
	cols := make([][]float64, c)
	for j := range cols {
		cols[j] = make([]float64, r)
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				cols[j][i] = d.data[base+j]
			}
		}

		return cols, nil
	}

	var (
		v   float64
		err error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, err
			}
			cols[j][i] = v
		}
	}

	return cols, nil
}

// ColumnStats computes count/mean/sample-std of every column, skipping missing cells.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from non-Dense implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the column copy.
func ColumnStats(X Matrix) ([]ColumnStat, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnStats, err)
	}
	cols, err := columnsOf(X)
	if err != nil {
		return nil, matrixErrorf(opColumnStats, err)
	}

	out := make([]ColumnStat, len(cols))
	for j, col := range cols {
		var n int
		var sum, first float64
		constant := true
		for _, v := range col {
			if present(v) {
				if n == 0 {
					first = v
				} else if v != first {
					constant = false
				}
				n++
				sum += v
			}
		}
		st := ColumnStat{Count: n, Mean: math.NaN(), Std: math.NaN()}
		if n > 0 {
			st.Mean = sum / float64(n)
		}
		switch {
		case n > 1 && constant:
			st.Mean, st.Std = first, 0
		case n > 1:
			var ss, d float64
			for _, v := range col {
				if present(v) {
					d = v - st.Mean
					ss += d * d
				}
			}
			st.Std = math.Sqrt(ss / float64(n-1))
		}
		out[j] = st
	}

	return out, nil
}

// Correlation computes the c×c Pearson correlation matrix of X's columns.
// MAIN DESCRIPTION:
//   - Pairwise-complete Pearson coefficient for every column pair.
//
// Implementation:
//   - Stage 1: Validate X; a 0-column input yields a legal 0×0 matrix.
//   - Stage 2: Copy columns once (Dense fast-path).
//   - Stage 3: For j <= i, compute the coefficient over rows where both are
//     present and mirror it into (j,i).
//
// Behavior highlights:
//   - Diagonal is exactly 1 when the column has >= MinPeriods present values
//     and nonzero variance; NaN otherwise.
//   - Off-diagonal values are clamped into [-1, 1] against rounding drift.
//   - The result admits NaN (permissive numeric policy).
//
// Inputs:
//   - X: Matrix (r×c), any r >= 0.
//   - opts: WithMinPeriods.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from non-Dense implementations.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
func Correlation(X Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	o := NewMatrixOptions(opts...)

	cols, err := columnsOf(X)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}

	c := len(cols)
	out := newDenseWithPolicy(c, c, false)

	var i, j int
	var v float64
	for i = 0; i < c; i++ {
		for j = 0; j <= i; j++ {
			v = pearson(cols[i], cols[j], i == j, o.MinPeriods())
			out.data[i*c+j] = v
			out.data[j*c+i] = v
		}
	}

	return out, nil
}

// pearson returns the pairwise-complete Pearson coefficient of x and y.
// self marks the diagonal, which is reported as exactly 1 when defined.
//
// Sums are taken over values shifted by the first complete pair (x0, y0).
// A side whose values all equal its first value is zero-variance, decided by
// exact comparison, so a constant 0.1 column never leaks rounding residue.
func pearson(x, y []float64, self bool, minPeriods int) float64 {
	var n int
	var x0, y0, sx, sy float64
	constX, constY := true, true
	for k := range x {
		if !present(x[k]) || !present(y[k]) {
			continue
		}
		if n == 0 {
			x0, y0 = x[k], y[k]
		} else {
			constX = constX && x[k] == x0
			constY = constY && y[k] == y0
		}
		n++
		sx += x[k] - x0
		sy += y[k] - y0
	}
	if n < minPeriods || n < 2 {
		return math.NaN()
	}
	if constX || constY {
		return math.NaN() // zero variance: undefined
	}

	mx, my := sx/float64(n), sy/float64(n)
	var sxx, syy, sxy, dx, dy float64
	for k := range x {
		if present(x[k]) && present(y[k]) {
			dx, dy = (x[k]-x0)-mx, (y[k]-y0)-my
			sxx += dx * dx
			syy += dy * dy
			sxy += dx * dy
		}
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	if self {
		return 1.0
	}

	r := sxy / math.Sqrt(sxx*syy)
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	return r
}
