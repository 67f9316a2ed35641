// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives behind the
// correlation heatmap builder.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     explicit numeric policy (reject or admit NaN/Inf on write).
//   - Validators shared by every kernel (nil, square, symmetric).
//   - Column statistics and a pairwise-complete Pearson Correlation that
//     tolerates missing observations encoded as NaN.
//   - MaskUpper, which hides the diagonal and upper triangle of a square
//     matrix by writing NaN, leaving the strict lower triangle for display.
//
// All kernels are deterministic: fixed i→j loop orders, no map iteration and
// no shared mutable state, so concurrent calls on distinct inputs are safe.
package matrix
