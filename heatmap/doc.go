// SPDX-License-Identifier: MIT

// Package heatmap builds renderer-agnostic correlation heatmap specifications.
//
// Build selects the numeric columns of a table.Table (in table order),
// computes their pairwise-complete Pearson correlation matrix, masks the
// diagonal and upper triangle with NaN, and returns a Spec: the masked grid,
// shared axis labels, title, color domain and fixed layout metadata.
//
// The grid and the labels are positional: Z[i][j] is the correlation of
// Y[i] with X[j], and X and Y always list the same names in the same order.
//
// Undefined correlations (zero variance, or fewer than two rows where both
// columns are present) are NaN, the same marker used for masked cells.
//
// Figure converts a Spec into a Plotly-shaped figure document for any
// surface that draws Plotly JSON; NaN cells become JSON null.
//
// Build is pure and safe to call concurrently.
package heatmap
