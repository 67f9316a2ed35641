// SPDX-License-Identifier: MIT

// Package table provides the Observation Table consumed by the heatmap builder.
//
// A Table is an ordered set of uniquely named columns and rows of Value cells.
// A cell is a number, a category (free text) or missing. Column kind is
// derived from the cells:
//
//	numeric   at least one number and no category cells (missing allowed)
//	category  any category cell
//	empty     no present cells at all (including zero rows)
//
// Transforms (DropColumns, DropHeaderRows, FillMissing, Filter) return new
// tables and never mutate their receiver. A Table is not safe for concurrent
// mutation; concurrent reads are safe.
package table
