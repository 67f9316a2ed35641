// SPDX-License-Identifier: MIT

package heatmap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/corrmap/matrix"
	"github.com/katalvlaran/corrmap/table"
)

// Spec is a renderer-agnostic heatmap description.
// It is a plain value: Build allocates a fresh one per call.
type Spec struct {
	// Z is the masked correlation grid, len(Y) rows by len(X) columns.
	// NaN marks absent cells (diagonal, upper triangle, undefined values).
	Z [][]float64

	// X and Y are the axis labels: the numeric column names, same order.
	X []string
	Y []string

	Title      string
	ColorScale string
	ZMin       float64
	ZMax       float64
	XGap       int
	YGap       int
	Height     int
	Width      int
	TitleX     float64
	ShowGridX  bool
	ShowGridY  bool
	ReverseY   bool // first row drawn at the top
}

// Len returns the grid dimension (number of numeric columns).
func (s Spec) Len() int { return len(s.X) }

// Empty reports whether the spec has no cells.
func (s Spec) Empty() bool { return len(s.X) == 0 }

// Build computes the lower-triangular correlation heatmap of t's numeric columns.
//
// Stages:
//   - select numeric columns in table order (non-numeric are skipped);
//   - extract a rows×n observation matrix (missing cells as NaN);
//   - pairwise-complete Pearson correlation;
//   - mask i <= j with NaN;
//   - assemble the Spec.
//
// A nil table, a table without rows or without numeric columns yields an
// empty Spec (non-nil empty Z/X/Y) and no error.
func Build(t *table.Table, title string, opts ...Option) (Spec, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	spec := newSpec(title, cfg)

	cols := t.NumericColumns()
	cfg.logger.Debug("selected numeric columns",
		zap.Strings("columns", cols),
		zap.Int("rows", t.Len()),
		zap.Int("width", t.Width()),
	)
	if len(cols) == 0 {
		return spec, nil
	}

	X, err := t.Numeric(cols)
	if err != nil {
		return Spec{}, fmt.Errorf("Build: %w", err)
	}
	corr, err := matrix.Correlation(X, matrix.WithMinPeriods(cfg.minPeriods))
	if err != nil {
		return Spec{}, fmt.Errorf("Build: %w", err)
	}
	masked, err := matrix.MaskUpper(corr)
	if err != nil {
		return Spec{}, fmt.Errorf("Build: %w", err)
	}
	grid, err := matrix.Rows2D(masked)
	if err != nil {
		return Spec{}, fmt.Errorf("Build: %w", err)
	}

	spec.Z = grid
	spec.X = append(spec.X, cols...)
	spec.Y = append(spec.Y, cols...)

	cfg.logger.Debug("built heatmap spec", zap.Int("n", spec.Len()), zap.String("title", title))

	return spec, nil
}

// newSpec returns an empty Spec carrying the layout metadata.
func newSpec(title string, cfg config) Spec {
	return Spec{
		Z:          [][]float64{},
		X:          []string{},
		Y:          []string{},
		Title:      title,
		ColorScale: ColorScale,
		ZMin:       cfg.zmin,
		ZMax:       cfg.zmax,
		XGap:       CellGap,
		YGap:       CellGap,
		Height:     cfg.height,
		Width:      cfg.width,
		TitleX:     TitleX,
		ShowGridX:  false,
		ShowGridY:  false,
		ReverseY:   true,
	}
}
