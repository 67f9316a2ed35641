// SPDX-License-Identifier: MIT

package heatmap

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/corrmap/matrix"
)

// Defaults mirror the classic correlation heatmap layout.
const (
	DefaultZMin   = -1.0
	DefaultZMax   = 1.0
	DefaultHeight = 600
	DefaultWidth  = 800
)

// Fixed presentation constants.
const (
	// ColorScale is a diverging red-blue scale: -1 and +1 are opposite
	// extremes, 0 is neutral.
	ColorScale = "RdBu"

	// CellGap is the pixel gap between cells on both axes.
	CellGap = 1

	// TitleX centers the title horizontally (paper coordinates).
	TitleX = 0.5
)

// Option configures Build.
type Option func(*config)

type config struct {
	zmin, zmax    float64
	height, width int
	minPeriods    int
	logger        *zap.Logger
}

func defaultConfig() config {
	return config{
		zmin:       DefaultZMin,
		zmax:       DefaultZMax,
		height:     DefaultHeight,
		width:      DefaultWidth,
		minPeriods: matrix.DefaultMinPeriods,
		logger:     zap.NewNop(),
	}
}

// WithZRange sets the color-domain bounds. Values are passed through
// unvalidated; zmin >= zmax yields a degenerate but well-formed Spec.
func WithZRange(zmin, zmax float64) Option {
	return func(c *config) {
		c.zmin = zmin
		c.zmax = zmax
	}
}

// WithSize sets the canvas height and width in pixels, unvalidated.
func WithSize(height, width int) Option {
	return func(c *config) {
		c.height = height
		c.width = width
	}
}

// WithMinPeriods sets the minimum number of pairwise-complete rows for a
// coefficient to be reported. Values below 1 are ignored.
func WithMinPeriods(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.minPeriods = n
		}
	}
}

// WithLogger sets the logger used for debug output. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
