// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/corrmap/heatmap"
	"github.com/katalvlaran/corrmap/internal/config"
	"github.com/katalvlaran/corrmap/matrix"
	"github.com/katalvlaran/corrmap/table"
)

const (
	flagOutput     = "output"
	flagTitle      = "title"
	flagZMin       = "zmin"
	flagZMax       = "zmax"
	flagHeight     = "height"
	flagWidth      = "width"
	flagMinPeriods = "min-periods"
	flagFacet      = "facet"
)

func newHeatmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Write the correlation heatmap figure of a table",
		Example: `  corrmap heatmap -i stats.yaml --header-column Age --fill-missing 0 --drop Rk \
    --facet Tm=LAL,BOS --facet Pos=C,PF -o figure.json`,
		Args: cobra.NoArgs,
		RunE: runHeatmap,
	}

	fs := cmd.Flags()
	addInputFlags(fs)
	fs.StringP(flagOutput, "o", "", "Figure output path (default stdout)")
	fs.String(flagTitle, config.DefaultTitle, "Figure title")
	fs.Float64(flagZMin, heatmap.DefaultZMin, "Lower bound of the color domain")
	fs.Float64(flagZMax, heatmap.DefaultZMax, "Upper bound of the color domain")
	fs.Int(flagHeight, heatmap.DefaultHeight, "Canvas height in pixels")
	fs.Int(flagWidth, heatmap.DefaultWidth, "Canvas width in pixels")
	fs.Int(flagMinPeriods, matrix.DefaultMinPeriods, "Minimum pairwise-complete rows per coefficient")
	fs.StringArray(flagFacet, nil, "Facet filter COLUMN=v1,v2 (repeatable, overrides config per column)")

	return cmd
}

func runHeatmap(cmd *cobra.Command, _ []string) error {
	keys := inputKeys()
	keys[config.KeyOutput] = flagOutput
	keys[config.KeyTitle] = flagTitle
	keys[config.KeyZMin] = flagZMin
	keys[config.KeyZMax] = flagZMax
	keys[config.KeyHeight] = flagHeight
	keys[config.KeyWidth] = flagWidth
	keys[config.KeyMinPeriods] = flagMinPeriods

	cfg, logger, err := resolve(cmd, keys)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	mergeDrop(&cfg, cmd.Flags())

	facets, err := resolveFacets(cfg, cmd)
	if err != nil {
		return err
	}

	t, err := loadTable(cfg, logger)
	if err != nil {
		return err
	}
	if t, err = t.Filter(facets); err != nil {
		return err
	}
	logger.Info("filtered table", zap.Int("rows", t.Len()), zap.Int("facets", len(facets)))

	spec, err := heatmap.Build(t, cfg.Title,
		heatmap.WithZRange(cfg.ZMin, cfg.ZMax),
		heatmap.WithSize(cfg.Height, cfg.Width),
		heatmap.WithMinPeriods(cfg.MinPeriods),
		heatmap.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if spec.Empty() {
		logger.Warn("no numeric columns to correlate")
	}

	w, closeFn, err := openOutput(cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err = heatmap.WriteFigure(w, spec); err != nil {
		_ = closeFn()
		return fmt.Errorf("write figure: %w", err)
	}
	if err = closeFn(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	logger.Info("wrote figure", zap.String("output", cfg.Output), zap.Strings("columns", spec.X))

	return nil
}

// resolveFacets parses config-file facets, then lets --facet flags replace
// whole columns.
func resolveFacets(cfg config.Config, cmd *cobra.Command) (table.Facets, error) {
	fromFile, err := config.ParseFacets(cfg.Facets)
	if err != nil {
		return nil, err
	}
	raw, _ := cmd.Flags().GetStringArray(flagFacet)
	fromFlags, err := config.ParseFacets(raw)
	if err != nil {
		return nil, err
	}

	out := make(table.Facets, len(fromFile)+len(fromFlags))
	for col, vals := range fromFile {
		out[col] = vals
	}
	for col, vals := range fromFlags {
		out[col] = vals
	}

	return out, nil
}
