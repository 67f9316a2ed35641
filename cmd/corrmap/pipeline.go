// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/corrmap/internal/config"
	"github.com/katalvlaran/corrmap/table"
)

// Input/cleanup flag names shared by subcommands.
const (
	flagInput        = "input"
	flagDrop         = "drop"
	flagHeaderColumn = "header-column"
	flagFillMissing  = "fill-missing"
)

// addInputFlags registers the input and cleanup flags on fs.
func addInputFlags(fs *pflag.FlagSet) {
	fs.StringP(flagInput, "i", "", "Table document (YAML or JSON)")
	fs.StringArray(flagDrop, nil, "Column to drop (repeatable)")
	fs.String(flagHeaderColumn, "", "Drop rows whose cell in this column equals the column name")
	fs.String(flagFillMissing, "", "Replace missing cells with this value")
}

// inputKeys maps config keys to the flags registered by addInputFlags.
func inputKeys() map[string]string {
	return map[string]string{
		config.KeyInput:        flagInput,
		config.KeyHeaderColumn: flagHeaderColumn,
		config.KeyFillMissing:  flagFillMissing,
	}
}

// mergeDrop appends --drop flags to the configured drop list.
func mergeDrop(cfg *config.Config, fs *pflag.FlagSet) {
	extra, _ := fs.GetStringArray(flagDrop)
	cfg.Drop = append(cfg.Drop, extra...)
}

// loadTable decodes cfg.Input and applies the configured cleanup in order:
// header-row removal, missing-value fill, column drops.
func loadTable(cfg config.Config, logger *zap.Logger) (*table.Table, error) {
	if err := cfg.RequireInput(); err != nil {
		return nil, err
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	t, err := table.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfg.Input, err)
	}
	logger.Info("loaded table",
		zap.String("input", cfg.Input),
		zap.Int("rows", t.Len()),
		zap.Int("columns", t.Width()),
	)

	if cfg.HeaderColumn != "" {
		before := t.Len()
		if t, err = t.DropHeaderRows(cfg.HeaderColumn); err != nil {
			return nil, err
		}
		logger.Debug("dropped repeated header rows", zap.Int("dropped", before-t.Len()))
	}
	if cfg.FillMissing != "" {
		if t, err = t.FillMissing(table.Parse(cfg.FillMissing)); err != nil {
			return nil, err
		}
	}
	if len(cfg.Drop) > 0 {
		if t, err = t.DropColumns(cfg.Drop...); err != nil {
			return nil, err
		}
		logger.Debug("dropped columns", zap.Strings("columns", cfg.Drop))
	}

	return t, nil
}

// openOutput returns w for "" or "-", else creates the file at path.
func openOutput(path string, w io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, f.Close, nil
}
