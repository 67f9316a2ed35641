// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/corrmap/table"
)

const flagColumn = "column"

func newFacetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "facets",
		Short:   "List the sorted distinct values of a column",
		Example: `  corrmap facets -i stats.yaml --header-column Age --column Tm`,
		Args:    cobra.NoArgs,
		RunE:    runFacets,
	}

	fs := cmd.Flags()
	addInputFlags(fs)
	fs.StringP(flagColumn, "c", "", "Column to list")
	_ = cmd.MarkFlagRequired(flagColumn)

	return cmd
}

func runFacets(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := resolve(cmd, inputKeys())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	mergeDrop(&cfg, cmd.Flags())

	t, err := loadTable(cfg, logger)
	if err != nil {
		return err
	}
	col, _ := cmd.Flags().GetString(flagColumn)
	if !t.Has(col) {
		return fmt.Errorf("facets: column %q not in %v: %w", col, t.Columns(), table.ErrUnknownColumn)
	}
	vals, err := t.Distinct(col)
	if err != nil {
		return err
	}
	logger.Debug("distinct values", zap.String("column", col), zap.Int("count", len(vals)))

	out := cmd.OutOrStdout()
	for _, v := range vals {
		if _, err = fmt.Fprintln(out, v); err != nil {
			return err
		}
	}

	return nil
}
