// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/corrmap/internal/config"
	"github.com/katalvlaran/corrmap/internal/logging"
)

const version = "0.1.0"

// Persistent flag names.
const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagDev      = "dev"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "corrmap",
		Short: "Correlation heatmaps for tabular statistics",
		Long: `corrmap reads a table document (YAML or JSON), optionally cleans and
filters it by categorical facets, and writes a lower-triangular Pearson
correlation heatmap of its numeric columns as a Plotly figure.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "Path to a YAML configuration file")
	pf.String(flagLogLevel, "info", "Log level (debug, info, warn, error)")
	pf.Bool(flagDev, false, "Human-readable development logging")

	root.AddCommand(newHeatmapCmd(), newFacetsCmd())
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate(fmt.Sprintf("corrmap version %s\n", version))

	return root
}

// bindFlags maps config keys onto changed-or-default flag values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

// resolve builds the configuration and logger for a subcommand run.
func resolve(cmd *cobra.Command, keys map[string]string) (config.Config, *zap.Logger, error) {
	v := config.New()
	flags := cmd.Flags()

	keys[config.KeyLogLevel] = flagLogLevel
	keys[config.KeyDev] = flagDev
	if err := bindFlags(v, flags, keys); err != nil {
		return config.Config{}, nil, err
	}

	path, _ := flags.GetString(flagConfig)
	cfg, err := config.Load(v, path)
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, logger, nil
}
