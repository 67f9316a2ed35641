// SPDX-License-Identifier: MIT

// Package config resolves corrmap settings from defaults, an optional YAML
// config file, CORRMAP_* environment variables and command-line flags
// (highest precedence last).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/katalvlaran/corrmap/heatmap"
	"github.com/katalvlaran/corrmap/matrix"
)

// EnvPrefix is the environment variable prefix (CORRMAP_ZMIN, ...).
const EnvPrefix = "CORRMAP"

// ListSeparator splits list settings given as one string (env vars).
// Facet entries contain commas, so lists use semicolons:
//
//	CORRMAP_FACETS="Tm=LAL,BOS;Pos=C"
//	CORRMAP_DROP="Rk;Awards"
const ListSeparator = ";"

// DefaultTitle is the heatmap title used when none is configured.
const DefaultTitle = "Intercorrelation Matrix Heatmap"

// Keys shared by viper, flags and env.
const (
	KeyInput        = "input"
	KeyOutput       = "output"
	KeyTitle        = "title"
	KeyZMin         = "zmin"
	KeyZMax         = "zmax"
	KeyHeight       = "height"
	KeyWidth        = "width"
	KeyMinPeriods   = "min_periods"
	KeyHeaderColumn = "header_column"
	KeyFillMissing  = "fill_missing"
	KeyFacets       = "facets"
	KeyDrop         = "drop"
	KeyLogLevel     = "log_level"
	KeyDev          = "dev"
)

var (
	// ErrNoInput is returned when a command needs an input document and none is set.
	ErrNoInput = errors.New("config: input is required")

	// ErrBadFacet is returned for a facet that is not COLUMN=v1,v2,...
	ErrBadFacet = errors.New("config: facet must be COLUMN=value[,value...]")
)

// Config is the resolved configuration.
type Config struct {
	Input        string   `mapstructure:"input"`
	Output       string   `mapstructure:"output"`
	Title        string   `mapstructure:"title"`
	ZMin         float64  `mapstructure:"zmin"`
	ZMax         float64  `mapstructure:"zmax"`
	Height       int      `mapstructure:"height"`
	Width        int      `mapstructure:"width"`
	MinPeriods   int      `mapstructure:"min_periods"`
	Facets       []string `mapstructure:"facets"` // COLUMN=v1,v2 entries
	Drop         []string `mapstructure:"drop"`
	HeaderColumn string   `mapstructure:"header_column"`
	FillMissing  string   `mapstructure:"fill_missing"`
	LogLevel     string   `mapstructure:"log_level"`
	Dev          bool     `mapstructure:"dev"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyHeaderColumn, "")
	v.SetDefault(KeyFillMissing, "")
	v.SetDefault(KeyFacets, []string{})
	v.SetDefault(KeyDrop, []string{})
	v.SetDefault(KeyTitle, DefaultTitle)
	v.SetDefault(KeyZMin, heatmap.DefaultZMin)
	v.SetDefault(KeyZMax, heatmap.DefaultZMax)
	v.SetDefault(KeyHeight, heatmap.DefaultHeight)
	v.SetDefault(KeyWidth, heatmap.DefaultWidth)
	v.SetDefault(KeyMinPeriods, matrix.DefaultMinPeriods)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDev, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file at path and unmarshals v into a Config.
// String values for list settings are split on ListSeparator.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(ListSeparator),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, nil
}

// RequireInput returns ErrNoInput when no input document is configured.
func (c Config) RequireInput() error {
	if strings.TrimSpace(c.Input) == "" {
		return ErrNoInput
	}

	return nil
}

// ParseFacets parses COLUMN=v1,v2 entries into a column → allowed-values map.
// Repeated columns accumulate. "COLUMN=" selects the empty set.
func ParseFacets(entries []string) (map[string][]string, error) {
	out := make(map[string][]string, len(entries))
	for _, e := range entries {
		col, vals, ok := strings.Cut(e, "=")
		col = strings.TrimSpace(col)
		if !ok || col == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadFacet, e)
		}
		if _, seen := out[col]; !seen {
			out[col] = []string{}
		}
		for _, s := range strings.Split(vals, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out[col] = append(out[col], s)
			}
		}
	}

	return out, nil
}
