// Package corrmap turns tabular statistics into lower-triangular
// correlation heatmaps, from raw table documents to a Plotly-ready figure.
//
// 🚀 What is corrmap?
//
//	A small, deterministic pipeline that brings together:
//		• Tables: ordered columns of number / category / missing cells
//		• Cleanup: repeated header rows, dropped columns, missing-value fill
//		• Facets: AND-across-columns, OR-within-column row filters
//		• Statistics: pairwise-complete Pearson correlation over NaN-aware matrices
//		• Heatmaps: masked lower triangle, shared axes, fixed diverging color scale
//
// ✨ Why corrmap?
//
//   - Undefined is explicit – zero variance or too few rows yields NaN, never 0
//   - Deterministic – fixed loop orders, exactly symmetric before masking
//   - Renderer-agnostic – Spec is plain data; Figure is one optional encoding
//
// Under the hood, everything is organized under these packages:
//
//	matrix/          — Dense, validators, column statistics, Correlation, MaskUpper
//	table/           — Table, Value, transforms, Facets, YAML/JSON decoding
//	heatmap/         — Build (table → Spec) and Figure (Spec → Plotly JSON)
//	internal/config  — viper-backed settings (file, CORRMAP_* env, flags)
//	internal/logging — zap logger construction
//	cmd/corrmap      — cobra CLI: `heatmap` and `facets`
//
// Quick start:
//
//	corrmap heatmap -i stats.yaml --header-column Age --drop Rk \
//	    --facet Tm=LAL,BOS -o figure.json
package corrmap
