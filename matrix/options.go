// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and statistics.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Numeric policy is explicit: validateNaNInf controls whether Set rejects
//     NaN/Inf. NewDense keeps the strict default; NewDenseFrom defaults to the
//     permissive policy because NaN is the missing-value encoding on ingestion.
//   - minPeriods is the minimum number of pairwise-complete observations
//     required before Correlation reports a coefficient instead of NaN.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set for NewDense.
	DefaultValidateNaNInf = true

	// DefaultMinPeriods is the smallest pairwise-complete sample for which a
	// sample correlation is defined (r-1 > 0).
	DefaultMinPeriods = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMinPeriodsInvalid = "matrix: WithMinPeriods: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // numeric guard applied to constructed matrices
	minPeriods     int  // >= 1; DefaultMinPeriods
}

// WithValidateNaNInf forces the finite-only numeric policy on constructed matrices.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf admits NaN/Inf writes on constructed matrices.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithMinPeriods sets the minimum number of rows where both columns are
// present for a correlation entry to be reported.
//
// Behavior highlights:
//   - n < 1 is nonsensical and panics (programmer error).
//   - n = 1 still yields NaN off the diagonal, since one observation has no variance.
//
// Complexity: O(1).
func WithMinPeriods(n int) Option {
	if n < 1 {
		panic(panicMinPeriodsInvalid)
	}

	return func(o *Options) { o.minPeriods = n }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(defaultOptions(), opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		minPeriods:     DefaultMinPeriods,
	}
}

// gatherOptions applies user setters on top of base in order.
// Complexity: O(k) for k=len(user).
func gatherOptions(base Options, user ...Option) Options {
	o := base
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ValidateNaNInf reports the resolved numeric policy.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// MinPeriods reports the resolved minimum pairwise sample size.
func (o Options) MinPeriods() int { return o.minPeriods }
