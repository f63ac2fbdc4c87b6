// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - The numeric policy (validateNaNInf) applies once, at construction. A
//     Dense has no mutators, so nothing can violate it afterwards.
//   - Vector options are carried by the matrix and applied to every vector
//     returned by Row and Col (e.g., strict indexing for extracted rows).

package matrix

import "github.com/katalvlaran/linalg/vector"

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf disables finite-value validation at construction.
const DefaultValidateNaNInf = false

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool            // DefaultValidateNaNInf
	vectorOpts     []vector.Option // applied by Row/Col
}

// WithValidateNaNInf toggles rejection of NaN/±Inf values at construction.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// WithVectorOptions appends vector options used for vectors returned by Row and Col.
func WithVectorOptions(opts ...vector.Option) Option {
	return func(o *Options) { o.vectorOpts = append(o.vectorOpts, opts...) }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
