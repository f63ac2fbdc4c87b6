// SPDX-License-Identifier: MIT

// Package vector: functional configuration for Vector construction.
//
// Two index policies exist and are chosen per vector at construction:
//   - lenient (default): At(i) for i >= Len() returns the pad value (0 unless
//     WithPadding is used), so a vector reads like an infinite sequence padded
//     with zeros.
//   - strict: At(i) for i >= Len() returns ErrOutOfRange.
//
// Negative indices are ErrOutOfRange under both policies.
//
// The numeric policy (WithValidateNaNInf) is orthogonal and off by default.

package vector

import "math"

// Defaults (single source of truth).
const (
	// DefaultStrictIndex selects the lenient, zero-padded index policy.
	DefaultStrictIndex = false

	// DefaultPadding is the value At returns past the end under the lenient policy.
	DefaultPadding = 0.0

	// DefaultValidateNaNInf disables finite-value validation at construction.
	DefaultValidateNaNInf = false
)

const panicPaddingInvalid = "vector: WithPadding: pad value must not be NaN"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	strict         bool    // DefaultStrictIndex
	padding        float64 // DefaultPadding
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithStrictIndex makes At fail with ErrOutOfRange for any index >= Len().
func WithStrictIndex() Option {
	return func(o *Options) { o.strict = true }
}

// WithLenientIndex makes At return the pad value for any index >= Len().
// This is the default; the option exists to override an earlier WithStrictIndex.
func WithLenientIndex() Option {
	return func(o *Options) { o.strict = false }
}

// WithPadding sets the value returned past the end under the lenient policy.
// Panics if v is NaN.
func WithPadding(v float64) Option {
	if math.IsNaN(v) {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.padding = v }
}

// WithValidateNaNInf toggles rejection of NaN/±Inf values at construction.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		strict:         DefaultStrictIndex,
		padding:        DefaultPadding,
		validateNaNInf: DefaultValidateNaNInf,
	}
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
