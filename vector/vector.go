// SPDX-License-Identifier: MIT

// Package vector - dense, fixed-length, immutable vector of float64.
//
// Purpose:
//   - Store values contiguously; Len is fixed at construction.
//   - Never mutate after construction: every transforming operation returns a
//     new *Vector and leaves its operands untouched.
//   - Keep the index policy (lenient or strict) chosen at construction.
//
// Complexity quicksheet:
//   - New/FromSlice/FromSource/Clone: O(n); Len/At: O(1); Length: O(n).

package vector

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered, fixed-length sequence of real numbers.
// The zero value is an empty lenient vector.
type Vector struct {
	data    []float64 // contiguous storage, never aliased outside the package
	strict  bool      // At past the end fails instead of padding
	padding float64   // value returned past the end when !strict
}

// Compile-time conformance.
var (
	_ SizedSource  = (*Vector)(nil)
	_ fmt.Stringer = (*Vector)(nil)
)

// New builds a lenient vector holding a copy of xs.
func New(xs ...float64) *Vector {
	data := make([]float64, len(xs))
	copy(data, xs)

	return &Vector{data: data, padding: DefaultPadding}
}

// FromSlice builds a vector holding a copy of xs under the given options.
//
// Errors:
//   - ErrNaNInf when WithValidateNaNInf(true) and xs holds a non-finite value.
func FromSlice(xs []float64, opts ...Option) (*Vector, error) {
	data := make([]float64, len(xs))
	copy(data, xs)

	v, err := build(data, gatherOptions(opts...))
	if err != nil {
		return nil, vectorErrorf(opFromSlice, err)
	}

	return v, nil
}

// FromSource builds a vector from any sized source.
// The element count must be known before consumption; it is used to
// allocate the backing buffer once.
//
// Errors:
//   - ErrUnsizedSource      (src does not implement SizedSource, or Len() < 0).
//   - ErrInsufficientSource (src yielded a count other than its Len()).
//   - ErrNaNInf             (numeric policy enabled and a non-finite value seen).
func FromSource(src Source, opts ...Option) (*Vector, error) {
	data, err := Collect(src)
	if err != nil {
		return nil, vectorErrorf(opFromSource, err)
	}

	v, err := build(data, gatherOptions(opts...))
	if err != nil {
		return nil, vectorErrorf(opFromSource, err)
	}

	return v, nil
}

// build takes ownership of data and applies the resolved options.
func build(data []float64, o Options) (*Vector, error) {
	if o.validateNaNInf {
		for i, x := range data {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("index %d: %w", i, ErrNaNInf)
			}
		}
	}

	return &Vector{data: data, strict: o.strict, padding: o.padding}, nil
}

// derive wraps data with the same index policy as v.
func (v *Vector) derive(data []float64) *Vector {
	return &Vector{data: data, strict: v.strict, padding: v.padding}
}

// Len returns the number of stored elements. A nil vector has Len 0.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// Length returns the Euclidean norm sqrt(sum(x_i^2)). An empty vector has length 0.
func (v *Vector) Length() float64 {
	if v.Len() == 0 {
		return 0
	}

	return floats.Norm(v.data, 2)
}

// Strict reports whether At fails past the end instead of padding.
func (v *Vector) Strict() bool {
	return v != nil && v.strict
}

// At returns element i.
// Under the lenient policy any i >= Len() yields the pad value (0 by default);
// under the strict policy it yields ErrOutOfRange. Negative i is always
// ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if v == nil {
		return 0, vectorErrorf(opAt, ErrNilVector)
	}
	if i < 0 {
		return 0, fmt.Errorf("%s(%d): %w", opAt, i, ErrOutOfRange)
	}
	if i >= len(v.data) {
		if v.strict {
			return 0, fmt.Errorf("%s(%d): len %d: %w", opAt, i, len(v.data), ErrOutOfRange)
		}
		return v.padding, nil
	}

	return v.data[i], nil
}

// Values yields the stored elements in order. The sequence is repeatable.
func (v *Vector) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if v == nil {
			return
		}
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// All yields (index, value) pairs in order.
func (v *Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if v == nil {
			return
		}
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Slice returns a copy of the stored elements.
func (v *Vector) Slice() []float64 {
	out := make([]float64, v.Len())
	if v != nil {
		copy(out, v.data)
	}

	return out
}

// Clone returns an independent copy with identical elements and index policy.
func (v *Vector) Clone() *Vector {
	if v == nil {
		return nil
	}

	return v.derive(v.Slice())
}

// String formats the vector as "[x0, x1, ...]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.All() {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
