// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Equal reports whether a and b hold the same elements.
// Vectors of different Len are never equal. Two nil vectors are equal.
// The index policy does not take part in the comparison.
func Equal(a, b *Vector) bool {
	if a == nil || b == nil {
		return a == b
	}

	return floats.Equal(a.data, b.data)
}

// EqualApprox is Equal with an absolute-or-relative tolerance per element.
func EqualApprox(a, b *Vector, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return floats.EqualApprox(a.data, b.data, tol)
}

// Equal reports whether v and w hold the same elements. See Equal.
func (v *Vector) Equal(w *Vector) bool { return Equal(v, w) }

// Scale returns k·v as a new vector; v is not modified.
// It is the scalar-first counterpart of (*Vector).Scale.
func Scale(k float64, v *Vector) *Vector {
	return v.Scale(k)
}

// Scale returns v·k as a new vector with the same index policy.
// A nil vector scales to nil.
func (v *Vector) Scale(k float64) *Vector {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v.data))
	floats.ScaleTo(out, k, v.data)

	return v.derive(out)
}

// Dot returns the inner product sum(a_i * b_i).
//
// Errors:
//   - ErrNilVector       (a or b is nil).
//   - ErrMismatchedSizes (a.Len() != b.Len()).
func Dot(a, b *Vector) (float64, error) {
	if a == nil || b == nil {
		return 0, vectorErrorf(opDot, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return 0, fmt.Errorf("%s: %d vs %d: %w", opDot, len(a.data), len(b.data), ErrMismatchedSizes)
	}

	return floats.Dot(a.data, b.data), nil
}

// Dot returns the inner product of v and w. See Dot.
func (v *Vector) Dot(w *Vector) (float64, error) { return Dot(v, w) }
