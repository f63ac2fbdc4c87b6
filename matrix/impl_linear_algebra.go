// SPDX-License-Identifier: MIT

// Package matrix - eager kernels over Dense: Transpose, Scale, Equal.
//
// Purpose:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Fixed loop orders (flat 0..n-1 or i→j) for determinism.
//   - Fast paths read the *Dense flat buffer directly; Transpose also accepts
//     any Matrix through a generic At-based fallback.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Transpose returns a new cols×rows matrix with result[j][i] == m[i][j].
// This is a true element permutation, not a shape relabel: the row-major
// buffer of the result is the column-major reading of m.
//
// A nil matrix transposes to nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	if m == nil {
		return nil
	}
	rows, cols := m.r, m.c
	out := make([]float64, len(m.data))

	// data[i*cols + j] → out[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			out[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return m.derive(out, cols, rows)
}

// Transpose returns the transpose of any Matrix as a new *Dense.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: Fast path for *Dense (flat permutation).
//     Otherwise, fallback At reads with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, or any error surfaced by m.At in the fallback.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if dm, ok := m.(*Dense); ok {
		return dm.Transpose(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	if err := ValidateDims(cols, rows); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[j*rows+i] = v
		}
	}

	return &Dense{r: cols, c: rows, data: out}, nil
}

// Scale returns a new matrix whose elements are k * m[i,j].
// k = 0 yields an explicit zero matrix with the same shape. A nil matrix scales to nil.
// Complexity: O(r*c).
func (m *Dense) Scale(k float64) *Dense {
	if m == nil {
		return nil
	}
	out := make([]float64, len(m.data))
	floats.ScaleTo(out, k, m.data)

	return m.derive(out, m.r, m.c)
}

// Equal reports whether a and b have the same shape and elements.
// Two nil matrices are equal; nil and non-nil are not.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}

	return floats.Equal(a.data, b.data)
}

// EqualApprox is Equal with an absolute-or-relative tolerance per element.
func EqualApprox(a, b *Dense, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}

	return floats.EqualApprox(a.data, b.data, tol)
}

// Equal reports whether m and n have the same shape and elements. See Equal.
func (m *Dense) Equal(n *Dense) bool { return Equal(m, n) }
