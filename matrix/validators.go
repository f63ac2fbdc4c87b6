// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape, index and numeric checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap again with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDims ensures rows, cols >= 0 and that rows*cols fits in int.
// Zero-sized shapes are legal (e.g., a matrix built from an empty vector).
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateDims", fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	if cols > 0 && rows > math.MaxInt/cols {
		return validatorErrorf("ValidateDims", fmt.Errorf("%dx%d overflows: %w", rows, cols, ErrInvalidDimensions))
	}

	return nil
}

// ValidateSourceLen ensures src reports a count up front and that the count
// equals rows*cols. It does not consume src.
// Errors: ErrUnsizedSource, ErrInsufficientSource.
// Complexity: O(1).
func ValidateSourceLen(src vector.Source, rows, cols int) error {
	sized, ok := src.(vector.SizedSource)
	if !ok || sized.Len() < 0 {
		return validatorErrorf("ValidateSourceLen", ErrUnsizedSource)
	}
	if n := sized.Len(); n != rows*cols {
		return validatorErrorf("ValidateSourceLen", fmt.Errorf("%d values for %dx%d: %w", n, rows, cols, ErrInsufficientSource))
	}

	return nil
}

// ValidateRowIndex ensures 0 <= i < m.Rows(). Assumes m is non-nil.
func ValidateRowIndex(m Matrix, i int) error {
	if i < 0 || i >= m.Rows() {
		return validatorErrorf("ValidateRowIndex", fmt.Errorf("row %d of %d: %w", i, m.Rows(), ErrRowOutOfBounds))
	}

	return nil
}

// ValidateColIndex ensures 0 <= j < m.Cols(). Assumes m is non-nil.
func ValidateColIndex(m Matrix, j int) error {
	if j < 0 || j >= m.Cols() {
		return validatorErrorf("ValidateColIndex", fmt.Errorf("column %d of %d: %w", j, m.Cols(), ErrColumnOutOfBounds))
	}

	return nil
}

// ValidateFinite ensures every value is neither NaN nor ±Inf.
// Complexity: O(n).
func ValidateFinite(data []float64) error {
	for k, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return validatorErrorf("ValidateFinite", fmt.Errorf("flat index %d: %w", k, ErrNaNInf))
		}
	}

	return nil
}
