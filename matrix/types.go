// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix interface.

package matrix

// Matrix represents a two-dimensional, read-only array of float64 values.
// *Dense is the concrete implementation; Transpose accepts any Matrix and
// uses a flat fast path when given a *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrRowOutOfBounds or ErrColumnOutOfBounds on invalid indices.
	At(i, j int) (float64, error)
}
