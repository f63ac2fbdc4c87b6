// SPDX-License-Identifier: MIT

// Package matrix - conversions from nested slices and to/from gonum.
// Every conversion copies; a Dense never shares its buffer.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromRows builds a matrix from a slice of equal-length rows.
// An empty input yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf            (numeric policy enabled).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		data = append(data, row...)
	}

	m, err := build(data, r, c, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	return m, nil
}

// ToMat returns m as a gonum *mat.Dense.
// gonum cannot represent zero-sized matrices, so those yield ErrEmptyMatrix.
func (m *Dense) ToMat() (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToMat, ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToMat, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrEmptyMatrix))
	}

	return mat.NewDense(m.r, m.c, m.Data()), nil
}

// FromMat copies any gonum mat.Matrix into a new Dense.
// Complexity: O(r*c) At calls.
func FromMat(a mat.Matrix, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromMat, ErrNilMatrix)
	}
	rows, cols := a.Dims()
	data := make([]float64, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			data[i*cols+j] = a.At(i, j)
		}
	}

	m, err := build(data, rows, cols, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opFromMat, err)
	}

	return m, nil
}
