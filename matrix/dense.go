// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee len(data) == rows*cols from construction on; Dense has no mutators.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Return copies (vectors, slices) so callers never alias the buffer.
//
// Complexity quicksheet:
//   - FromShaped/FromVector: O(r*c); At: O(1); Row: O(c); Col: O(r); Clone/Data: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/linalg/vector"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxRow       = "Row"
	ctxCol       = "Col"
	opFromVector = "FromVector"
	opFromShaped = "FromShaped"
	opFromRows   = "FromRows"
	opFromMat    = "FromMat"
	opToMat      = "ToMat"
	opTranspose  = "Transpose"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, preserving errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dense is an immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - vectorOpts configure the vectors returned by Row and Col.
type Dense struct {
	r, c       int
	data       []float64
	vectorOpts []vector.Option
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix             = (*Dense)(nil)
	_ vector.SizedSource = (*Dense)(nil)
	_ fmt.Stringer       = (*Dense)(nil)
)

// FromVector builds a single-column matrix: Rows() == v.Len(), Cols() == 1.
// An empty vector yields a 0×1 matrix.
//
// Errors:
//   - ErrNilVector (v is nil).
//   - ErrNaNInf    (numeric policy enabled and v holds a non-finite value).
func FromVector(v *vector.Vector, opts ...Option) (*Dense, error) {
	if v == nil {
		return nil, matrixErrorf(opFromVector, ErrNilVector)
	}

	m, err := fromSource(v, v.Len(), 1, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opFromVector, err)
	}

	return m, nil
}

// FromShaped builds a rows×cols matrix, filling rows first from src.
// src must report its count before consumption, and the count must equal
// rows*cols exactly; too few and too many are both rejected. Passing a
// *vector.Vector or another *Dense reshapes it.
//
// Implementation:
//   - Stage 1: ValidateDims, then ValidateSourceLen (nothing consumed yet).
//   - Stage 2: vector.Collect allocates rows*cols slots and drains src.
//   - Stage 3: apply the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions  (negative or overflowing shape).
//   - ErrUnsizedSource      (src cannot report its count).
//   - ErrInsufficientSource (count != rows*cols, declared or actual).
//   - ErrNaNInf             (numeric policy enabled).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromShaped(src vector.Source, rows, cols int, opts ...Option) (*Dense, error) {
	m, err := fromSource(src, rows, cols, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opFromShaped, err)
	}

	return m, nil
}

// FromSlice is FromShaped over a copy of xs.
func FromSlice(xs []float64, rows, cols int, opts ...Option) (*Dense, error) {
	return FromShaped(vector.Slice(xs), rows, cols, opts...)
}

// fromSource validates shape and size, then collects src into a fresh buffer.
func fromSource(src vector.Source, rows, cols int, o Options) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, err
	}
	if err := ValidateSourceLen(src, rows, cols); err != nil {
		return nil, err
	}
	data, err := vector.Collect(src)
	if err != nil {
		return nil, err
	}

	return build(data, rows, cols, o)
}

// build takes ownership of data (len == rows*cols) and applies the options.
func build(data []float64, rows, cols int, o Options) (*Dense, error) {
	if o.validateNaNInf {
		if err := ValidateFinite(data); err != nil {
			return nil, err
		}
	}

	return &Dense{r: rows, c: cols, data: data, vectorOpts: o.vectorOpts}, nil
}

// derive wraps data with shape rows×cols and m's vector options.
func (m *Dense) derive(data []float64, rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: data, vectorOpts: m.vectorOpts}
}

// Rows returns the number of rows in the matrix. A nil matrix has 0 rows.
// Complexity: O(1).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of columns in the matrix. A nil matrix has 0 columns.
// Complexity: O(1).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Dims returns (Rows(), Cols()).
func (m *Dense) Dims() (rows, cols int) {
	return m.Rows(), m.Cols()
}

// Len returns rows*cols, the number of stored values.
func (m *Dense) Len() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// At retrieves the element at (row, col).
//
// Errors:
//   - ErrNilMatrix, ErrRowOutOfBounds, ErrColumnOutOfBounds.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	if err := ValidateRowIndex(m, row); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	if err := ValidateColIndex(m, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a new vector holding row i: flat indices [i*cols, i*cols+cols).
//
// Errors:
//   - ErrNilMatrix      (m is nil).
//   - ErrRowOutOfBounds (i < 0 or i >= Rows()).
//   - vector.ErrNaNInf  (WithVectorOptions(vector.WithValidateNaNInf(true)) and the row is non-finite).
//
// Complexity: O(cols).
func (m *Dense) Row(i int) (*vector.Vector, error) {
	if m == nil {
		return nil, matrixErrorf(ctxRow, ErrNilMatrix)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}
	base := i * m.c

	v, err := vector.FromSlice(m.data[base:base+m.c], m.vectorOpts...)
	if err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}

	return v, nil
}

// Col returns a new vector holding column j: every element whose flat index
// modulo cols equals j, in row order.
//
// Errors:
//   - ErrNilMatrix         (m is nil).
//   - ErrColumnOutOfBounds (j < 0 or j >= Cols()).
//   - vector.ErrNaNInf     (WithVectorOptions(vector.WithValidateNaNInf(true)) and the column is non-finite).
//
// Complexity: O(rows).
func (m *Dense) Col(j int) (*vector.Vector, error) {
	if m == nil {
		return nil, matrixErrorf(ctxCol, ErrNilMatrix)
	}
	if err := ValidateColIndex(m, j); err != nil {
		return nil, matrixErrorf(ctxCol, err)
	}
	col := make([]float64, m.r)
	for i := range col {
		col[i] = m.data[i*m.c+j]
	}

	v, err := vector.FromSlice(col, m.vectorOpts...)
	if err != nil {
		return nil, matrixErrorf(ctxCol, err)
	}

	return v, nil
}

// Values yields the elements in row-major order.
func (m *Dense) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if m == nil {
			return
		}
		for _, x := range m.data {
			if !yield(x) {
				return
			}
		}
	}
}

// Data returns a copy of the row-major buffer.
func (m *Dense) Data() []float64 {
	out := make([]float64, m.Len())
	if m != nil {
		copy(out, m.data)
	}

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	return m.derive(m.Data(), m.r, m.c)
}

// String formats one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
