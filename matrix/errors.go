// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every public operation returns these sentinels (possibly wrapped
// with call context) and tests check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/linalg/vector"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels
// are wrapped with fmt.Errorf("<tag>: %w", ErrX) at the detection site;
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> dimensions -> source size -> numeric policy.

var (
	// ErrInvalidDimensions indicates negative dimensions, or a rows*cols
	// product that overflows int.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrRowOutOfBounds indicates a row index outside [0, Rows()).
	ErrRowOutOfBounds = errors.New("matrix: row index out of bounds")

	// ErrColumnOutOfBounds indicates a column index outside [0, Cols()).
	ErrColumnOutOfBounds = errors.New("matrix: column index out of bounds")

	// ErrDimensionMismatch indicates ragged row input in FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyMatrix is returned by conversions whose target cannot hold a
	// zero-sized matrix (gonum mat.Dense).
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Sentinels shared with package vector, so either name matches via errors.Is.
var (
	// ErrUnsizedSource: the source cannot report its element count up front.
	ErrUnsizedSource = vector.ErrUnsizedSource

	// ErrInsufficientSource: the source's count does not equal rows*cols.
	ErrInsufficientSource = vector.ErrInsufficientSource

	// ErrNilVector: a nil *vector.Vector was passed to FromVector.
	ErrNilVector = vector.ErrNilVector
)
