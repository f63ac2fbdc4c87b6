// SPDX-License-Identifier: MIT

// Package vector: sentinel error set.
// Every public operation returns one of these sentinels, possibly wrapped with
// call context via fmt.Errorf("<tag>: %w", ErrX). Callers match with errors.Is.
// No operation panics on user-triggered conditions; option constructors panic
// on nonsensical values (programmer error).

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsizedSource is returned when a Source cannot report its element
	// count before being consumed. Nothing is allocated in that case.
	ErrUnsizedSource = errors.New("vector: source does not report its size")

	// ErrInsufficientSource indicates that a sized source yielded a different
	// number of values than it declared, or that a declared count does not
	// match a requested shape.
	ErrInsufficientSource = errors.New("vector: source size does not match")

	// ErrMismatchedSizes indicates two vectors of different Len were combined.
	ErrMismatchedSizes = errors.New("vector: mismatched vector sizes")

	// ErrOutOfRange is returned by At for negative indices, and for indices
	// past the end under the strict index policy.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = errors.New("vector: NaN or Inf encountered")

	// ErrNilVector indicates that a nil *Vector was used as an operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrEmptyVector is returned by conversions whose target cannot hold
	// zero elements (gonum VecDense).
	ErrEmptyVector = errors.New("vector: empty vector")
)

// Context tags used in wrapped errors.
const (
	opCollect    = "Collect"
	opFromSource = "FromSource"
	opFromSlice  = "FromSlice"
	opFromMat    = "FromMatVector"
	opAt         = "At"
	opDot        = "Dot"
	opToVecDense = "ToVecDense"
)

// vectorErrorf wraps err with an operation tag, preserving errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
