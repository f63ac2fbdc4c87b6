// SPDX-License-Identifier: MIT

// Package vector - interop with gonum's mat and blas64 types.
// Every conversion copies: a Vector never shares its buffer.

package vector

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// RawVector returns a unit-stride blas64.Vector over a copy of v.
func (v *Vector) RawVector() blas64.Vector {
	return blas64.Vector{N: v.Len(), Inc: 1, Data: v.Slice()}
}

// ToVecDense returns v as a gonum column vector.
// gonum cannot represent an empty VecDense, so Len()==0 yields ErrEmptyVector.
func (v *Vector) ToVecDense() (*mat.VecDense, error) {
	if v == nil {
		return nil, vectorErrorf(opToVecDense, ErrNilVector)
	}
	if len(v.data) == 0 {
		return nil, vectorErrorf(opToVecDense, ErrEmptyVector)
	}

	return mat.NewVecDense(len(v.data), v.Slice()), nil
}

// FromMatVector copies any gonum mat.Vector into a new Vector.
func FromMatVector(mv mat.Vector, opts ...Option) (*Vector, error) {
	if mv == nil {
		return nil, vectorErrorf(opFromMat, ErrNilVector)
	}
	n := mv.Len()
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = mv.AtVec(i)
	}

	v, err := build(data, gatherOptions(opts...))
	if err != nil {
		return nil, vectorErrorf(opFromMat, err)
	}

	return v, nil
}
