// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for constructors and kernels.
//   - Keep all data finite so the numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// testShapes are the (rows, cols) pairs exercised by property tests.
var testShapes = [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 3}, {3, 2}, {4, 3}, {3, 4}, {6, 6}}

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// mustDense builds an r×c *Dense from xs or fails the test.
func mustDense(tb testing.TB, xs []float64, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromSlice(xs, r, c)
	if err != nil {
		tb.Fatalf("FromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// seqDense builds an r×c matrix holding 1, 2, ..., r*c in row-major order.
func seqDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	xs := make([]float64, r*c)
	for k := range xs {
		xs[k] = float64(k + 1)
	}

	return mustDense(tb, xs, r, c)
}

// randDense builds an r×c matrix with values in [-1, 1) from a fixed seed.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, r*c)
	for k := range xs {
		xs[k] = rng.Float64()*2 - 1
	}

	return mustDense(tb, xs, r, c)
}

// twelve is the 4×3 fixture used across tests.
var twelve = []float64{
	1, 2, 3,
	4, 5, 6,
	7, 8, 9,
	10, 11, 12,
}
