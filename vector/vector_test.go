// Package vector_test contains unit tests for Vector construction,
// indexing policies and iteration.
package vector_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLength_PythagoreanTriple checks the exact 3-4-5 norm.
func TestLength_PythagoreanTriple(t *testing.T) {
	v := vector.New(3, 4)
	assert.Equal(t, 5.0, v.Length())
}

// TestLength_General covers empty and multi-element vectors.
func TestLength_General(t *testing.T) {
	assert.Equal(t, 0.0, vector.New().Length(), "empty vector has zero length")
	assert.Equal(t, 0.0, (*vector.Vector)(nil).Length(), "nil vector has zero length")
	assert.InDelta(t, 3.0, vector.New(1, 2, 2).Length(), 1e-12)
	assert.InDelta(t, math.Sqrt(30), vector.New(1, -2, 3, -4).Length(), 1e-12)
}

// TestLen verifies Len for populated, empty and nil vectors.
func TestLen(t *testing.T) {
	assert.Equal(t, 3, vector.New(1, 2, 3).Len())
	assert.Equal(t, 0, vector.New().Len())
	assert.Equal(t, 0, (*vector.Vector)(nil).Len())
}

// TestAt_LenientPadding verifies reads past the end return zero by default.
func TestAt_LenientPadding(t *testing.T) {
	v := vector.New(3, 4)
	require.False(t, v.Strict())

	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, x)

	x, err = v.At(12)
	require.NoError(t, err, "lenient policy never fails past the end")
	assert.Equal(t, 0.0, x)

	_, err = v.At(-1)
	assert.ErrorIs(t, err, vector.ErrOutOfRange, "negative index fails under both policies")
}

// TestAt_StrictPolicy verifies WithStrictIndex rejects reads past the end.
func TestAt_StrictPolicy(t *testing.T) {
	v, err := vector.FromSlice([]float64{3, 4}, vector.WithStrictIndex())
	require.NoError(t, err)
	require.True(t, v.Strict())

	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)

	_, err = v.At(2)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-3)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestAt_NilVector ensures At on nil reports ErrNilVector.
func TestAt_NilVector(t *testing.T) {
	var v *vector.Vector
	_, err := v.At(0)
	assert.ErrorIs(t, err, vector.ErrNilVector)
}

// TestFromSlice_CopiesInput ensures the caller's slice is not aliased.
func TestFromSlice_CopiesInput(t *testing.T) {
	xs := []float64{1, 2, 3}
	v, err := vector.FromSlice(xs)
	require.NoError(t, err)

	xs[0] = 100
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x, "mutating the input must not leak into the vector")

	w := vector.New(xs...)
	xs[1] = 200
	x, _ = w.At(1)
	assert.Equal(t, 2.0, x, "New copies its arguments as well")
}

// TestFromSlice_NaNInfPolicy verifies finite-value validation is opt-in.
func TestFromSlice_NaNInfPolicy(t *testing.T) {
	bad := []float64{1, math.Inf(-1)}

	_, err := vector.FromSlice(bad)
	require.NoError(t, err, "validation is off by default")

	_, err = vector.FromSlice(bad, vector.WithValidateNaNInf(true))
	assert.ErrorIs(t, err, vector.ErrNaNInf)

	_, err = vector.FromSource(vector.Slice{math.NaN()}, vector.WithValidateNaNInf(true))
	assert.ErrorIs(t, err, vector.ErrNaNInf)
}

// TestFromSource covers every sized and unsized source adapter.
func TestFromSource(t *testing.T) {
	tests := []struct {
		name    string
		src     vector.Source
		want    []float64
		wantErr error
	}{
		{"slice", vector.Slice{1, 2, 3}, []float64{1, 2, 3}, nil},
		{"empty slice", vector.Slice{}, []float64{}, nil},
		{"sized seq", vector.Sized(2, slices.Values([]float64{5, 6})), []float64{5, 6}, nil},
		{"vector", vector.New(7, 8), []float64{7, 8}, nil},
		{"unsized seq", vector.Seq(slices.Values([]float64{1})), nil, vector.ErrUnsizedSource},
		{"negative size", vector.Sized(-1, slices.Values([]float64{1})), nil, vector.ErrUnsizedSource},
		{"nil source", nil, nil, vector.ErrUnsizedSource},
		{"declares too many", vector.Sized(3, slices.Values([]float64{1, 2})), nil, vector.ErrInsufficientSource},
		{"declares too few", vector.Sized(1, slices.Values([]float64{1, 2})), nil, vector.ErrInsufficientSource},
		{"nil seq with size", vector.Sized(2, nil), nil, vector.ErrInsufficientSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := vector.FromSource(tc.src)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, v, "no partial vector on failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v.Slice())
		})
	}
}

// TestCollect_StopsAfterOverflow ensures an over-long source is not drained.
func TestCollect_StopsAfterOverflow(t *testing.T) {
	pulled := 0
	endless := func(yield func(float64) bool) {
		for {
			pulled++
			if !yield(1) {
				return
			}
		}
	}

	_, err := vector.Collect(vector.Sized(4, endless))
	require.ErrorIs(t, err, vector.ErrInsufficientSource)
	assert.Equal(t, 5, pulled, "collection stops one value past the declared size")
}

// TestIteration verifies Values and All yield storage order and are repeatable.
func TestIteration(t *testing.T) {
	v := vector.New(1.5, -2, 3)

	assert.Equal(t, []float64{1.5, -2, 3}, slices.Collect(v.Values()))
	assert.Equal(t, []float64{1.5, -2, 3}, slices.Collect(v.Values()), "second pass sees the same values")

	var idx []int
	for i, x := range v.All() {
		idx = append(idx, i)
		if x < 0 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, idx, "early break stops iteration")

	assert.Empty(t, slices.Collect((*vector.Vector)(nil).Values()))
}

// TestClone verifies independence and policy preservation.
func TestClone(t *testing.T) {
	v, err := vector.FromSlice([]float64{1, 2}, vector.WithStrictIndex())
	require.NoError(t, err)

	c := v.Clone()
	require.True(t, vector.Equal(v, c))
	assert.True(t, c.Strict(), "clone keeps the index policy")
	assert.NotSame(t, v, c)

	s := c.Slice()
	s[0] = 42
	x, _ := c.At(0)
	assert.Equal(t, 1.0, x, "Slice returns a copy")

	assert.Nil(t, (*vector.Vector)(nil).Clone())
}

// TestWithPadding verifies a custom pad value and the NaN guard.
func TestWithPadding(t *testing.T) {
	v, err := vector.FromSlice([]float64{1}, vector.WithPadding(-1))
	require.NoError(t, err)

	x, err := v.At(5)
	require.NoError(t, err)
	assert.Equal(t, -1.0, x)

	assert.PanicsWithValue(t, "vector: WithPadding: pad value must not be NaN", func() {
		vector.WithPadding(math.NaN())
	})
}

// TestOptionsOrder verifies that later options override earlier ones.
func TestOptionsOrder(t *testing.T) {
	v, err := vector.FromSlice([]float64{1}, vector.WithStrictIndex(), vector.WithLenientIndex(), nil)
	require.NoError(t, err)
	assert.False(t, v.Strict())
}

// TestString checks the bracketed format.
func TestString(t *testing.T) {
	assert.Equal(t, "[3, 4.5, -1]", vector.New(3, 4.5, -1).String())
	assert.Equal(t, "[]", vector.New().String())
}

// TestFromSource_HugeDeclaredSize ensures an absurd declared count is reported
// as a size mismatch instead of failing the allocation.
func TestFromSource_HugeDeclaredSize(t *testing.T) {
	src := vector.Sized(math.MaxInt, slices.Values([]float64{1}))

	var err error
	require.NotPanics(t, func() {
		_, err = vector.FromSource(src)
	})
	assert.ErrorIs(t, err, vector.ErrInsufficientSource)

	require.NotPanics(t, func() {
		_, err = vector.Collect(src)
	})
	assert.ErrorIs(t, err, vector.ErrInsufficientSource)
}

// TestFromSource_LargeSizedSource grows past the initial allocation.
func TestFromSource_LargeSizedSource(t *testing.T) {
	const n = 10000
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	v, err := vector.FromSource(vector.Sized(n, slices.Values(xs)))
	require.NoError(t, err)
	assert.Equal(t, xs, v.Slice())
}
