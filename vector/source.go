// SPDX-License-Identifier: MIT

// Package vector - sized sources of real numbers.
//
// Purpose:
//   - Describe the only input the package consumes: a finite producer of float64.
//   - Distinguish producers that know their count up front (SizedSource) from
//     those that only discover it by exhaustion (Source).
//   - Allocate exactly once, before consumption, from the declared count.
//
// Complexity quicksheet:
//   - Collect: O(n) time; a single allocation for n <= collectChunk.

package vector

import (
	"fmt"
	"iter"
	"slices"
)

// Source is any finite producer of real numbers.
type Source interface {
	// Values yields the elements in order.
	Values() iter.Seq[float64]
}

// SizedSource is a Source that reports its element count before consumption.
// A negative Len means the count is unknown; such a source is treated as unsized.
type SizedSource interface {
	Source
	Len() int
}

// Slice adapts a []float64 to SizedSource.
type Slice []float64

// Len returns len(s).
func (s Slice) Len() int { return len(s) }

// Values yields the elements of s in order.
func (s Slice) Values() iter.Seq[float64] { return slices.Values(s) }

// seqSource is an unsized Source over an iterator.
type seqSource struct {
	seq iter.Seq[float64]
}

func (s seqSource) Values() iter.Seq[float64] { return s.seq }

// Seq adapts an iterator of unknown length to Source.
// Constructors reject it with ErrUnsizedSource.
func Seq(seq iter.Seq[float64]) Source {
	return seqSource{seq: seq}
}

// sizedSeq is an iterator paired with a declared element count.
type sizedSeq struct {
	n   int
	seq iter.Seq[float64]
}

func (s sizedSeq) Len() int                  { return s.n }
func (s sizedSeq) Values() iter.Seq[float64] { return s.seq }

// Sized pairs an iterator with its declared element count n.
// Collect verifies that seq yields exactly n values.
func Sized(n int, seq iter.Seq[float64]) SizedSource {
	return sizedSeq{n: n, seq: seq}
}

// collectChunk caps the first allocation in Collect; a declared Len beyond it
// grows through append as values actually arrive.
const collectChunk = 1 << 12

// Collect materializes src into a freshly allocated slice.
//
// Implementation:
//   - Stage 1: require a SizedSource with Len() >= 0; else ErrUnsizedSource.
//   - Stage 2: allocate min(Len(), collectChunk) slots, then consume at most
//     Len()+1 values.
//   - Stage 3: reject any count other than Len() with ErrInsufficientSource.
//
// Errors:
//   - ErrUnsizedSource, ErrInsufficientSource (wrapped with "Collect").
func Collect(src Source) ([]float64, error) {
	sized, ok := src.(SizedSource)
	if !ok {
		return nil, vectorErrorf(opCollect, ErrUnsizedSource)
	}
	n := sized.Len()
	if n < 0 {
		return nil, vectorErrorf(opCollect, ErrUnsizedSource)
	}

	out := make([]float64, 0, min(n, collectChunk))
	seq := sized.Values()
	if seq == nil {
		if n != 0 {
			return nil, vectorErrorf(opCollect, fmt.Errorf("declared %d, got 0: %w", n, ErrInsufficientSource))
		}
		return out, nil
	}

	overflow := false
	for x := range seq {
		if len(out) == n {
			overflow = true
			break
		}
		out = append(out, x)
	}
	if overflow {
		return nil, vectorErrorf(opCollect, fmt.Errorf("declared %d, got more: %w", n, ErrInsufficientSource))
	}
	if len(out) != n {
		return nil, vectorErrorf(opCollect, fmt.Errorf("declared %d, got %d: %w", n, len(out), ErrInsufficientSource))
	}

	return out, nil
}
