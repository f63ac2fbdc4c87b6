// Package vector provides Vector, a dense fixed-length vector of float64.
//
// What & Why:
//
//	A Vector is built once from a sized source and never mutated. Scale,
//	Clone and iteration return fresh values, so a Vector can be shared
//	between goroutines without locks.
//
// Index policy:
//
//	At(i) past the end returns 0 by default (lenient), which lets a vector
//	stand in for an infinite one padded with zeros. WithStrictIndex turns
//	such reads into ErrOutOfRange.
//
// Usage:
//
//	v := vector.New(3, 4)
//	v.Length()         // 5
//	v.At(12)           // 0, nil
//	vector.Dot(v, v)   // 25, nil
//
//	_, err := vector.FromSource(vector.Seq(it)) // ErrUnsizedSource
//
// Complexity:
//
//	Len and At run in O(1); Length, Dot, Scale, Equal and Clone in O(n).
package vector
