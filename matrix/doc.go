// Package matrix provides Dense, an immutable row-major matrix of float64.
//
// What & Why:
//
//	A Dense stores rows×cols values in one flat buffer (offset i*cols + j).
//	It is built once from a sized source and never mutated: Row and Col
//	return independent vectors, Transpose and Scale return new matrices.
//	Every index is bounds-checked and reported through sentinel errors.
//
// Construction:
//
//	m, err := matrix.FromShaped(vector.Slice{1, 2, 3, 4, 5, 6}, 2, 3)
//	col, err := matrix.FromVector(vector.New(1, 2, 3)) // 3×1
//
//	matrix.FromSlice([]float64{1, 2, 3}, 2, 2) // ErrInsufficientSource
//
// Transpose is a true permutation: Transpose(m)[j][i] == m[i][j], so
// m.Transpose().Transpose() equals m.
//
// Complexity:
//
//	Rows, Cols and At run in O(1); Row in O(cols); Col in O(rows);
//	Transpose, Scale, Clone and construction in O(rows*cols).
package matrix
