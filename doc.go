// Package linalg is a minimal dense linear-algebra value library.
//
// 🚀 What is inside?
//
//	Two immutable value types over contiguous float64 storage:
//		• vector.Vector — fixed-length vector: Length, Dot, Scale, Equal, zero-padded At
//		• matrix.Dense  — row-major matrix: Row, Col, At, true Transpose, Scale
//
// ✨ Guarantees
//
//   - Bounds-checked access through sentinel errors, never panics on user input
//   - Construction only from sized sources: the count is known before allocation
//   - No mutation after construction: every transform returns a new value
//   - gonum interop (mat.VecDense, mat.Dense, blas64.Vector) by copy
//
// Layout:
//
//	vector/   — Vector, sized sources (Slice, Sized, Seq), Dot/Scale/Equal
//	matrix/   — Dense, FromShaped/FromVector/FromRows, Transpose, gonum conversions
//	examples/ — runnable demo
//
// Not included: sparse storage, decompositions (LU/QR/SVD), broadcasting,
// SIMD or parallel kernels, complex numbers.
//
//	go get github.com/katalvlaran/linalg
package linalg
