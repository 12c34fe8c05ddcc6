// Package matrix is a small dense-matrix algebra kernel over float64 rows.
//
// The matrix package provides:
//
//   - Element-wise operations (Add, Sub, Hadamard, Scale) with strict shape checks.
//   - The textbook row-by-column product (Mul) and the matrix-vector product (MatVec).
//   - Transpose as a pure structural reshape.
//   - The determinant family computed by recursive cofactor (Laplace) expansion:
//     Determinant, Minor, Cofactor, Adjugate and Inverse.
//   - Conversions to and from gonum (ToGonum, FromGonum).
//
// A Matrix is a plain [][]float64. Every operation is a pure function: inputs
// are never mutated and results use fresh storage. Precondition violations are
// reported as sentinel errors (ErrDimensionMismatch, ErrMalformedMatrix,
// ErrIncompatibleDimensions, ErrNotSquare, ErrSingular, ErrOutOfRange); match
// them with errors.Is.
//
// The determinant family is O(n!) by construction and is meant for small
// matrices. Bound n before calling with untrusted input.
//
//	a := matrix.Matrix{{4, 7}, {2, 6}}
//	det, _ := matrix.Determinant(a) // 10
//	inv, _ := matrix.Inverse(a)     // [[0.6, -0.7], [-0.2, 0.4]]
package matrix
