// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels: Add, Sub, Hadamard (shape-validated) and Scale.
//   - A single private walker (ewCombine) owns the loop so the three binary
//     operations cannot drift apart in validation or traversal order.
//
// Determinism & Performance:
//   - Fixed i→j loop order; exactly one allocation per result row.
//   - Operands are never mutated.

package matrix

// ewCombine computes out[i][j] = f(a[i][j], b[i][j]) after ValidateSameShape.
// Ragged operands that match row by row produce a result with the same ragged
// layout.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: allocate each output row with the operand's row length and fill it.
//
// Errors:
//   - ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ewCombine(a, b Matrix, opTag string, f func(x, y float64) float64) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := make(Matrix, len(a))
	var i, j int
	for i = 0; i < len(a); i++ {
		row := make([]float64, len(a[i])) // row length taken from the validated operand
		for j = 0; j < len(row); j++ {
			row[j] = f(a[i][j], b[i][j])
		}
		out[i] = row
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B.
// Implementation:
//   - Stage 1: Validate equal row count and equal length per row.
//   - Stage 2: Fixed i→j loop into freshly allocated rows.
//
// Errors:
//   - ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	return ewCombine(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub computes the element-wise difference C = A - B.
// Same contract as Add.
func Sub(a, b Matrix) (Matrix, error) {
	return ewCombine(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the element-wise product (A ⊙ B).
// Same contract as Add. Hadamard ≠ matrix multiplication; use Mul for A×B.
func Hadamard(a, b Matrix) (Matrix, error) {
	return ewCombine(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Scale returns a new matrix whose cells are k * m[i][j].
// Implementation:
//   - Stage 1: ValidateRectangular(m); an empty or ragged matrix is rejected.
//   - Stage 2: single allocation via newFilled, fixed i→j fill.
//
// Errors:
//   - ErrMalformedMatrix (empty or ragged input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - k = 0 yields an explicit zero matrix with the same shape.
//   - NaN/Inf in k or m propagate per IEEE-754.
func Scale(m Matrix, k float64) (Matrix, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Shape()
	out := newFilled(rows, cols, 0)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i][j] = m[i][j] * k
		}
	}

	return out, nil
}
