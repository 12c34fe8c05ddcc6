// SPDX-License-Identifier: MIT
// Package matrix provides the structural linear-algebra kernels: matrix
// multiplication, transpose and matrix-vector product. All validated kernels
// perform strict fail-fast checks and return sentinel errors wrapped with an
// operation tag.
//
// Purpose:
//   - Define operation tags and shared constants for error reporting.
//   - Keep the product loops in their textbook order for reproducible results.

package matrix

import "fmt"

// ZeroSum is the initial value of every inner-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opHadamard    = "Hadamard"
	opScale       = "Scale"
	opMul         = "Mul"
	opMatVec      = "MatVec"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opAllClose    = "AllClose"
	opToGonum     = "ToGonum"
	opIdentity    = "Identity"
	opZeros       = "Zeros"
	opNew         = "New"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error; only call when err != nil.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (both rectangular, A.Cols == B.Rows).
//   - Stage 2: plain i→j→k triple loop; C[i][j] = Σ_k A[i][k]*B[k][j].
//
// Behavior highlights:
//   - The summation order over k is fixed, so results are bit-for-bit reproducible.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: fresh (r × c) result.
//
// Errors:
//   - ErrMalformedMatrix (empty/ragged operand), ErrIncompatibleDimensions.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out := newFilled(rows, cols, 0)
	var (
		i, j, k int
		acc     float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = ZeroSum
			for k = 0; k < inner; k++ {
				acc += a[i][k] * b[k][j] // row i of A against column j of B
			}
			out[i][j] = acc
		}
	}

	return out, nil
}

// Transpose returns mᵀ. It never fails.
//
// Contract:
//   - m should be rectangular. This is a documented precondition, not a
//     runtime check: for ragged input the result has shape len(m[0]) × len(m),
//     cells absent from shorter rows read as 0 and cells past len(m[0]) are dropped.
//   - Empty input yields an empty (non-nil) result.
//
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Call ValidateRectangular first if the operand comes from untrusted input.
func Transpose(m Matrix) Matrix {
	rows, cols := m.Shape()
	if rows == 0 {
		return Matrix{}
	}

	out := newFilled(cols, rows, 0)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols && j < len(m[i]); j++ {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// MatVec computes y = m · x for a column vector x.
//
// Contract: m rectangular and non-empty; len(x) == m.Cols().
// Errors: ErrMalformedMatrix, ErrDimensionMismatch.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.Rows())
	var i, j int
	var acc float64
	for i = 0; i < len(m); i++ {
		acc = ZeroSum
		for j = 0; j < len(x); j++ {
			acc += m[i][j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
