// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for construction and comparison.
//   - Each alias delegates to the canonical kernel; no logic is duplicated.
//
// Determinism & Policy:
//   - Facades never change loop orders or the numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "math"

// ---------- Constructors ----------

// New returns a deep copy of rows after checking it is rectangular and non-empty.
// Use it to turn caller-owned data into an operand that cannot alias the source.
//
// Errors: ErrMalformedMatrix.
// Complexity: O(r*c).
func New(rows [][]float64) (Matrix, error) {
	m := Matrix(rows)
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m.Clone(), nil
}

// Zeros returns a zero-initialized rows×cols matrix.
//
// Errors: ErrMalformedMatrix when rows<=0 or cols<=0.
// Complexity: O(r*c) zeroing by runtime.
func Zeros(rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opZeros, ErrMalformedMatrix)
	}

	return newFilled(rows, cols, 0), nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
//
// AI-Hints: Neutral element for Mul; the reference for Inverse round-trips.
func Identity(n int) (Matrix, error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrMalformedMatrix)
	}
	id := newFilled(n, n, 0)
	for i := 0; i < n; i++ {
		id[i][i] = 1.0
	}

	return id, nil
}

// ---------- Aliases (1:1 with kernels) ----------

// Sum is an alias for Add.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// Det is an alias for Determinant.
func Det(a Matrix) (float64, error) { return Determinant(a) }

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if every cell satisfies the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must have the same shape (ragged layouts compared row by row).
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Errors: ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
//
// AI-Hints:
//   - AllClose(got, want, 1e-9, 1e-9) suits Inverse round trips on well-conditioned input.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var i, j int
	var x, y float64
	for i = 0; i < len(a); i++ {
		for j = 0; j < len(a[i]); j++ {
			x, y = a[i][j], b[i][j]
			if x == y { // covers equal infinities
				continue
			}
			if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
				return false, nil
			}
			if math.Abs(x-y) > atol+rtol*math.Abs(y) {
				return false, nil
			}
		}
	}

	return true, nil
}
