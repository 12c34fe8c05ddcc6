// SPDX-License-Identifier: MIT
// Package matrix - determinant family via recursive cofactor (Laplace) expansion.
//
// Purpose:
//   - determinant: expansion along row 0 over freshly built minors.
//   - cofactor:    matrix of signed minor determinants.
//   - Adjugate:    transpose of the cofactor matrix.
//   - Inverse:     adjugate divided by the determinant.
//
// Design:
//   - Unexported kernels (minor, determinant, cofactor) trust their caller to
//     have validated squareness; only the exported entry points validate.
//   - Every recursion level allocates its own minor; no buffer is shared
//     between calls, so each kernel is usable in isolation.
//
// Limits:
//   - Time is O(n!) by construction and recursion depth is n. Beyond n≈10 the
//     cost grows quickly; callers that accept user input should bound n before
//     calling. An LU-based determinant (e.g. gonum mat.Det via ToGonum) is the
//     O(n³) alternative when the cofactor structure itself is not needed.
//   - Singularity is exact: det == 0.0. Near-singular matrices with a tiny
//     non-zero determinant are inverted and may produce huge cells.

package matrix

// ZeroDeterminant is the exact value Inverse treats as singular.
const ZeroDeterminant = 0.0

// emptyDeterminant is det of the 0×0 matrix (empty product). It is reached
// only through cofactor on a 1×1 input.
const emptyDeterminant = 1.0

// cofactorSign returns +1 for even k and -1 for odd k.
func cofactorSign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// minor returns a fresh copy of a with row `skipRow` and column `skipCol`
// removed. a must be square n×n; the result is (n-1)×(n-1).
// Complexity: Time O(n²), Space O(n²).
func minor(a Matrix, skipRow, skipCol int) Matrix {
	n := len(a)
	out := newFilled(n-1, n-1, 0)
	var i, j, ri, cj int
	for i = 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		cj = 0
		for j = 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			out[ri][cj] = a[i][j]
			cj++
		}
		ri++
	}

	return out
}

// determinant is the recursive Laplace-expansion kernel.
// Base cases: n=0 → 1, n=1 → a00, n=2 → a00*a11 - a01*a10.
// General case: Σ_i sign(i) * a[0][i] * determinant(minor(a, 0, i)).
// a must be square; not re-validated on recursive calls.
func determinant(a Matrix) float64 {
	n := len(a)
	switch n {
	case 0:
		return emptyDeterminant
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	det := ZeroSum
	for i := 0; i < n; i++ {
		// Each column of row 0 contributes its signed minor; no memoization.
		det += cofactorSign(i) * a[0][i] * determinant(minor(a, 0, i))
	}

	return det
}

// cofactor builds C[i][j] = sign(i+j) * determinant(minor(a, i, j)).
// a must be square.
// Complexity: n² minors, each O((n-1)!).
func cofactor(a Matrix) Matrix {
	n := len(a)
	out := newFilled(n, n, 0)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out[i][j] = cofactorSign(i+j) * determinant(minor(a, i, j))
		}
	}

	return out
}

// Determinant returns det(a) by cofactor expansion along the first row.
// Implementation:
//   - Stage 1: ValidateSquare(a).
//   - Stage 2: recursive kernel over fresh minors.
//
// Behavior highlights:
//   - Total over square input: a singular matrix yields exactly 0 by the
//     arithmetic, never an error.
//
// Errors:
//   - ErrMalformedMatrix (empty), ErrNotSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) live per recursion level, depth n.
//
// AI-Hints:
//   - For large n use ToGonum + mat.Det (LU, O(n³)); results agree within
//     floating tolerance on well-conditioned input.
func Determinant(a Matrix) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(a), nil
}

// Minor returns a with row `row` and column `col` deleted.
//
// Errors: ErrMalformedMatrix (empty), ErrNotSquare, ErrOutOfRange.
// Complexity: Time O(n²), Space O(n²).
func Minor(a Matrix, row, col int) (Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := len(a)
	if row < 0 || row >= n || col < 0 || col >= n {
		return nil, matrixErrorf(opMinor, ErrOutOfRange)
	}

	return minor(a, row, col), nil
}

// Cofactor returns the matrix of signed minor determinants of a square a.
// For a 1×1 input the single cofactor is 1.
//
// Errors: ErrMalformedMatrix (empty), ErrNotSquare.
// Complexity: Time O(n² · (n-1)!), Space O(n²).
func Cofactor(a Matrix) (Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return cofactor(a), nil
}

// Adjugate returns adj(a) = cofactor(a)ᵀ.
// Implementation:
//   - Stage 1: ValidateSquare(a); NotSquare when the row count differs from
//     any row's length.
//   - Stage 2: Transpose(cofactor(a)).
//
// Errors:
//   - ErrMalformedMatrix (empty), ErrNotSquare.
//
// Notes:
//   - adj(a) · a == det(a) · I holds for every square a, singular or not.
func Adjugate(a Matrix) (Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return Transpose(cofactor(a)), nil
}

// Inverse computes a⁻¹ = adj(a) / det(a).
// Implementation:
//   - Stage 1: ValidateSquare(a).
//   - Stage 2: d = determinant(a); d == 0.0 exactly → ErrSingular.
//   - Stage 3: adj = Adjugate(a); divide every cell by d.
//
// Inputs:
//   - a: square matrix (n×n).
//
// Returns:
//   - Matrix: fresh n×n inverse.
//
// Errors:
//   - ErrMalformedMatrix (empty), ErrNotSquare, ErrSingular.
//
// Complexity:
//   - Time O(n! + n²·(n-1)!), dominated by the cofactor matrix.
//
// Notes:
//   - The zero test is exact equality, not a tolerance. A matrix whose
//     determinant rounds to a tiny non-zero value is inverted.
//
// AI-Hints:
//   - Check AllClose(Mul(a, inv), Identity(n)) when the input may be ill-conditioned.
func Inverse(a Matrix) (Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	d := determinant(a)
	if d == ZeroDeterminant {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	adj, err := Adjugate(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var i, j int
	for i = 0; i < len(adj); i++ {
		for j = 0; j < len(adj[i]); j++ {
			adj[i][j] /= d // adj is freshly allocated; dividing in place is safe
		}
	}

	return adj, nil
}
