// SPDX-License-Identifier: MIT
// Package vector - products.
//
// Purpose:
//   - Dot, Cross, Wedge and Geometric return scalars or vectors.
//   - Exterior and Tensor return a matrix.Matrix.
//
// Validation order:
//   - Equal length is checked before any arity requirement, so Wedge on
//     operands of lengths 2 and 3 reports ErrDimensionMismatch, not
//     ErrArityViolation.

package vector

import "github.com/katalvlaran/mlr/matrix"

// Dot returns Σ u_i·v_i. Two empty vectors have dot product 0.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func Dot(u, v Vector) (float64, error) {
	if err := validateSameLen(u, v); err != nil {
		return 0, vectorErrorf(opDot, err)
	}

	sum := matrix.ZeroSum
	for i := range u {
		sum += u[i] * v[i]
	}

	return sum, nil
}

// Cross returns the 3-d cross product u × v.
//
// Errors: ErrArityViolation unless both operands have length 3.
func Cross(u, v Vector) (Vector, error) {
	if err := validateArity(u, v, 3); err != nil {
		return nil, vectorErrorf(opCross, err)
	}

	return Vector{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}, nil
}

// Wedge returns the 2-d wedge (signed area) u0·v1 − u1·v0.
//
// Errors: ErrDimensionMismatch (lengths differ), then ErrArityViolation
// (length is not 2).
func Wedge(u, v Vector) (float64, error) {
	if err := validateSameLen(u, v); err != nil {
		return 0, vectorErrorf(opWedge, err)
	}
	if err := validateArity(u, v, 2); err != nil {
		return 0, vectorErrorf(opWedge, err)
	}

	return u[0]*v[1] - u[1]*v[0], nil
}

// Geometric returns the scalar part plus the bivector magnitude of the 2-d
// geometric product: Dot(u, v) + Wedge(u, v).
//
// Errors: as Dot, then as Wedge.
func Geometric(u, v Vector) (float64, error) {
	dot, err := Dot(u, v)
	if err != nil {
		return 0, vectorErrorf(opGeometric, err)
	}
	wedge, err := Wedge(u, v)
	if err != nil {
		return 0, vectorErrorf(opGeometric, err)
	}

	return dot + wedge, nil
}

// Exterior returns the components of u ∧ v laid out as a matrix.
// There is one row per index pair i<j in lexicographic order
// ((0,1), (0,2), ..., (1,2), ...). Each row has length n with
// row[i] = u_i·v_j, row[j] = −u_j·v_i and zeros elsewhere.
// For n < 2 there are no pairs and the result is an empty matrix.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(n³) space for n(n-1)/2 rows of length n.
func Exterior(u, v Vector) (matrix.Matrix, error) {
	if err := validateSameLen(u, v); err != nil {
		return nil, vectorErrorf(opExterior, err)
	}

	n := len(u)
	out := make(matrix.Matrix, 0, n*(n-1)/2+1)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			row := make([]float64, n)
			row[i] = u[i] * v[j]
			row[j] = -u[j] * v[i]
			out = append(out, row)
		}
	}

	return out, nil
}

// Tensor returns the outer product u ⊗ v: a len(u)×len(v) matrix with
// cell (i, j) = u_i·v_j.
//
// Errors: ErrEmptyVector when either operand is empty.
// Complexity: O(len(u)·len(v)).
func Tensor(u, v Vector) (matrix.Matrix, error) {
	if len(u) == 0 || len(v) == 0 {
		return nil, vectorErrorf(opTensor, ErrEmptyVector)
	}

	out := make(matrix.Matrix, len(u))
	for i := range u {
		row := make([]float64, len(v))
		for j := range v {
			row[j] = u[i] * v[j]
		}
		out[i] = row
	}

	return out, nil
}
