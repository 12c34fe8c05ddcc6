// SPDX-License-Identifier: MIT
// Package vector - elementwise arithmetic and scaling.
//
// All binary operations share one walker (combine) so validation and
// traversal order stay identical across Add, Sub, Mul and Div.

package vector

// combine computes out[i] = f(u[i], v[i]) after checking equal lengths.
func combine(u, v Vector, opTag string, f func(x, y float64) float64) (Vector, error) {
	if err := validateSameLen(u, v); err != nil {
		return nil, vectorErrorf(opTag, err)
	}

	out := make(Vector, len(u))
	for i := range u {
		out[i] = f(u[i], v[i])
	}

	return out, nil
}

// Add returns u + v componentwise.
// Errors: ErrDimensionMismatch.
func Add(u, v Vector) (Vector, error) {
	return combine(u, v, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub returns u - v componentwise.
// Errors: ErrDimensionMismatch.
func Sub(u, v Vector) (Vector, error) {
	return combine(u, v, opSub, func(x, y float64) float64 { return x - y })
}

// Mul returns the componentwise (Hadamard) product of u and v.
// Errors: ErrDimensionMismatch.
func Mul(u, v Vector) (Vector, error) {
	return combine(u, v, opMul, func(x, y float64) float64 { return x * y })
}

// Div returns u / v componentwise. Division by zero follows IEEE-754:
// x/0 is ±Inf for x != 0 and NaN for 0/0. It is not an error.
//
// Errors: ErrDimensionMismatch.
func Div(u, v Vector) (Vector, error) {
	return combine(u, v, opDiv, func(x, y float64) float64 { return x / y })
}

// Scale returns k·u. It never fails; an empty u yields an empty result.
func Scale(u Vector, k float64) Vector {
	out := make(Vector, len(u))
	for i, x := range u {
		out[i] = x * k
	}

	return out
}
