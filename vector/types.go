// SPDX-License-Identifier: MIT

package vector

import "math"

// Vector is an ordered sequence of float64 components. Length is its dimension.
type Vector []float64

// Len returns the number of components.
func (u Vector) Len() int { return len(u) }

// Clone returns an independent copy; nil stays nil.
func (u Vector) Clone() Vector {
	if u == nil {
		return nil
	}

	return append(Vector(nil), u...)
}

// Equal reports exact component-wise equality. NaN never equals NaN.
func Equal(u, v Vector) bool {
	if len(u) != len(v) {
		return false
	}
	for i := range u {
		if u[i] != v[i] {
			return false
		}
	}

	return true
}

// AllClose reports |u_i - v_i| <= tol for every component.
// Equal infinities compare close; NaN compares close to nothing.
//
// Errors: ErrDimensionMismatch.
func AllClose(u, v Vector, tol float64) (bool, error) {
	if err := validateSameLen(u, v); err != nil {
		return false, vectorErrorf(opAllClose, err)
	}
	tol = math.Abs(tol)
	for i := range u {
		if u[i] == v[i] {
			continue
		}
		if d := math.Abs(u[i] - v[i]); math.IsNaN(d) || d > tol {
			return false, nil
		}
	}

	return true, nil
}

// Norm returns the Euclidean length of u; 0 for an empty vector.
// Complexity: O(n).
func Norm(u Vector) float64 {
	var sum float64
	for _, x := range u {
		sum += x * x
	}

	return math.Sqrt(sum)
}
