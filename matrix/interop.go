// SPDX-License-Identifier: MIT
// Package matrix - conversion to and from gonum dense matrices.
//
// Purpose:
//   - Hand a validated Matrix to gonum/mat when an O(n³) LU routine is wanted
//     (mat.Det, mat.Dense.Inverse) and bring results back as a Matrix.
//   - Both directions copy; no storage is shared with gonum.

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies a rectangular, non-empty m into a new *mat.Dense.
//
// Errors: ErrMalformedMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	rows, cols := m.Shape()
	flat := make([]float64, 0, rows*cols)
	for _, row := range m {
		flat = append(flat, row...) // gonum expects row-major order
	}

	return mat.NewDense(rows, cols, flat), nil
}

// FromGonum copies any gonum matrix into a fresh Matrix.
// A zero-sized gonum matrix yields an empty Matrix.
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix) Matrix {
	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return Matrix{}
	}
	out := newFilled(rows, cols, 0)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i][j] = g.At(i, j)
		}
	}

	return out
}
