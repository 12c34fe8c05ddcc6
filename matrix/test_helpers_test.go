// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded RNG) for kernels.
//   • Keep all data finite and well-formed unless a test targets malformed input.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlr/matrix"
)

// tol is the per-cell tolerance used by round-trip properties.
const tol = 1e-9

// RandIntMatrix BUILDS an r×c matrix of integers in [-9, 9].
// Integer cells keep every determinant of small order exactly representable,
// so "exactly 0.0" properties can be asserted without tolerance.
func RandIntMatrix(rng *rand.Rand, r, c int) matrix.Matrix {
	m := make(matrix.Matrix, r)
	for i := range m {
		m[i] = make([]float64, c)
		for j := range m[i] {
			m[i][j] = float64(rng.Intn(19) - 9)
		}
	}

	return m
}

// RandDominant BUILDS an n×n strictly diagonally dominant matrix.
// Such matrices are non-singular and well-conditioned, which keeps inverse
// round-trips inside the 1e-9 tolerance.
func RandDominant(rng *rand.Rand, n int) matrix.Matrix {
	m := make(matrix.Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		var off float64
		for j := range m[i] {
			if i == j {
				continue
			}
			m[i][j] = rng.Float64()*2 - 1 // off-diagonal in [-1, 1)
			if m[i][j] < 0 {
				off -= m[i][j]
			} else {
				off += m[i][j]
			}
		}
		m[i][i] = off + 1 + rng.Float64() // strictly larger than the row's off-diagonal mass
	}

	return m
}

// RequireClose FAILS the test unless want and got have the same shape and
// every cell agrees within tol (absolute and relative).
func RequireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, tol, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant:\n%vgot:\n%v", tol, want, got)
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t *testing.T, n int) matrix.Matrix {
	t.Helper()
	id, err := matrix.Identity(n)
	require.NoError(t, err)

	return id
}
