// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating rectangular/square/same-shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Row-length scans are O(r); no cell values are read.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. Rectangular → Compatible).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRectangular ensures m has at least one row, a non-empty first row,
// and every row of identical length.
//
// Errors: ErrMalformedMatrix.
// Complexity: O(r).
// AI-Hints: Use as the first step of any operation that needs a well-defined shape.
func ValidateRectangular(m Matrix) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return validatorErrorf("ValidateRectangular: empty", ErrMalformedMatrix)
	}
	cols := len(m[0])
	for i := 1; i < len(m); i++ {
		if len(m[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrMalformedMatrix)
		}
	}

	return nil
}

// ValidateSquare ensures m is non-empty and every row's length equals the
// row count. A ragged matrix therefore reports ErrNotSquare, which is the
// documented failure of Adjugate/Inverse for such input.
//
// Errors: ErrMalformedMatrix (empty), ErrNotSquare.
// Complexity: O(r).
func ValidateSquare(m Matrix) error {
	n := len(m)
	if n == 0 {
		return validatorErrorf("ValidateSquare: empty", ErrMalformedMatrix)
	}
	for i := 0; i < n; i++ {
		if len(m[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d has %d cols, want %d", i, len(m[i]), n), ErrNotSquare)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal row counts and, row by row,
// equal row lengths. Ragged operands are accepted when they match pairwise.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(r).
// AI-Hints: Use for Add/Sub/Hadamard.
func ValidateSameShape(a, b Matrix) error {
	if len(a) != len(b) {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return validatorErrorf(fmt.Sprintf("ValidateSameShape: row %d", i), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateMulCompatible – Composite: Rectangular(a) → Rectangular(b) → a.Cols == b.Rows.
//
// Errors: ErrMalformedMatrix, ErrIncompatibleDimensions.
// Complexity: O(r_a + r_b).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateRectangular(a); err != nil {
		return validatorErrorf("ValidateMulCompatible: left", err)
	}
	if err := ValidateRectangular(b); err != nil {
		return validatorErrorf("ValidateMulCompatible: right", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrIncompatibleDimensions)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: got %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}
