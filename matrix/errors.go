// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All validated entry points MUST return these sentinels (optionally
// wrapped with an operation tag) and tests MUST check them via errors.Is.
// No entry point panics on a documented precondition violation.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Call sites wrap with matrixErrorf(op, ErrX), so callers still match with
// errors.Is(err, ErrX).
//
// ERROR PRIORITY (documented, enforced in tests):
// malformed/empty -> not square -> dimension mismatch / incompatible -> singular.

var (
	// ErrDimensionMismatch indicates two operands of an equal-arity operation
	// (Add/Sub/Hadamard, MatVec) differ in row count or in any row's length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrMalformedMatrix indicates a matrix whose rows are not all of equal
	// length, or which has no rows/columns, in a context requiring a shape.
	ErrMalformedMatrix = errors.New("matrix: malformed matrix")

	// ErrIncompatibleDimensions signals Mul with left.Cols != right.Rows.
	ErrIncompatibleDimensions = errors.New("matrix: incompatible dimensions for multiplication")

	// ErrNotSquare signals that a square matrix was required but the row
	// count differs from some row's length.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly 0.0.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")
)
