// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.

package vector

import (
	"fmt"

	"github.com/katalvlaran/mlr/matrix"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths. It is
	// matrix.ErrDimensionMismatch so both packages report one error kind.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrArityViolation indicates a vector length for which the operation is
	// not defined (e.g. Cross on 2-d input).
	ErrArityViolation = fmt.Errorf("vector: arity violation: %w", ErrDimensionMismatch)

	// ErrEmptyVector indicates an empty operand where at least one component
	// is required.
	ErrEmptyVector = fmt.Errorf("vector: empty vector: %w", ErrDimensionMismatch)
)

// Operation tags for error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opDot       = "Dot"
	opCross     = "Cross"
	opWedge     = "Wedge"
	opGeometric = "Geometric"
	opExterior  = "Exterior"
	opTensor    = "Tensor"
	opAllClose  = "AllClose"
)

// vectorErrorf wraps err with an operation tag, preserving it via %w.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSameLen ensures u and v have equal length.
func validateSameLen(u, v Vector) error {
	if len(u) != len(v) {
		return fmt.Errorf("len %d vs %d: %w", len(u), len(v), ErrDimensionMismatch)
	}

	return nil
}

// validateArity ensures both operands have exactly n components.
func validateArity(u, v Vector, n int) error {
	if len(u) != n || len(v) != n {
		return fmt.Errorf("want %d-d operands, got %d and %d: %w", n, len(u), len(v), ErrArityViolation)
	}

	return nil
}
