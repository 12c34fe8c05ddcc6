// Package vector implements algebra over float64 vectors: elementwise
// arithmetic, scaling, and the dot, cross, wedge, geometric, exterior and
// tensor products.
//
// Every function is pure. Inputs are never mutated and results use fresh
// storage. Length preconditions are reported through sentinel errors:
//
//   - ErrDimensionMismatch: binary operands of different lengths. It is the
//     same value as matrix.ErrDimensionMismatch.
//   - ErrArityViolation: the operation is defined for one length only
//     (Cross needs 3, Wedge and Geometric need 2).
//   - ErrEmptyVector: Tensor with an empty operand.
//
// ErrArityViolation and ErrEmptyVector both wrap ErrDimensionMismatch, so a
// single errors.Is(err, ErrDimensionMismatch) catches the whole family.
//
// Products that yield a matrix (Exterior, Tensor) return a matrix.Matrix.
//
//	u := vector.Vector{1, 0, 0}
//	v := vector.Vector{0, 1, 0}
//	w, _ := vector.Cross(u, v) // [0 0 1]
package vector
