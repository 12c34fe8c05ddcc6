// Package mlr is a small dense matrix and vector algebra kernel in pure Go.
//
// What is in the box:
//
//	• Elementwise operations: Add, Sub, Hadamard, Scale with strict shape checks
//	• Products: Mul (row by column), MatVec, Transpose
//	• Determinant family by cofactor expansion: Determinant, Minor, Cofactor,
//	  Adjugate, Inverse
//	• Vector algebra: dot, cross, wedge, geometric, exterior and tensor products
//	• gonum interop for O(n³) LU cross-checks
//
// Everything is organized under two library packages and one command:
//
//	matrix/   - Matrix type, kernels, validators and sentinel errors
//	vector/   - Vector type and vector products
//	cmd/mlr/  - command-line front end over YAML, JSON or TOML operand files
//
// Every operation is a pure function over plain [][]float64 / []float64
// values: operands are never mutated and results never alias them. Shape
// violations come back as sentinel errors matched with errors.Is; nothing
// panics on bad input.
//
// Quick example:
//
//	a := matrix.Matrix{{4, 7}, {2, 6}}
//	inv, err := matrix.Inverse(a) // [[0.6, -0.7], [-0.2, 0.4]]
//
// The determinant family is O(n!) by construction. It is meant for small
// matrices where the cofactor structure itself is wanted; bound n before
// feeding it untrusted input.
//
//	go install github.com/katalvlaran/mlr/cmd/mlr@latest
package mlr
