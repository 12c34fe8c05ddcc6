// SPDX-License-Identifier: MIT

// Package matrix: the Matrix value type and its read-only accessors.
// Matrix is a plain row sequence so callers can build operands with composite
// literals. Raw construction permits ragged rows; every validated entry point
// rejects them (see validators.go).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an ordered sequence of rows of float64 values.
//   - m[i][j] is the cell at row i, column j.
//   - Rectangularity is NOT enforced by the type; use ValidateRectangular.
//   - Operations never mutate their operands and always return fresh storage.
type Matrix [][]float64

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix(nil)

// Rows returns the number of rows. O(1).
func (m Matrix) Rows() int { return len(m) }

// Cols returns the length of the first row, or 0 for an empty matrix.
// For ragged matrices this is NOT a shape guarantee. O(1).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Shape packs Rows() and Cols() into a single call. O(1).
func (m Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsSquare reports whether m is non-empty and every row has length Rows().
// Complexity: O(r).
func (m Matrix) IsSquare() bool { return ValidateSquare(m) == nil }

// Clone returns a deep copy; ragged rows are copied as-is.
// Complexity: Time O(r*c), Space O(r*c).
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...) // independent backing array per row
	}

	return out
}

// Equal reports exact cell-wise equality including row lengths.
// NaN never equals NaN, matching IEEE-754 comparison.
// Complexity: O(r*c).
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	var i, j int
	for i = 0; i < len(m); i++ {
		if len(m[i]) != len(o[i]) {
			return false
		}
		for j = 0; j < len(m[i]); j++ {
			if m[i][j] != o[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line with %g formatting.
// Intended for logs and the CLI text output; not for hot paths.
// Complexity: O(r*c).
func (m Matrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < len(m); i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j = 0; j < len(m[i]); j++ {
			b.WriteString(fmt.Sprintf("%g", m[i][j]))
			if j+1 < len(m[i]) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// newFilled allocates an r×c matrix with one contiguous backing buffer.
// Rows are sub-slices with capped capacity so appends never bleed across rows.
// Callers guarantee r,c >= 0.
func newFilled(r, c int, v float64) Matrix {
	buf := make([]float64, r*c)
	if v != 0 {
		for idx := range buf {
			buf[idx] = v
		}
	}
	out := make(Matrix, r)
	for i := 0; i < r; i++ {
		out[i] = buf[i*c : (i+1)*c : (i+1)*c]
	}

	return out
}
