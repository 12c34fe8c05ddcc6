// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mlr/internal/config"
	"github.com/katalvlaran/mlr/matrix"
	"github.com/katalvlaran/mlr/vector"
)

// result is the value printed by every operand command. Exactly one of
// Matrix, Vector or Scalar is set; Reference is the gonum LU determinant
// printed by det --verify.
type result struct {
	Op        string        `yaml:"op"`
	Matrix    matrix.Matrix `yaml:"matrix,omitempty"`
	Vector    vector.Vector `yaml:"vector,omitempty"`
	Scalar    *float64      `yaml:"scalar,omitempty"`
	Reference *float64      `yaml:"reference,omitempty"`
}

func matrixResult(op string, m matrix.Matrix) result { return result{Op: op, Matrix: m} }

func vectorResult(op string, v vector.Vector) result { return result{Op: op, Vector: v} }

func scalarResult(op string, x float64) result { return result{Op: op, Scalar: &x} }

// render writes r to w in the configured output format.
func (o *rootOptions) render(w io.Writer, r result) error {
	if o.cfg.Output == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}

		return enc.Close()
	}

	var err error
	switch {
	case r.Scalar != nil:
		_, err = fmt.Fprintf(w, "%g\n", *r.Scalar)
		if err == nil && r.Reference != nil {
			_, err = fmt.Fprintf(w, "reference (LU): %g\n", *r.Reference)
		}
	case r.Vector != nil:
		_, err = fmt.Fprintln(w, []float64(r.Vector))
	default:
		_, err = io.WriteString(w, r.Matrix.String())
	}

	return err
}
