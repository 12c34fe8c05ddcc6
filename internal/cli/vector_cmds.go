// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mlr/internal/document"
	"github.com/katalvlaran/mlr/matrix"
	"github.com/katalvlaran/mlr/vector"
)

// vecOp evaluates one vector operation on a loaded document.
type vecOp func(doc *document.Document) (result, error)

func newVecCommand(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vec",
		Short: "Vector algebra on operands u, v (and k for scale)",
	}

	binaryVec := func(name string, f func(u, v vector.Vector) (vector.Vector, error)) vecOp {
		return func(doc *document.Document) (result, error) {
			u, v, err := doc.Vectors()
			if err != nil {
				return result{}, err
			}
			w, err := f(u, v)
			if err != nil {
				return result{}, err
			}
			return vectorResult(name, w), nil
		}
	}
	scalarVec := func(name string, f func(u, v vector.Vector) (float64, error)) vecOp {
		return func(doc *document.Document) (result, error) {
			u, v, err := doc.Vectors()
			if err != nil {
				return result{}, err
			}
			x, err := f(u, v)
			if err != nil {
				return result{}, err
			}
			return scalarResult(name, x), nil
		}
	}
	matrixVec := func(name string, f func(u, v vector.Vector) (matrix.Matrix, error)) vecOp {
		return func(doc *document.Document) (result, error) {
			u, v, err := doc.Vectors()
			if err != nil {
				return result{}, err
			}
			m, err := f(u, v)
			if err != nil {
				return result{}, err
			}
			return matrixResult(name, m), nil
		}
	}

	cmd.AddCommand(
		newVecSubcommand(o, "add", "Componentwise sum u + v", binaryVec("add", vector.Add)),
		newVecSubcommand(o, "sub", "Componentwise difference u - v", binaryVec("sub", vector.Sub)),
		newVecSubcommand(o, "mul", "Componentwise product u ∘ v", binaryVec("mul", vector.Mul)),
		newVecSubcommand(o, "div", "Componentwise quotient u / v (IEEE-754)", binaryVec("div", vector.Div)),
		newVecSubcommand(o, "cross", "Cross product u × v (3-d)", binaryVec("cross", vector.Cross)),
		newVecSubcommand(o, "dot", "Dot product u · v", scalarVec("dot", vector.Dot)),
		newVecSubcommand(o, "wedge", "Wedge product u ∧ v (2-d)", scalarVec("wedge", vector.Wedge)),
		newVecSubcommand(o, "geometric", "Geometric product u·v + u∧v (2-d)", scalarVec("geometric", vector.Geometric)),
		newVecSubcommand(o, "exterior", "Exterior product components, one row per index pair", matrixVec("exterior", vector.Exterior)),
		newVecSubcommand(o, "tensor", "Outer product u ⊗ v", matrixVec("tensor", vector.Tensor)),
		newVecSubcommand(o, "scale", "Scalar multiple k·u (operands u, k)", func(doc *document.Document) (result, error) {
			u, err := doc.VectorU()
			if err != nil {
				return result{}, err
			}
			k, err := doc.Scalar()
			if err != nil {
				return result{}, err
			}
			return vectorResult("scale", vector.Scale(u, k)), nil
		}),
		newVecSubcommand(o, "norm", "Euclidean norm of u (operand u)", func(doc *document.Document) (result, error) {
			u, err := doc.VectorU()
			if err != nil {
				return result{}, err
			}
			return scalarResult("norm", vector.Norm(u)), nil
		}),
	)

	return cmd
}

func newVecSubcommand(o *rootOptions, use, short string, op vecOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := o.load(cmd)
			if err != nil {
				return err
			}
			o.log.WithFields(logrus.Fields{"op": "vec " + use, "u": len(doc.U), "v": len(doc.V)}).Debug("evaluating")

			r, err := op(doc)
			if err != nil {
				return err
			}

			return o.render(cmd.OutOrStdout(), r)
		},
	}
}
