// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mlr/matrix"
)

// verifyTolerance is the relative agreement required by det --verify.
const verifyTolerance = 1e-9

func newMatrixCommands(o *rootOptions) []*cobra.Command {
	return []*cobra.Command{
		newBinaryMatrixCommand(o, "add", "Elementwise sum A + B", matrix.Add),
		newBinaryMatrixCommand(o, "sub", "Elementwise difference A - B", matrix.Sub),
		newBinaryMatrixCommand(o, "hadamard", "Elementwise product A ∘ B", matrix.Hadamard),
		newBinaryMatrixCommand(o, "mul", "Matrix product A × B", matrix.Mul),
		newScaleCommand(o),
		newTransposeCommand(o),
		newDetCommand(o),
		newSquareMatrixCommand(o, "cofactor", "Cofactor matrix of A", matrix.Cofactor),
		newSquareMatrixCommand(o, "adjugate", "Adjugate (transposed cofactor matrix) of A", matrix.Adjugate),
		newSquareMatrixCommand(o, "inverse", "Inverse of A by adjugate over determinant", matrix.Inverse),
		newMinorCommand(o),
		newMatVecCommand(o),
	}
}

func newBinaryMatrixCommand(o *rootOptions, use, short string, op func(a, b matrix.Matrix) (matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short + " (operands a, b)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := o.load(cmd)
			if err != nil {
				return err
			}
			a, b, err := doc.Matrices()
			if err != nil {
				return err
			}
			o.log.WithFields(logrus.Fields{"op": use, "a": shape(a), "b": shape(b)}).Debug("evaluating")

			m, err := op(a, b)
			if err != nil {
				return err
			}

			return o.render(cmd.OutOrStdout(), matrixResult(use, m))
		},
	}
}

func newScaleCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scale",
		Short: "Scalar multiple k·A (operands a, k)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := o.load(cmd)
			if err != nil {
				return err
			}
			a, err := doc.MatrixA()
			if err != nil {
				return err
			}
			k, err := doc.Scalar()
			if err != nil {
				return err
			}

			m, err := matrix.Scale(a, k)
			if err != nil {
				return err
			}

			return o.render(cmd.OutOrStdout(), matrixResult("scale", m))
		},
	}
}

func newTransposeCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "transpose",
		Short: "Transpose of A (operand a)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := o.load(cmd)
			if err != nil {
				return err
			}
			a, err := doc.MatrixA()
			if err != nil {
				return err
			}
			// Transpose trusts its input; documents do not.
			if err = matrix.ValidateRectangular(a); err != nil {
				return fmt.Errorf("transpose: %w", err)
			}

			return o.render(cmd.OutOrStdout(), matrixResult("transpose", matrix.Transpose(a)))
		},
	}
}

// newSquareMatrixCommand wraps a determinant-family operation behind the order limit.
func newSquareMatrixCommand(o *rootOptions, use, short string, op func(a matrix.Matrix) (matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short + " (operand a)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := o.load(cmd)
			if err != nil {
				return err
			}
			a, err := doc.MatrixA()
			if err != nil {
				return err
			}
			if err = o.checkOrder(a.Rows()); err != nil {
				return err
			}
			o.log.WithFields(logrus.Fields{"op": use, "a": shape(a)}).Debug("evaluating")

			m, err := op(a)
			if err != nil {
				return err
			}

			return o.render(cmd.OutOrStdout(), matrixResult(use, m))
		},
	}
}

func newDetCommand(o *rootOptions) *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "det",
		Short: "Determinant of A by cofactor expansion (operand a)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := o.load(cmd)
			if err != nil {
				return err
			}
			a, err := doc.MatrixA()
			if err != nil {
				return err
			}
			if err = o.checkOrder(a.Rows()); err != nil {
				return err
			}

			d, err := matrix.Determinant(a)
			if err != nil {
				return err
			}
			r := scalarResult("det", d)
			if verify {
				ref, err := luDeterminant(a)
				if err != nil {
					return err
				}
				r.Reference = &ref
				entry := o.log.WithFields(logrus.Fields{"cofactor": d, "lu": ref})
				if !agree(d, ref) {
					entry.Warn("determinants disagree")
					if err = o.render(cmd.OutOrStdout(), r); err != nil {
						return err
					}
					return ErrVerification
				}
				entry.Info("determinant verified against LU")
			}

			return o.render(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check against gonum's LU determinant")

	return cmd
}

func newMinorCommand(o *rootOptions) *cobra.Command {
	var row, col int
	cmd := &cobra.Command{
		Use:   "minor",
		Short: "A with one row and one column removed (operand a)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := o.load(cmd)
			if err != nil {
				return err
			}
			a, err := doc.MatrixA()
			if err != nil {
				return err
			}
			if err = o.checkOrder(a.Rows()); err != nil {
				return err
			}

			m, err := matrix.Minor(a, row, col)
			if err != nil {
				return err
			}

			return o.render(cmd.OutOrStdout(), matrixResult("minor", m))
		},
	}
	cmd.Flags().IntVar(&row, "row", 0, "row to remove")
	cmd.Flags().IntVar(&col, "col", 0, "column to remove")

	return cmd
}

func newMatVecCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "matvec",
		Short: "Matrix-vector product A·u (operands a, u)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := o.load(cmd)
			if err != nil {
				return err
			}
			a, err := doc.MatrixA()
			if err != nil {
				return err
			}
			u, err := doc.VectorU()
			if err != nil {
				return err
			}

			y, err := matrix.MatVec(a, u)
			if err != nil {
				return err
			}

			return o.render(cmd.OutOrStdout(), vectorResult("matvec", y))
		},
	}
}

// luDeterminant computes det(a) with gonum's LU factorization.
func luDeterminant(a matrix.Matrix) (float64, error) {
	g, err := matrix.ToGonum(a)
	if err != nil {
		return 0, err
	}

	return mat.Det(g), nil
}

// agree reports whether x and y match within verifyTolerance, relative to
// max(1, |y|).
func agree(x, y float64) bool {
	return math.Abs(x-y) <= verifyTolerance*math.Max(1, math.Abs(y))
}

func shape(m matrix.Matrix) string {
	r, c := m.Shape()
	return fmt.Sprintf("%dx%d", r, c)
}
