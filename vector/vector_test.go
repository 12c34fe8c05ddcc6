package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mlr/matrix"
	"github.com/katalvlaran/mlr/vector"
)

// VectorSuite exercises the vector algebra under regular and boundary inputs.
type VectorSuite struct {
	suite.Suite
}

func TestVectorSuite(t *testing.T) {
	suite.Run(t, new(VectorSuite))
}

// TestElementwise checks Add, Sub, Mul and Div on equal-length operands.
func (s *VectorSuite) TestElementwise() {
	u := vector.Vector{1, 2, 3}
	v := vector.Vector{4, 5, 6}

	sum, err := vector.Add(u, v)
	require.NoError(s.T(), err)
	require.Equal(s.T(), vector.Vector{5, 7, 9}, sum)

	diff, err := vector.Sub(u, v)
	require.NoError(s.T(), err)
	require.Equal(s.T(), vector.Vector{-3, -3, -3}, diff)

	prod, err := vector.Mul(u, v)
	require.NoError(s.T(), err)
	require.Equal(s.T(), vector.Vector{4, 10, 18}, prod)

	quot, err := vector.Div(vector.Vector{1, 9}, vector.Vector{4, 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), vector.Vector{0.25, 3}, quot)
}

// TestElementwiseMismatch ensures no partial result on unequal lengths.
func (s *VectorSuite) TestElementwiseMismatch() {
	u := vector.Vector{1, 2, 3}
	v := vector.Vector{1, 2}
	for _, op := range []func(a, b vector.Vector) (vector.Vector, error){
		vector.Add, vector.Sub, vector.Mul, vector.Div,
	} {
		got, err := op(u, v)
		require.ErrorIs(s.T(), err, vector.ErrDimensionMismatch)
		require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
		require.Nil(s.T(), got)
	}
}

// TestDivByZeroFollowsIEEE verifies x/0 is not an error.
func (s *VectorSuite) TestDivByZeroFollowsIEEE() {
	got, err := vector.Div(vector.Vector{1, -1, 0}, vector.Vector{0, 0, 0})
	require.NoError(s.T(), err)
	require.True(s.T(), math.IsInf(got[0], 1))
	require.True(s.T(), math.IsInf(got[1], -1))
	require.True(s.T(), math.IsNaN(got[2]))
}

// TestScale covers the regular and the empty case.
func (s *VectorSuite) TestScale() {
	require.Equal(s.T(), vector.Vector{2, -4, 0}, vector.Scale(vector.Vector{1, -2, 0}, 2))
	require.Empty(s.T(), vector.Scale(nil, 3))
}

// TestDot checks the inner product and its length precondition.
func (s *VectorSuite) TestDot() {
	d, err := vector.Dot(vector.Vector{1, 2, 3}, vector.Vector{4, -5, 6})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12.0, d)

	d, err = vector.Dot(nil, vector.Vector{})
	require.NoError(s.T(), err)
	require.Zero(s.T(), d)

	_, err = vector.Dot(vector.Vector{1}, vector.Vector{1, 2})
	require.ErrorIs(s.T(), err, vector.ErrDimensionMismatch)
}

// TestCross checks the basis identity and the arity rule.
func (s *VectorSuite) TestCross() {
	got, err := vector.Cross(vector.Vector{1, 0, 0}, vector.Vector{0, 1, 0})
	require.NoError(s.T(), err)
	require.Equal(s.T(), vector.Vector{0, 0, 1}, got)

	got, err = vector.Cross(vector.Vector{1, 2, 3}, vector.Vector{4, 5, 6})
	require.NoError(s.T(), err)
	require.Equal(s.T(), vector.Vector{-3, 6, -3}, got)

	_, err = vector.Cross(vector.Vector{1, 0}, vector.Vector{0, 1})
	require.ErrorIs(s.T(), err, vector.ErrArityViolation)
	require.ErrorIs(s.T(), err, vector.ErrDimensionMismatch, "arity violations are dimension mismatches")

	_, err = vector.Cross(vector.Vector{1, 0, 0}, vector.Vector{0, 1})
	require.ErrorIs(s.T(), err, vector.ErrArityViolation)
}

// TestCrossIsOrthogonal verifies u·(u×v) = v·(u×v) = 0 on integer input.
func (s *VectorSuite) TestCrossIsOrthogonal() {
	u := vector.Vector{2, -3, 7}
	v := vector.Vector{-1, 4, 5}
	w, err := vector.Cross(u, v)
	require.NoError(s.T(), err)

	du, err := vector.Dot(u, w)
	require.NoError(s.T(), err)
	dv, err := vector.Dot(v, w)
	require.NoError(s.T(), err)
	require.Zero(s.T(), du)
	require.Zero(s.T(), dv)
}

// TestWedge checks the value, antisymmetry and the error order.
func (s *VectorSuite) TestWedge() {
	w, err := vector.Wedge(vector.Vector{1, 2}, vector.Vector{3, 4})
	require.NoError(s.T(), err)
	require.Equal(s.T(), -2.0, w)

	back, err := vector.Wedge(vector.Vector{3, 4}, vector.Vector{1, 2})
	require.NoError(s.T(), err)
	require.Equal(s.T(), -w, back)

	// Unequal lengths win over arity.
	_, err = vector.Wedge(vector.Vector{1, 2}, vector.Vector{1, 2, 3})
	require.ErrorIs(s.T(), err, vector.ErrDimensionMismatch)
	require.NotErrorIs(s.T(), err, vector.ErrArityViolation)

	_, err = vector.Wedge(vector.Vector{1, 2, 3}, vector.Vector{4, 5, 6})
	require.ErrorIs(s.T(), err, vector.ErrArityViolation)
}

// TestGeometric checks Dot + Wedge for 2-d input.
func (s *VectorSuite) TestGeometric() {
	g, err := vector.Geometric(vector.Vector{1, 2}, vector.Vector{3, 4})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 11.0+(-2.0), g)

	_, err = vector.Geometric(vector.Vector{1}, vector.Vector{1, 2})
	require.ErrorIs(s.T(), err, vector.ErrDimensionMismatch)

	_, err = vector.Geometric(vector.Vector{1, 2, 3}, vector.Vector{1, 2, 3})
	require.ErrorIs(s.T(), err, vector.ErrArityViolation)
}

// TestExterior checks the pair layout (0,1), (0,2), (1,2) for n=3.
func (s *VectorSuite) TestExterior() {
	got, err := vector.Exterior(vector.Vector{1, 2, 3}, vector.Vector{4, 5, 6})
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.Matrix{
		{1 * 5, -2 * 4, 0}, // (0,1)
		{1 * 6, 0, -3 * 4}, // (0,2)
		{0, 2 * 6, -3 * 5}, // (1,2)
	}, got)

	one, err := vector.Exterior(vector.Vector{7}, vector.Vector{8})
	require.NoError(s.T(), err)
	require.Empty(s.T(), one)

	_, err = vector.Exterior(vector.Vector{1, 2}, vector.Vector{1})
	require.ErrorIs(s.T(), err, vector.ErrDimensionMismatch)
}

// TestExteriorRowCount verifies n(n-1)/2 rows of length n.
func (s *VectorSuite) TestExteriorRowCount() {
	for n := 2; n <= 6; n++ {
		u := make(vector.Vector, n)
		v := make(vector.Vector, n)
		for i := range u {
			u[i], v[i] = float64(i+1), float64(n-i)
		}
		got, err := vector.Exterior(u, v)
		require.NoError(s.T(), err)
		require.Len(s.T(), got, n*(n-1)/2)
		for _, row := range got {
			require.Len(s.T(), row, n)
		}
	}
}

// TestTensor checks the outer product shape and values.
func (s *VectorSuite) TestTensor() {
	got, err := vector.Tensor(vector.Vector{1, 2}, vector.Vector{3, 4, 5})
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.Matrix{{3, 4, 5}, {6, 8, 10}}, got)

	_, err = vector.Tensor(nil, vector.Vector{1})
	require.ErrorIs(s.T(), err, vector.ErrEmptyVector)
	require.ErrorIs(s.T(), err, vector.ErrDimensionMismatch)

	_, err = vector.Tensor(vector.Vector{1}, vector.Vector{})
	require.ErrorIs(s.T(), err, vector.ErrEmptyVector)
}

// TestTensorRankOne verifies every 2×2 minor of u⊗v vanishes.
func (s *VectorSuite) TestTensorRankOne() {
	t, err := vector.Tensor(vector.Vector{2, -1, 3}, vector.Vector{1, 4, -2})
	require.NoError(s.T(), err)
	for _, skip := range []int{0, 1, 2} {
		m, err := matrix.Minor(t, skip, skip)
		require.NoError(s.T(), err)
		d, err := matrix.Determinant(m)
		require.NoError(s.T(), err)
		require.Zero(s.T(), d)
	}
}

// TestNormAndCompare covers Norm, Equal and AllClose.
func (s *VectorSuite) TestNormAndCompare() {
	require.Equal(s.T(), 5.0, vector.Norm(vector.Vector{3, 4}))
	require.Zero(s.T(), vector.Norm(nil))

	require.True(s.T(), vector.Equal(vector.Vector{1, 2}, vector.Vector{1, 2}))
	require.False(s.T(), vector.Equal(vector.Vector{1, 2}, vector.Vector{1}))
	require.False(s.T(), vector.Equal(vector.Vector{math.NaN()}, vector.Vector{math.NaN()}))

	ok, err := vector.AllClose(vector.Vector{1, 2}, vector.Vector{1 + 1e-12, 2}, 1e-9)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	ok, err = vector.AllClose(vector.Vector{1}, vector.Vector{math.NaN()}, 1)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)

	_, err = vector.AllClose(vector.Vector{1}, vector.Vector{1, 2}, 1)
	require.ErrorIs(s.T(), err, vector.ErrDimensionMismatch)
}

// TestNoMutation ensures operands are left untouched.
func (s *VectorSuite) TestNoMutation() {
	u := vector.Vector{1, 2, 3}
	v := vector.Vector{4, 5, 6}
	uc, vc := u.Clone(), v.Clone()

	_, _ = vector.Add(u, v)
	_, _ = vector.Cross(u, v)
	_, _ = vector.Exterior(u, v)
	_, _ = vector.Tensor(u, v)
	_ = vector.Scale(u, 10)

	require.Equal(s.T(), uc, u)
	require.Equal(s.T(), vc, v)
	require.Equal(s.T(), 3, u.Len())
}
