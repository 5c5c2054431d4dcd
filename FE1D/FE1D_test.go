package FE1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestJacobiGQ(t *testing.T) {
	{ // Gauss points are symmetric and the weights integrate a constant over [-1,1]
		X, W := JacobiGQ(0, 0, 4)
		assert.Equal(t, 5, X.Len())
		assert.True(t, near(floats.Sum(W.Data()), 2))
		for i := 0; i < 5; i++ {
			assert.True(t, near(X.AtVec(i), -X.AtVec(4-i), 1.e-12))
		}
		assert.True(t, near(X.AtVec(2), 0, 1.e-12))
	}
	{ // Lobatto nodes include both end points
		R := JacobiGL(0, 0, 3)
		assert.Equal(t, -1., R.AtVec(0))
		assert.Equal(t, 1., R.AtVec(3))
		assert.True(t, near(R.AtVec(1), -1/math.Sqrt(5), 1.e-12))
		assert.True(t, near(R.AtVec(2), 1/math.Sqrt(5), 1.e-12))
	}
}

func TestLegendreP(t *testing.T) {
	x := []float64{-1, -0.5, 0, 0.3, 1}
	for n := 0; n < 8; n++ {
		p := LegendreP(x, n)
		assert.True(t, near(p[4], 1, 1.e-12), "P_%d(1) = %v", n, p[4])
		assert.True(t, near(p[0], math.Pow(-1, float64(n)), 1.e-12))
	}
	p2 := LegendreP(x, 2)
	for i, xx := range x {
		assert.True(t, near(p2[i], 0.5*(3*xx*xx-1), 1.e-12))
	}
}

func TestLegendreCoeffMatrix(t *testing.T) {
	for _, L := range []int{2, 4, 8, 31, 40} {
		full := LegendreCoeffMatrix(L, -1, 1)
		left := LegendreCoeffMatrix(L, 0, 1)
		right := LegendreCoeffMatrix(L, -1, 0)
		assert.True(t, mat.EqualApprox(full, full.T(), 1.e-13))
		assert.True(t, mat.EqualApprox(left, left.T(), 1.e-13))
		assert.True(t, mat.EqualApprox(right, right.T(), 1.e-13))
		for i := 0; i < L; i++ {
			assert.True(t, near(full.At(i, i), 2./float64(2*i+1), 1.e-11), "L=%d, i=%d", L, i)
			for j := 0; j < L; j++ {
				if i != j {
					assert.InDelta(t, 0, full.At(i, j), 1.e-11)
				}
				// Interval additivity
				assert.InDelta(t, full.At(i, j), left.At(i, j)+right.At(i, j), 1.e-12)
			}
		}
	}
	{ // Half range values
		left := LegendreCoeffMatrix(2, 0, 1)
		right := LegendreCoeffMatrix(2, -1, 0)
		assert.True(t, near(left.At(0, 0), 1, 1.e-13))
		assert.True(t, near(left.At(0, 1), 0.5, 1.e-13))
		assert.True(t, near(left.At(1, 1), 1./3., 1.e-13))
		assert.True(t, near(right.At(0, 1), -0.5, 1.e-13))
		assert.True(t, near(right.At(1, 1), 1./3., 1.e-13))
	}
	{ // Too few points degrades the half range integrals, the floor protects small LMax
		L := 6
		x, w := GaussLegendre(2, 0, 1)
		var low float64
		p := LegendreP(x, L-1)
		for m := range x {
			low += w[m] * p[m] * p[m]
		}
		exact := LegendreCoeffMatrix(L, 0, 1).At(L-1, L-1)
		assert.True(t, near(exact, 1./float64(2*L-1), 1.e-12))
		assert.False(t, near(low, exact, 1.e-6))
	}
}

func TestLagrangeElement(t *testing.T) {
	{
		_, err := NewLagrangeElement(0)
		assert.Error(t, err)
	}
	for degree := 1; degree < 6; degree++ {
		el, err := NewLagrangeElement(degree)
		require.NoError(t, err)
		assert.Equal(t, degree+1, el.Dim())
		assert.Equal(t, degree-1, el.NumInterior())
		assert.Equal(t, 0., el.Xi[0])
		assert.Equal(t, 1., el.Xi[1])
		for i := 3; i < el.Dim(); i++ {
			assert.True(t, el.Xi[i] > el.Xi[i-1])
		}
		// Nodal property: phi_j(xi_i) = delta_ij
		phi, _ := el.Tabulate(el.Xi)
		for i := 0; i < el.Dim(); i++ {
			for j := 0; j < el.Dim(); j++ {
				var delta float64
				if i == j {
					delta = 1
				}
				assert.InDelta(t, delta, phi.At(i, j), 1.e-12)
			}
		}
		// Partition of unity
		points, _ := el.Quadrature(2 * degree)
		phi, dphi := el.Tabulate(points)
		for q := range points {
			assert.InDelta(t, 1, floats.Sum(phi.M.RawRowView(q)), 1.e-12)
			assert.InDelta(t, 0, floats.Sum(dphi.M.RawRowView(q)), 1.e-11)
		}
	}
}

func TestQuadrature(t *testing.T) {
	el, err := NewLagrangeElement(3)
	require.NoError(t, err)
	for order := 0; order < 12; order++ {
		points, weights := el.Quadrature(order)
		assert.Equal(t, order/2+1, len(points))
		for k := 0; k <= order; k++ {
			var sum float64
			for q, x := range points {
				sum += weights[q] * math.Pow(x, float64(k))
			}
			assert.True(t, near(sum, 1./float64(k+1), 1.e-12), "order %d, k %d", order, k)
		}
	}
}

func TestLocalOperators(t *testing.T) {
	{ // Linear element
		el, err := NewLagrangeElement(1)
		require.NoError(t, err)
		lo, err := el.LocalOperators()
		require.NoError(t, err)
		assert.True(t, near(lo.Mass.At(0, 0), 1./3.))
		assert.True(t, near(lo.Mass.At(1, 1), 1./3.))
		assert.True(t, near(lo.Mass.At(0, 1), 1./6.))
		assert.True(t, near(lo.Streaming.At(0, 0), -0.5))
		assert.True(t, near(lo.Streaming.At(0, 1), -0.5))
		assert.True(t, near(lo.Streaming.At(1, 0), 0.5))
		assert.True(t, near(lo.Streaming.At(1, 1), 0.5))
		assert.Panics(t, func() { lo.Mass.Set(0, 0, 1) })
	}
	{ // Quadratic element, interior node last
		el, err := NewLagrangeElement(2)
		require.NoError(t, err)
		lo, err := el.LocalOperators()
		require.NoError(t, err)
		assert.True(t, near(lo.Mass.At(0, 0), 2./15.))
		assert.True(t, near(lo.Mass.At(1, 1), 2./15.))
		assert.True(t, near(lo.Mass.At(2, 2), 8./15.))
		assert.True(t, near(lo.Mass.At(0, 1), -1./30.))
		assert.True(t, near(lo.Mass.At(0, 2), 1./15.))
		assert.True(t, mat.EqualApprox(lo.Mass, lo.Mass.T(), 1.e-14))
	}
	for degree := 1; degree < 6; degree++ {
		el, err := NewLagrangeElement(degree)
		require.NoError(t, err)
		lo, err := el.LocalOperators()
		require.NoError(t, err)
		var total float64
		for _, v := range lo.Mass.Data() {
			total += v
		}
		// Sum of all mass entries is the reference length
		assert.True(t, near(total, 1, 1.e-12))
		// S + S^T is the boundary term: -1 at vertex0, +1 at vertex1
		for i := 0; i < el.Dim(); i++ {
			for j := 0; j < el.Dim(); j++ {
				var bnd float64
				switch {
				case i == 0 && j == 0:
					bnd = -1
				case i == 1 && j == 1:
					bnd = 1
				}
				assert.InDelta(t, bnd, lo.Streaming.At(i, j)+lo.Streaming.At(j, i), 1.e-11)
			}
		}
	}
	{
		el, _ := NewLagrangeElement(2)
		phi, dphi := el.Tabulate([]float64{0.1, 0.9})
		_, err := NewLocalOperators(phi, dphi, []float64{1})
		assert.Error(t, err)
	}
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol = 1.e-08
	)
	if len(tolI) != 0 {
		tol = tolI[0]
	}
	if math.Abs(a-b) <= tol*math.Max(1, math.Abs(a)) {
		l = true
	}
	return
}
