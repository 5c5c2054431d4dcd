package FE1D

import (
	"math"

	"github.com/notargets/gopn/utils"
)

// MinProjectionPoints is the floor on the quadrature size used by LegendreCoeffMatrix
const MinProjectionPoints = 50

// LegendreP evaluates the standard Legendre polynomial P_n, normalized so that P_n(1) = 1
func LegendreP(x []float64, n int) (p []float64) {
	p = JacobiP(utils.NewVector(len(x), x), 0, 0, n)
	scale := math.Sqrt(2. / float64(2*n+1))
	for i := range p {
		p[i] *= scale
	}
	return
}

// GaussLegendre returns M quadrature points and weights mapped from [-1,1] to [a,b]
func GaussLegendre(M int, a, b float64) (x, w []float64) {
	R, W := JacobiGQ(0, 0, M-1)
	x = make([]float64, M)
	w = make([]float64, M)
	for m := 0; m < M; m++ {
		x[m] = 0.5 * (R.AtVec(m)*(b-a) + (b + a))
		w[m] = 0.5 * (b - a) * W.AtVec(m)
	}
	return
}

// LegendreCoeffMatrix returns the LMax x LMax matrix C(i,j) = Int_a^b P_i(x) P_j(x) dx
//
// The integral is evaluated with max(2*LMax, MinProjectionPoints) Gauss points,
// which is exact for the degree 2*(LMax-1) integrand up to rounding.
func LegendreCoeffMatrix(LMax int, a, b float64) (C utils.Matrix) {
	var (
		M = 2 * LMax
	)
	if M < MinProjectionPoints {
		M = MinProjectionPoints
	}
	x, w := GaussLegendre(M, a, b)
	P := make([][]float64, LMax)
	for i := 0; i < LMax; i++ {
		P[i] = LegendreP(x, i)
	}
	C = utils.NewMatrix(LMax, LMax)
	for i := 0; i < LMax; i++ {
		for j := i; j < LMax; j++ {
			var sum float64
			for m := 0; m < M; m++ {
				sum += w[m] * P[i][m] * P[j][m]
			}
			C.Set(i, j, sum)
			C.Set(j, i, sum)
		}
	}
	return
}
