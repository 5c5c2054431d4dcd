package FE1D

import (
	"fmt"

	"github.com/notargets/gopn/utils"
)

// LagrangeElement is a nodal Lagrange basis of fixed degree on the reference element [0,1]
//
// Basis functions are ordered [vertex0, vertex1, interior_0, ..., interior_{m-1}],
// with vertex0 at xi=0, vertex1 at xi=1 and the interior Gauss-Lobatto nodes ascending.
type LagrangeElement struct {
	Degree, Np int
	R          utils.Vector // Nodes on [-1,1], in basis order
	Xi         []float64    // Nodes on [0,1], in basis order
	V, Vinv    utils.Matrix
}

func NewLagrangeElement(degree int) (el *LagrangeElement, err error) {
	if degree < 1 {
		err = fmt.Errorf("polynomial degree must be at least 1, have %d", degree)
		return
	}
	var (
		Np  = degree + 1
		gl  = JacobiGL(0, 0, degree).Data()
		r   = make([]float64, Np)
		xi  = make([]float64, Np)
		ord = vertexInteriorOrder(Np)
	)
	for i, o := range ord {
		r[i] = gl[o]
		xi[i] = 0.5 * (gl[o] + 1)
	}
	el = &LagrangeElement{
		Degree: degree,
		Np:     Np,
		R:      utils.NewVector(Np, r),
		Xi:     xi,
	}
	el.V = Vandermonde1D(degree, el.R)
	if el.Vinv, err = el.V.Inverse(); err != nil {
		err = fmt.Errorf("unable to invert Vandermonde matrix for degree %d: %v", degree, err)
		return
	}
	el.V.SetReadOnly("V")
	el.Vinv.SetReadOnly("Vinv")
	return
}

// vertexInteriorOrder maps basis slot to position in the ascending node list
func vertexInteriorOrder(Np int) (ord utils.Index) {
	ord = utils.NewIndex(Np)
	ord[0], ord[1] = 0, Np-1
	for i := 2; i < Np; i++ {
		ord[i] = i - 1
	}
	return
}

// Dim is the number of local shape functions
func (el *LagrangeElement) Dim() int { return el.Np }

// NumInterior is the number of shape functions not attached to a vertex
func (el *LagrangeElement) NumInterior() int { return el.Np - 2 }

// Quadrature returns Gauss-Legendre points and weights on [0,1] exact for polynomials of degree order
func (el *LagrangeElement) Quadrature(order int) (points, weights []float64) {
	if order < 0 {
		order = 0
	}
	return GaussLegendre(order/2+1, 0, 1)
}

// Tabulate evaluates every basis function and its derivative d/dxi at the reference points
//
// Both outputs are shaped (len(points), Np).
func (el *LagrangeElement) Tabulate(points []float64) (phi, dphi utils.Matrix) {
	var (
		N = el.Degree
		r = make([]float64, len(points))
	)
	for i, xi := range points {
		r[i] = 2*xi - 1
	}
	R := utils.NewVector(len(r), r)
	phi = Vandermonde1D(N, R).Mul(el.Vinv)
	// d/dxi = 2 d/dr from the affine map xi = (r+1)/2
	dphi = GradVandermonde1D(R, N).Mul(el.Vinv).Scale(2)
	return
}
