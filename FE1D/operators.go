package FE1D

import (
	"fmt"

	"github.com/notargets/gopn/utils"
)

// LocalOperators holds the reference-element matrices shared by every element
//
//	Mass(i,j)      = Sum_q w_q phi_q,i  phi_q,j
//	Streaming(i,j) = Sum_q w_q dphi_q,i phi_q,j
//
// Neither carries a Jacobian, the element width is applied during assembly.
type LocalOperators struct {
	Mass, Streaming utils.Matrix
}

func NewLocalOperators(phi, dphi utils.Matrix, weights []float64) (lo LocalOperators, err error) {
	var (
		nq, nb   = phi.Dims()
		nqd, nbd = dphi.Dims()
	)
	if nq != nqd || nb != nbd {
		err = fmt.Errorf("basis tabulation shapes differ: phi = (%d,%d), dphi = (%d,%d)", nq, nb, nqd, nbd)
		return
	}
	if nq != len(weights) {
		err = fmt.Errorf("have %d quadrature weights for %d tabulated points", len(weights), nq)
		return
	}
	lo.Mass = utils.NewMatrix(nb, nb)
	lo.Streaming = utils.NewMatrix(nb, nb)
	for q, w := range weights {
		for i := 0; i < nb; i++ {
			vi, di := phi.At(q, i), dphi.At(q, i)
			for j := 0; j < nb; j++ {
				vj := phi.At(q, j)
				lo.Mass.M.Set(i, j, lo.Mass.At(i, j)+w*vi*vj)
				lo.Streaming.M.Set(i, j, lo.Streaming.At(i, j)+w*di*vj)
			}
		}
	}
	lo.Mass.SetReadOnly("Mass")
	lo.Streaming.SetReadOnly("Streaming")
	return
}

// LocalOperators builds the reference operators with quadrature of order 2*Degree
func (el *LagrangeElement) LocalOperators() (lo LocalOperators, err error) {
	points, weights := el.Quadrature(2 * el.Degree)
	phi, dphi := el.Tabulate(points)
	return NewLocalOperators(phi, dphi, weights)
}
