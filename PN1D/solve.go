package PN1D

import (
	"fmt"
	"math"
	"sort"

	"github.com/notargets/gopn/FE1D"
	"github.com/notargets/gopn/utils"
	"gonum.org/v1/gonum/mat"
)

// Solve compresses A and solves the system with a dense LU factorization
func Solve(sys *System) (x utils.Vector, err error) {
	var (
		n  = sys.Size()
		A  = sys.ToCSR().ToDense()
		b  = sys.BVector()
		lu mat.LU
	)
	lu.Factorize(A.M)
	x = utils.NewVector(n)
	if err = lu.SolveVecTo(x.V, false, b.V); err != nil {
		err = fmt.Errorf("unable to solve %d x %d system: %v", n, n, err)
		return
	}
	return
}

// Residual returns max|A x - b|
func Residual(sys *System, x utils.Vector) float64 {
	var (
		ax = sys.ToCSR().MulVec(x)
		b  = sys.BVector()
	)
	for i, v := range b.Data() {
		ax.Data()[i] -= v
	}
	return ax.Apply(math.Abs).Max()
}

// MomentSlice returns the spatial block of moment k from a full solution vector
func MomentSlice(solution []float64, dofs DofMap, k int) []float64 {
	return solution[k*dofs.NGlobal : (k+1)*dofs.NGlobal]
}

// InterpolateSolution evaluates a single-moment finite element field at arbitrary points
//
// Points outside the mesh are evaluated with the basis of the first or last element.
func InterpolateSolution(el *FE1D.LagrangeElement, mesh Mesh, dofs DofMap, solution, x []float64) (values []float64) {
	var (
		K     = mesh.NumElements()
		nodes = mesh.Nodes
	)
	values = make([]float64, len(x))
	for ip, xx := range x {
		e := sort.SearchFloat64s(nodes, xx) - 1
		if e < 0 {
			e = 0
		}
		if e >= K {
			e = K - 1
		}
		xi := (xx - nodes[e]) / (nodes[e+1] - nodes[e])
		phi, _ := el.Tabulate([]float64{xi})
		for j, g := range dofs.Map[e] {
			values[ip] += phi.At(0, j) * solution[g]
		}
	}
	return
}
