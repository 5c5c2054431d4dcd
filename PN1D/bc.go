package PN1D

import (
	"github.com/notargets/gopn/FE1D"
)

// ApplyReflectiveBC replaces the odd moment rows at both boundary vertices with identity rows
func ApplyReflectiveBC(sys *System) {
	var (
		left, right = sys.Dofs.LeftBoundary(), sys.Dofs.RightBoundary()
	)
	for k := 1; k < sys.NMoments; k += 2 {
		sys.SetIdentityRow(sys.BoundaryRow(left, k))
		sys.SetIdentityRow(sys.BoundaryRow(right, k))
	}
}

// ApplyMarshakBC replaces the odd moment rows at both boundary vertices with the
// vacuum Marshak closure
//
// Row (boundary, i) becomes Sum_l C[i,l]*(2l+1) * phi_l(boundary) = 0, where C is
// the half range Legendre matrix over [0,1] at the left end and [-1,0] at the right.
func ApplyMarshakBC(sys *System) {
	var (
		left, right = sys.Dofs.LeftBoundary(), sys.Dofs.RightBoundary()
		L           = sys.NMoments
		cLeft       = FE1D.LegendreCoeffMatrix(L, 0, 1)
		cRight      = FE1D.LegendreCoeffMatrix(L, -1, 0)
	)
	for ei := 1; ei < L; ei += 2 {
		rowLeft := sys.BoundaryRow(left, ei)
		rowRight := sys.BoundaryRow(right, ei)
		sys.ClearRow(rowLeft)
		sys.ClearRow(rowRight)
		for l := 0; l < L; l++ {
			w := float64(2*l + 1)
			sys.A.Set(rowLeft, sys.BoundaryRow(left, l), cLeft.At(ei, l)*w)
			sys.A.Set(rowRight, sys.BoundaryRow(right, l), cRight.At(ei, l)*w)
		}
	}
}
