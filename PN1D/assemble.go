package PN1D

import (
	"fmt"

	"github.com/notargets/gopn/FE1D"
	"github.com/notargets/gopn/utils"
)

// Assembler builds the PN system of one energy group
type Assembler struct {
	El             *FE1D.LagrangeElement
	Mesh           Mesh
	Mat            Materials
	NMax           int
	BC             utils.BCType
	ParallelDegree int // Number of workers producing element contributions
	Ops            FE1D.LocalOperators
	Dofs           DofMap
}

func NewAssembler(el *FE1D.LagrangeElement, mesh Mesh, mt Materials, NMax int, bc utils.BCType) (a *Assembler, err error) {
	if err = CheckNMax(NMax); err != nil {
		return
	}
	if bc != utils.BCReflective && bc != utils.BCMarshak {
		err = fmt.Errorf("unsupported boundary condition %s, supported: reflective, marshak", bc)
		return
	}
	if err = mesh.Validate(); err != nil {
		return
	}
	if err = mt.Validate(mesh.NumElements(), NMax+1, el.Dim()); err != nil {
		return
	}
	a = &Assembler{
		El:             el,
		Mesh:           mesh,
		Mat:            mt,
		NMax:           NMax,
		BC:             bc,
		ParallelDegree: 1,
	}
	if a.Ops, err = el.LocalOperators(); err != nil {
		return
	}
	if a.Dofs, err = NewDofMap(mesh.NumElements(), el.Dim()); err != nil {
		return
	}
	return
}

// CheckNMax rejects truncation orders the boundary closures cannot represent
func CheckNMax(NMax int) (err error) {
	if NMax < 1 || NMax%2 == 0 {
		err = fmt.Errorf("NMax must be a positive odd integer, have %d", NMax)
	}
	return
}

// Assemble returns the global system with the boundary condition applied
func (a *Assembler) Assemble() (sys *System, err error) {
	var (
		apply func(*System)
	)
	switch a.BC {
	case utils.BCReflective:
		apply = ApplyReflectiveBC
	case utils.BCMarshak:
		apply = ApplyMarshakBC
	default:
		err = fmt.Errorf("unsupported boundary condition %s", a.BC)
		return
	}
	sys = a.AssembleRaw()
	apply(sys)
	return
}

// AssembleRaw returns the global system before boundary conditions
//
// Element contributions for each moment are produced independently over a
// partition of the elements, then summed in element order so the result does
// not depend on ParallelDegree.
func (a *Assembler) AssembleRaw() (sys *System) {
	var (
		K        = a.Mesh.NumElements()
		NMoments = a.NMax + 1
		pm       = utils.NewPartitionMap(a.ParallelDegree, K)
		contrib  = make([]Contribution, K)
	)
	sys = NewSystem(a.Dofs, NMoments)
	for k := 0; k < NMoments; k++ {
		pm.Run(func(_, kMin, kMax int) {
			for i := kMin; i < kMax; i++ {
				contrib[i] = a.ElementContribution(k, i)
			}
		})
		for i := 0; i < K; i++ {
			sys.Accumulate(contrib[i])
		}
	}
	return
}

// ElementContribution computes the collision, streaming and source terms of element i in moment equation k
//
//	collision: (SigmaT - SigmaS[k]) * Mass * h into block (k, k)
//	streaming: Streaming * (k+1)/(2k+1) into block (k, k+1), Streaming * k/(2k+1) into block (k, k-1)
//	source:    (Mass * h) * Q[k, :] into b, block k
func (a *Assembler) ElementContribution(k, i int) (c Contribution) {
	var (
		Np     = a.El.Dim()
		h      = a.Mesh.Width(i)
		sigma  = a.Mat.SigmaT[i] - a.Mat.SigmaS[i][k]
		q      = a.Mat.Q[i]
		fk     = float64(k)
		cUp    = (fk + 1) / (2*fk + 1)
		cDown  = fk / (2*fk + 1)
		hasUp  = k < a.NMax
		hasDwn = k > 0
		nA     = 1
	)
	if hasUp {
		nA++
	}
	if hasDwn {
		nA++
	}
	c.A = make([]Triplet, 0, nA*Np*Np)
	c.B = make([]Triplet, 0, Np)
	for li := 0; li < Np; li++ {
		var (
			row = a.Dofs.TotalDof(i, li, k)
			src float64
		)
		for lj := 0; lj < Np; lj++ {
			m := a.Ops.Mass.At(li, lj) * h
			s := a.Ops.Streaming.At(li, lj)
			src += m * q.At(k, lj)
			c.A = append(c.A, Triplet{row, a.Dofs.TotalDof(i, lj, k), sigma * m})
			if hasUp {
				c.A = append(c.A, Triplet{row, a.Dofs.TotalDof(i, lj, k+1), s * cUp})
			}
			if hasDwn {
				c.A = append(c.A, Triplet{row, a.Dofs.TotalDof(i, lj, k-1), s * cDown})
			}
		}
		c.B = append(c.B, Triplet{row, 0, src})
	}
	return
}
