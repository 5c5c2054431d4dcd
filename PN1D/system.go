package PN1D

import (
	"github.com/notargets/gopn/utils"
)

// Triplet is a single (row, column, value) contribution
type Triplet struct {
	I, J int
	V    float64
}

// Contribution is everything one (moment, element) pair adds to the system
type Contribution struct {
	A []Triplet
	B []Triplet // J is always 0
}

// System is the global block system A x = b, one spatial block per angular moment
type System struct {
	A, B     utils.DOK // B is a single column
	Dofs     DofMap
	NMoments int
}

func NewSystem(dofs DofMap, NMoments int) (s *System) {
	var (
		n = dofs.NGlobal * NMoments
	)
	s = &System{
		A:        utils.NewDOK(n, n),
		B:        utils.NewDOK(n, 1),
		Dofs:     dofs,
		NMoments: NMoments,
	}
	return
}

func (s *System) Size() int { return s.Dofs.NGlobal * s.NMoments }

// Accumulate sums a contribution into the system
func (s *System) Accumulate(c Contribution) {
	for _, t := range c.A {
		s.A.Accumulate(t.I, t.J, t.V)
	}
	for _, t := range c.B {
		s.B.Accumulate(t.I, 0, t.V)
	}
}

// SetIdentityRow replaces row i with the identity row and zeroes the right hand side
func (s *System) SetIdentityRow(i int) {
	s.ClearRow(i)
	s.A.Set(i, i, 1)
}

// ClearRow zeroes row i of A and entry i of b
func (s *System) ClearRow(i int) {
	s.A.ZeroRow(i)
	s.B.Set(i, 0, 0)
}

// BoundaryRow is the row of the spatial boundary DOF dof in moment block k
func (s *System) BoundaryRow(dof, k int) int { return dof + k*s.Dofs.NGlobal }

func (s *System) BVector() (b utils.Vector) {
	b = utils.NewVector(s.Size())
	data := b.Data()
	s.B.DoNonZero(func(i, _ int, v float64) {
		data[i] = v
	})
	return
}

func (s *System) ToCSR() utils.CSR { return s.A.ToCSR() }
