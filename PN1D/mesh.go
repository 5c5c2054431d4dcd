package PN1D

import (
	"fmt"
	"math"

	"github.com/notargets/gopn/utils"
)

// Region is a homogeneous slab of material
//
// SigmaT is indexed by energy group, SigmaS by (moment, group out, group in) and
// Source by energy group. Length is in cm, cross sections and sources in cm^-1.
type Region struct {
	Length float64
	SigmaT []float64
	SigmaS [][][]float64
	Source []float64
}

// Mesh is the ordered, strictly increasing list of element end points
type Mesh struct {
	Nodes []float64
}

func (m Mesh) NumElements() int { return len(m.Nodes) - 1 }

func (m Mesh) Width(i int) float64 { return m.Nodes[i+1] - m.Nodes[i] }

func (m Mesh) Validate() (err error) {
	if len(m.Nodes) < 2 {
		err = fmt.Errorf("mesh needs at least 2 nodes, have %d", len(m.Nodes))
		return
	}
	for i := 0; i < m.NumElements(); i++ {
		if !(m.Nodes[i+1] > m.Nodes[i]) {
			err = fmt.Errorf("mesh nodes must be strictly increasing: nodes[%d] = %v, nodes[%d] = %v",
				i, m.Nodes[i], i+1, m.Nodes[i+1])
			return
		}
	}
	return
}

// Materials holds the cross sections and sources of a single energy group, one entry per element
//
// SigmaS[i] has one entry per angular moment. Q[i] is shaped (NMax+1, dofElem),
// row k is the moment k source at each local degree of freedom.
type Materials struct {
	SigmaT []float64
	SigmaS [][]float64
	Q      []utils.Matrix
}

// Validate checks that the material arrays are synchronised with K elements, NMoments moments and Np local DOFs
func (mt Materials) Validate(K, NMoments, Np int) (err error) {
	if len(mt.SigmaT) != K || len(mt.SigmaS) != K || len(mt.Q) != K {
		err = fmt.Errorf("material arrays must have one entry per element (%d): len(SigmaT) = %d, len(SigmaS) = %d, len(Q) = %d",
			K, len(mt.SigmaT), len(mt.SigmaS), len(mt.Q))
		return
	}
	for i := 0; i < K; i++ {
		if len(mt.SigmaS[i]) < NMoments {
			err = fmt.Errorf("element %d: scattering vector has %d moments, need %d", i, len(mt.SigmaS[i]), NMoments)
			return
		}
		if nr, nc := mt.Q[i].Dims(); nr != NMoments || nc != Np {
			err = fmt.Errorf("element %d: source matrix is (%d,%d), need (%d,%d)", i, nr, nc, NMoments, Np)
			return
		}
	}
	return
}

// BuildElementsAndMaterials lays the regions end to end starting at x = 0 and
// reduces their multigroup data to the chosen energy group
//
// Each region is split into round(Length*elementsPerCm) equal elements. Scattering
// moments are zero padded up to NMax; data carrying more than NMax+1 moments is rejected.
// Only the isotropic (k = 0) source row is filled.
func BuildElementsAndMaterials(regions []Region, elementsPerCm float64, NMax, energyGroup,
	dofElem int) (mesh Mesh, mt Materials, err error) {
	var (
		NMoments = NMax + 1
	)
	if len(regions) == 0 {
		err = fmt.Errorf("at least one region is required")
		return
	}
	if elementsPerCm <= 0 {
		err = fmt.Errorf("elements per cm must be positive, have %v", elementsPerCm)
		return
	}
	mesh.Nodes = []float64{0}
	for r, reg := range regions {
		nElem := int(math.Round(reg.Length * elementsPerCm))
		if nElem < 1 {
			err = fmt.Errorf("region %d: length %v at %v elements/cm yields %d elements", r, reg.Length, elementsPerCm, nElem)
			return
		}
		if energyGroup < 0 || energyGroup >= len(reg.SigmaT) || energyGroup >= len(reg.Source) {
			err = fmt.Errorf("region %d: energy group %d out of range, have %d total and %d source groups",
				r, energyGroup, len(reg.SigmaT), len(reg.Source))
			return
		}
		if len(reg.SigmaS) > NMoments {
			err = fmt.Errorf("region %d: scattering data has %d moments, more than NMax+1 = %d", r, len(reg.SigmaS), NMoments)
			return
		}
		sigS := make([]float64, NMoments)
		for k, sk := range reg.SigmaS {
			if energyGroup >= len(sk) || energyGroup >= len(sk[energyGroup]) {
				err = fmt.Errorf("region %d: scattering moment %d has no entry for group %d", r, k, energyGroup)
				return
			}
			sigS[k] = sk[energyGroup][energyGroup]
		}
		q := utils.NewMatrix(NMoments, dofElem)
		for j := 0; j < dofElem; j++ {
			q.Set(0, j, reg.Source[energyGroup])
		}
		q.SetReadOnly(fmt.Sprintf("Q region %d", r))

		x0 := mesh.Nodes[len(mesh.Nodes)-1]
		mesh.Nodes = append(mesh.Nodes, utils.Linspace(x0, x0+reg.Length, nElem+1)[1:]...)
		for i := 0; i < nElem; i++ {
			mt.SigmaT = append(mt.SigmaT, reg.SigmaT[energyGroup])
			mt.SigmaS = append(mt.SigmaS, sigS)
			mt.Q = append(mt.Q, q)
		}
	}
	return
}
