package PN1D

import (
	"fmt"

	"github.com/notargets/gopn/utils"
)

// DofMap is the local to global numbering of one spatial replica
//
// Vertex DOFs come first in mesh order, followed by the interior DOFs grouped by
// element in ascending element order. Angular moment k offsets every index by k*NGlobal.
type DofMap struct {
	Map                           []utils.Index // (K, dofElem)
	NGlobal, NVertices, NInterior int
}

func NewDofMap(K, dofElem int) (dm DofMap, err error) {
	if dofElem < 2 {
		err = fmt.Errorf("an element needs at least 2 local DOFs, have %d", dofElem)
		return
	}
	if K < 1 {
		err = fmt.Errorf("need at least one element, have %d", K)
		return
	}
	var (
		numInterior = dofElem - 2
		numVertices = K + 1
	)
	dm = DofMap{
		Map:       make([]utils.Index, K),
		NVertices: numVertices,
		NInterior: numInterior,
		NGlobal:   numVertices + K*numInterior,
	}
	for e := 0; e < K; e++ {
		startInterior := numVertices + e*numInterior
		dm.Map[e] = append(utils.Index{e, e + 1}, utils.NewRange(startInterior, startInterior+numInterior-1)...)
	}
	return
}

func (dm DofMap) NumElements() int { return len(dm.Map) }

// TotalDof is the row/column of local DOF local of element elem in moment block k
func (dm DofMap) TotalDof(elem, local, k int) int {
	return dm.Map[elem][local] + k*dm.NGlobal
}

// Block returns the global indices of element elem in moment block k
func (dm DofMap) Block(elem, k int) utils.Index {
	return dm.Map[elem].Add(k * dm.NGlobal)
}

func (dm DofMap) LeftBoundary() int { return 0 }

func (dm DofMap) RightBoundary() int { return dm.NVertices - 1 }
