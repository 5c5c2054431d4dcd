package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK is the incremental builder for sparse systems, entries are revisited
// and summed many times before the matrix is compressed with ToCSR
type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) NNZ() int            { return m.M.NNZ() }

func (m DOK) DoNonZero(fn func(i, j int, v float64)) { m.M.DoNonZero(fn) }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

// Set overwrites the entry at (i, j)
func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

// Accumulate adds val into the entry at (i, j)
func (m DOK) Accumulate(i, j int, val float64) DOK { // Changes receiver
	m.checkWritable()
	if val == 0 {
		return m
	}
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

// ZeroRow sets every stored entry of row i to zero
func (m DOK) ZeroRow(i int) DOK { // Changes receiver
	var (
		cols []int
	)
	m.checkWritable()
	m.M.DoNonZero(func(ii, j int, _ float64) {
		if ii == i {
			cols = append(cols, j)
		}
	})
	for _, j := range cols {
		m.M.Set(i, j, 0)
	}
	return m
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:        m.M.ToCSR(),
		readOnly: m.readOnly,
		name:     m.name,
	}
}

func (m DOK) ToDense() Matrix {
	return Matrix{
		M:    m.M.ToDense(),
		name: m.name,
	}
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

type CSR struct {
	M        *sparse.CSR
	readOnly bool
	name     string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }

// MulVec returns m*x
func (m CSR) MulVec(x Vector) (y Vector) {
	var (
		nr, nc = m.Dims()
	)
	if x.Len() != nc {
		panic(fmt.Errorf("dimension mismatch: CSR nc = %v, len(x) = %v", nc, x.Len()))
	}
	y = NewVector(nr)
	m.M.MulVecTo(y.Data(), false, x.Data())
	return
}

func (m CSR) ToDense() Matrix {
	return Matrix{
		M:    m.M.ToDense(),
		name: m.name,
	}
}
