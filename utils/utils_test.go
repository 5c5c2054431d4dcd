package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatrixVector(t *testing.T) {
	A := NewMatrix(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	B := NewMatrix(3, 2)
	B.SetCol(0, []float64{1, 0, 1}).SetCol(1, []float64{0, 1, 0})
	AB := A.Mul(B)
	assert.Equal(t, []float64{4, 2, 10, 5}, AB.Data())
	assert.True(t, mat.Equal(AB.T(), mat.NewDense(2, 2, []float64{4, 10, 2, 5})))

	AB.SetReadOnly("AB")
	assert.Panics(t, func() { AB.Set(0, 0, 1) })
	assert.Panics(t, func() { AB.Scale(2) })
	assert.Equal(t, 4., AB.At(0, 0))
	B.Scale(2)
	assert.Equal(t, 2., B.At(2, 0))

	_, err := NewMatrix(2, 2, []float64{1, 2, 2, 4}).Inverse()
	assert.Error(t, err)
	Ainv, err := NewMatrix(2, 2, []float64{2, 0, 0, 4}).Inverse()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0, 0.25}, Ainv.Data(), 1.e-14)

	w := NewVector(4, []float64{3, -1, 2, -5})
	assert.Equal(t, -5., w.Min())
	assert.Equal(t, 3., w.Max())
	assert.Equal(t, 5., w.Apply(math.Abs).Max())
	assert.Equal(t, 4, w.Len())
	assert.Panics(t, func() { NewVector(3, []float64{1}) })
}

func TestIndexing(t *testing.T) {
	assert.Equal(t, Index{2, 3, 4}, NewRange(2, 4))
	assert.Equal(t, 0, len(NewRange(4, 2)))
	I := NewRange(0, 3)
	J := I.Add(10)
	assert.Equal(t, Index{0, 1, 2, 3}, I)
	assert.Equal(t, Index{10, 11, 12, 13}, J)
	assert.Equal(t, 3, len(NewIndex(3)))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))
	assert.Equal(t, []float64{2}, Linspace(2, 3, 1))
	assert.Equal(t, []float64{1.5, 1.5}, ConstArray(2, 1.5))
}

func TestSparse(t *testing.T) {
	A := NewDOK(3, 3)
	A.Accumulate(0, 0, 1).Accumulate(0, 0, 2).Accumulate(0, 2, 0)
	A.Accumulate(1, 1, 4).Accumulate(1, 2, -1).Accumulate(2, 2, 5)
	assert.Equal(t, 3., A.At(0, 0))
	assert.Equal(t, 4, A.NNZ())
	assert.Equal(t, []float64{0, 4, -1}, mat.Row(nil, 1, A))

	A.ZeroRow(1)
	assert.Equal(t, []float64{0, 0, 0}, mat.Row(nil, 1, A))
	assert.Equal(t, []float64{3, 0, 0}, mat.Row(nil, 0, A))
	A.Set(1, 1, 1)

	csr := A.ToCSR()
	y := csr.MulVec(NewVector(3, []float64{1, 2, 3}))
	assert.Equal(t, []float64{3, 2, 15}, y.Data())
	assert.Equal(t, A.ToDense().Data(), csr.ToDense().Data())
	assert.Equal(t, []float64{3, 0, 0, 0, 1, 0, 0, 0, 5}, csr.ToDense().Data())
	assert.Panics(t, func() { csr.MulVec(NewVector(2)) })

	A.SetReadOnly("A")
	assert.Panics(t, func() { A.Accumulate(0, 0, 1) })
	assert.Panics(t, func() { A.ZeroRow(0) })
}

func TestBCType(t *testing.T) {
	assert.Equal(t, BCReflective, ParseBCName(" Reflective "))
	assert.Equal(t, BCMarshak, ParseBCName("MARSHAK"))
	assert.Equal(t, BCNone, ParseBCName("vacuum"))
	assert.Equal(t, BCNone, ParseBCName(""))
	assert.Equal(t, "Marshak", BCMarshak.String())
	assert.Equal(t, "Unknown", BCType(42).String())
}
