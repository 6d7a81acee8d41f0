// Package ml – principal-component projection.
package ml

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// projectionDim is the fixed output dimensionality of the projection.
const projectionDim = 10

// projection is a fitted linear projection onto the leading principal
// components of the (already standardized) training data.
type projection struct {
	components *mat.Dense // features.Dim × projectionDim
}

// fitProjection computes the principal components of x and keeps the leading
// projectionDim of them.
func fitProjection(x [][]float64) (*projection, error) {
	if len(x) == 0 {
		return nil, errors.New("ml: cannot fit projection on empty data")
	}
	rows, cols := len(x), len(x[0])
	if cols < projectionDim {
		return nil, errors.New("ml: fewer input features than projection dimensions")
	}

	m := mat.NewDense(rows, cols, nil)
	for i, row := range x {
		m.SetRow(i, row)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(m, nil); !ok {
		return nil, errors.New("ml: principal component decomposition failed")
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	components := mat.NewDense(cols, projectionDim, nil)
	components.Copy(vecs.Slice(0, cols, 0, projectionDim))
	return &projection{components: components}, nil
}

// transform projects one standardized row onto the fitted components.
func (p *projection) transform(row []float64) []float64 {
	v := mat.NewVecDense(len(row), row)
	out := mat.NewVecDense(projectionDim, nil)
	out.MulVec(p.components.T(), v)
	return out.RawVector().Data
}

// transformAll projects every row of x.
func (p *projection) transformAll(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i, row := range x {
		out[i] = p.transform(row)
	}
	return out
}
