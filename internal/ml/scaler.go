// Package ml – z-score standardization.
package ml

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// scaler applies per-column z-score standardization using the mean and
// standard deviation learned at fit time.
type scaler struct {
	mean []float64
	std  []float64
}

// fitScaler learns per-column mean and standard deviation. Columns with zero
// variance (the overtime one-hot pair can degenerate on tiny samples) get a
// std of 1 so the transform stays defined.
func fitScaler(x [][]float64) (*scaler, error) {
	if len(x) == 0 || len(x[0]) == 0 {
		return nil, errors.New("ml: cannot fit scaler on empty data")
	}
	cols := len(x[0])
	s := &scaler{mean: make([]float64, cols), std: make([]float64, cols)}

	col := make([]float64, len(x))
	for j := 0; j < cols; j++ {
		for i := range x {
			col[i] = x[i][j]
		}
		m, sd := stat.MeanStdDev(col, nil)
		if sd == 0 {
			sd = 1
		}
		s.mean[j], s.std[j] = m, sd
	}
	return s, nil
}

// transform standardizes a single row in place-safe fashion (a new slice is
// returned; the input is not modified).
func (s *scaler) transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.mean[j]) / s.std[j]
	}
	return out
}

// transformAll standardizes every row of x.
func (s *scaler) transformAll(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i, row := range x {
		out[i] = s.transform(row)
	}
	return out
}
