package dataeval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// newFeatureMatrix validates data as an N×D feature matrix and copies it
// into a dense row-major matrix. Every row must have the same number of
// features, N must be at least minRows and D at least 1.
func newFeatureMatrix(data [][]float64, minRows int) (*mat.Dense, error) {
	n := len(data)
	if n < minRows {
		return nil, fmt.Errorf("%w: data should have at least %d samples, got %d", ErrInvalidInput, minRows, n)
	}
	dims := len(data[0])
	if dims < 1 {
		return nil, fmt.Errorf("%w: samples should have at least 1 feature, got %d", ErrInvalidInput, dims)
	}

	flat := make([]float64, n*dims)
	for i, row := range data {
		if len(row) != dims {
			return nil, fmt.Errorf("%w: data should be 2-dimensional, row %d has %d features, want %d",
				ErrInvalidInput, i, len(row), dims)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite value %v at [%d][%d]", ErrInvalidInput, v, i, j)
			}
		}
		copy(flat[i*dims:], row)
	}

	return mat.NewDense(n, dims, flat), nil
}

// stackRows returns a new matrix with the rows of a followed by the rows of b.
// Both must have the same number of columns.
func stackRows(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Stack(a, b)
	return &out
}

// denseRows converts m back into a freshly allocated [][]float64.
func denseRows(m *mat.Dense) [][]float64 {
	n, _ := m.Dims()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}
	return rows
}
