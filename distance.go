package dataeval

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMetric measures the dissimilarity of two equal-length samples.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// ComputePairwiseDistances computes the full n×n distance matrix between
// the rows of data. Returns flat []float64 of length n*n in row-major order,
// with zeros on the diagonal.
func ComputePairwiseDistances(data *mat.Dense, metric DistanceMetric) []float64 {
	n, _ := data.Dims()
	result := make([]float64, n*n)

	for i := 0; i < n; i++ {
		a := data.RawRowView(i)
		for j := i + 1; j < n; j++ {
			d := metric.Distance(a, data.RawRowView(j))
			result[i*n+j] = d
			result[j*n+i] = d
		}
	}

	return result
}
