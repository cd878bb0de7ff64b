package dataeval

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// popMeanStd returns the mean and population standard deviation of x.
// Both are NaN when x is empty.
func popMeanStd(x []float64) (mean, std float64) {
	if len(x) == 0 {
		return math.NaN(), math.NaN()
	}
	return stat.PopMeanStdDev(x, nil)
}

// uniqueSorted returns the distinct values of x in ascending order.
func uniqueSorted(x []float64) []float64 {
	out := slices.Clone(x)
	slices.Sort(out)
	return slices.Compact(out)
}

// relativeDeviation returns |v - ref| / |ref|.
func relativeDeviation(v, ref float64) float64 {
	return math.Abs((v - ref) / ref)
}
