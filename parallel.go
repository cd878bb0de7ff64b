package dataeval

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// ComputePairwiseDistancesParallel computes the full n×n distance matrix using
// multiple goroutines. numWorkers controls the degree of parallelism; if <= 1,
// it falls back to single-threaded ComputePairwiseDistances.
//
// The result is bitwise identical to ComputePairwiseDistances.
func ComputePairwiseDistancesParallel(data *mat.Dense, metric DistanceMetric, numWorkers int) []float64 {
	n, _ := data.Dims()
	if numWorkers <= 1 || n <= 1 {
		return ComputePairwiseDistances(data, metric)
	}

	result := make([]float64, n*n)

	// Each worker owns a contiguous range of source rows i and writes
	// (i,j) and (j,i) for j > i. Cells never overlap between workers.
	var wg sync.WaitGroup

	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				a := data.RawRowView(i)
				for j := i + 1; j < n; j++ {
					d := metric.Distance(a, data.RawRowView(j))
					result[i*n+j] = d
					result[j*n+i] = d
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return result
}
