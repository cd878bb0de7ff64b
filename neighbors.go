package dataeval

// NearestNeighbors returns, for each of the n samples, the index of its
// closest other sample according to the flat n×n distance matrix. Ties go
// to the lowest index. Returns nil when n < 2.
func NearestNeighbors(dist []float64, n int) []int {
	if n < 2 {
		return nil
	}

	nn := make([]int, n)
	for i := 0; i < n; i++ {
		row := dist[i*n : (i+1)*n]
		best := -1
		for j, d := range row {
			if j == i {
				continue
			}
			if best == -1 || d < row[best] {
				best = j
			}
		}
		nn[i] = best
	}

	return nn
}

// countLabelDisagreements returns the number of MST edges (MethodMST) or
// nearest-neighbour links (MethodFNN) whose endpoints carry different labels.
func countLabelDisagreements(dist []float64, n int, labels []int, method Method) int {
	mismatches := 0
	switch method {
	case MethodMST:
		for _, e := range PrimMST(dist, n) {
			if labels[e.From] != labels[e.To] {
				mismatches++
			}
		}
	case MethodFNN:
		for i, j := range NearestNeighbors(dist, n) {
			if labels[i] != labels[j] {
				mismatches++
			}
		}
	}
	return mismatches
}
