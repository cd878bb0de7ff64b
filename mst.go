package dataeval

import (
	"log"
	"math"
)

// Edge is a weighted undirected edge between two samples.
type Edge struct {
	From, To int
	Weight   float64
}

// PrimMST computes a minimum spanning tree using Prim's algorithm on a dense
// distance matrix. dist is flat []float64, n×n row-major. Returns n-1 edges
// in the order they join the tree. Each edge's From is the tree node that
// is nearest to To at the moment To is added, so edges are true tree edges.
// Logs a warning if any MST edge weight is +Inf.
func PrimMST(dist []float64, n int) []Edge {
	if n <= 1 {
		return nil
	}

	inTree := make([]bool, n)
	currentDistances := make([]float64, n)
	nearest := make([]int, n) // tree node realising currentDistances[k]

	inTree[0] = true
	currentDistances[0] = math.Inf(1)
	for j := 1; j < n; j++ {
		currentDistances[j] = dist[j]
	}

	edges := make([]Edge, 0, n-1)
	hasInf := false

	for i := 0; i < n-1; i++ {
		minDist := math.Inf(1)
		minNode := -1
		for j := 0; j < n; j++ {
			if !inTree[j] && currentDistances[j] < minDist {
				minDist = currentDistances[j]
				minNode = j
			}
		}

		// Disconnected components (+Inf edges): take the first non-tree node.
		if minNode == -1 {
			for j := 0; j < n; j++ {
				if !inTree[j] {
					minNode = j
					minDist = currentDistances[j]
					break
				}
			}
		}

		if math.IsInf(minDist, 1) {
			hasInf = true
		}

		edges = append(edges, Edge{From: nearest[minNode], To: minNode, Weight: minDist})

		inTree[minNode] = true

		for k := 0; k < n; k++ {
			if !inTree[k] {
				if d := dist[minNode*n+k]; d < currentDistances[k] {
					currentDistances[k] = d
					nearest[k] = minNode
				}
			}
		}
	}

	if hasInf {
		log.Printf("dataeval: MST contains edge(s) with +Inf weight (disconnected components)")
	}

	return edges
}
