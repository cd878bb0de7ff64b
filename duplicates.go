package dataeval

import (
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// exactDuplicateRatio scales the near-duplicate cutoff down to the exact one.
const exactDuplicateRatio = 100

// duplicateCutoff returns the mean DistStd of the clusters that are at
// least minSize samples large at their last trusted level. NaN when there
// are none.
func duplicateCutoff(clusters *ClusterMap, last map[int]int, minSize int) float64 {
	var stds []float64
	for _, id := range sortedIDs(last) {
		c := clusters.Lookup(last[id], id)
		if c != nil && c.Count >= minSize {
			stds = append(stds, c.DistStd)
		}
	}
	if len(stds) == 0 {
		return math.NaN()
	}
	return stat.Mean(stds, nil)
}

// findDuplicates pairs up samples whose distance is within the cutoff:
// exact duplicates lie within cutoff/100, near duplicates within cutoff but
// beyond the exact bound. dist is the flat n×n sample distance matrix.
//
// A sample that has an exact duplicate is reported only in its exact
// group; near pairs touching it are dropped, so no sample appears in both
// results.
func findDuplicates(dist []float64, n int, cutoff float64) (exact, near [][]int) {
	exactCutoff := cutoff / exactDuplicateRatio

	var exactPairs, candidates [][2]int
	hasExact := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dist[i*n+j]
			switch {
			case d <= exactCutoff:
				exactPairs = append(exactPairs, [2]int{i, j})
				hasExact[i], hasExact[j] = true, true
			case d <= cutoff:
				candidates = append(candidates, [2]int{i, j})
			}
		}
	}

	nearPairs := candidates[:0]
	for _, p := range candidates {
		if !hasExact[p[0]] && !hasExact[p[1]] {
			nearPairs = append(nearPairs, p)
		}
	}

	return groupPairs(exactPairs, n), groupPairs(nearPairs, n)
}

// groupPairs joins overlapping pairs transitively and returns the groups,
// each sorted ascending, ordered by their smallest member.
func groupPairs(pairs [][2]int, n int) [][]int {
	groups := [][]int{}
	if len(pairs) == 0 {
		return groups
	}

	uf := NewUnionFind(n)
	seen := make([]bool, n)
	for _, p := range pairs {
		uf.Union(p[0], p[1])
		seen[p[0]], seen[p[1]] = true, true
	}

	index := make(map[int]int) // root → position in groups
	for i := 0; i < n; i++ {
		if !seen[i] {
			continue
		}
		root := uf.Find(i)
		g, ok := index[root]
		if !ok {
			g = len(groups)
			index[root] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}

	sort.Slice(groups, func(a, b int) bool {
		return slices.Compare(groups[a], groups[b]) < 0
	})
	return groups
}
