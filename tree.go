package dataeval

import "slices"

// buildClusterTree walks the linkage rows bottom-up and materialises every
// level of every cluster. width is the number of leaf-pair rows, which is
// also the number of cluster ids handed out.
//
// It returns the cluster map and the highest level reached by either side
// of a cluster-cluster merge (at least 1).
func buildClusterTree(rows []LinkageRow, width int) (*ClusterMap, int) {
	clusters := newClusterMap(width)
	positions := make(map[int]ClusterPosition, len(rows)) // linkage id → cluster
	nextID := 0
	maxLevel := 1

	for _, row := range rows {
		left, hasLeft := positions[row.Left]
		right, hasRight := positions[row.Right]

		var (
			pos ClusterPosition
			c   *Cluster
		)

		switch {
		case hasLeft && hasRight:
			lc, rc := clusters.Get(left), clusters.Get(right)

			samples := slices.Concat(rc.Samples, lc.Samples)
			if lc.Count >= rc.Count {
				samples = slices.Concat(lc.Samples, rc.Samples)
			}
			sampleDist := slices.Concat(rc.SampleDist, lc.SampleDist, []float64{row.Distance})

			pos = ClusterPosition{Level: max(left.Level, right.Level) + 1, ID: min(left.ID, right.ID)}
			maxLevel = max(maxLevel, left.Level, right.Level)
			fillLevels(clusters, left, right)
			c = newMergedCluster(samples, sampleDist, max(left.ID, right.ID))

		case hasLeft || hasRight:
			child, other := left, row.Right
			if !hasLeft {
				child, other = right, row.Left
			}
			cc := clusters.Get(child)

			samples := slices.Concat(cc.Samples, []int{other})
			sampleDist := slices.Concat(cc.SampleDist, []float64{row.Distance})

			pos = ClusterPosition{Level: child.Level + 1, ID: child.ID}
			c = newCluster(samples, sampleDist)

		default:
			pos = ClusterPosition{Level: 0, ID: nextID}
			nextID++
			c = newCluster([]int{row.Left, row.Right}, []float64{row.Distance})
		}

		clusters.set(pos, c)
		positions[row.ID] = pos
	}

	return clusters, maxLevel
}

// fillLevels carries the lower of two merging clusters up to the level of
// the higher one, so that both are present on every level below the merge.
func fillLevels(clusters *ClusterMap, left, right ClusterPosition) {
	if left.Level == right.Level {
		return
	}
	lower, upper := left, right
	if right.Level < left.Level {
		lower, upper = right, left
	}

	ph := clusters.Get(lower).placeholder()
	for level := upper.Level; level > lower.Level; level-- {
		clusters.setDefault(ClusterPosition{Level: level, ID: lower.ID}, ph)
	}
}
