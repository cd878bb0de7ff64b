package dataeval

import (
	"slices"
	"sort"
)

// lastMergeLevels walks merges from the highest level down and records,
// per cluster id, the last level at which the cluster is still trusted.
//
// A rejected merge lowers both participants to level-1 (seeding unseen
// ids with 1 first). An accepted merge raises an already tracked outer
// cluster to the merge level.
func lastMergeLevels(entries []ClusterMergeEntry) map[int]int {
	levels := make(map[int]int)
	for _, e := range entries {
		if !e.Accepted() {
			for _, id := range [2]int{e.Outer, e.Inner} {
				if _, ok := levels[id]; !ok {
					levels[id] = 1
				}
				if levels[id] > e.Level {
					levels[id] = e.Level - 1
				}
			}
			continue
		}
		if cur, ok := levels[e.Outer]; ok {
			levels[e.Outer] = max(cur, e.Level)
		}
	}
	return levels
}

// findOutliers inspects every cluster that was not produced by a
// cluster-cluster merge and sits above its id's last trusted level:
//   - the latest sample is an outlier if it merged beyond two deviations;
//   - else a possible outlier if beyond one and the cluster has at least
//     minSize samples;
//   - else, for clusters smaller than minSize, every member is an outlier.
//
// Both results are sorted and free of duplicates.
func findOutliers(clusters *ClusterMap, last map[int]int, minSize int) (outliers, possible []int) {
	outlierSet := make(map[int]struct{})
	possibleSet := make(map[int]struct{})

	clusters.Each(func(pos ClusterPosition, c *Cluster) {
		if _, merged := c.Merged(); merged {
			return
		}
		good, ok := last[pos.ID]
		if !ok || pos.Level <= good {
			return
		}
		switch {
		case c.Out2:
			outlierSet[c.LastSample()] = struct{}{}
		case c.Out1 && c.Count >= minSize:
			possibleSet[c.LastSample()] = struct{}{}
		case c.Count < minSize:
			for _, s := range c.Samples {
				outlierSet[s] = struct{}{}
			}
		}
	})

	return sortedKeys(outlierSet), sortedKeys(possibleSet)
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// sortedIDs returns the keys of a last-merge-level map in ascending order.
func sortedIDs(levels map[int]int) []int {
	ids := make([]int, 0, len(levels))
	for id := range levels {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
