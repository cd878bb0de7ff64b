package dataeval

import "sort"

// LinkageRow is one merge of a single-linkage dendrogram in scipy order,
// extended with the id the merge produces. Left and Right are the ids of
// the merged entities (samples 0..n-1 or earlier merges n..2n-2) with
// Left < Right. Size counts the samples under the merge.
type LinkageRow struct {
	Left, Right int
	Distance    float64
	Size        int
	ID          int
}

// Linkage builds the single-linkage dendrogram for n samples from a flat
// n×n distance matrix. Rows are ordered by non-decreasing Distance (stable
// with respect to MST insertion order) and row i carries ID n+i.
func Linkage(dist []float64, n int) []LinkageRow {
	edges := PrimMST(dist, n)
	if len(edges) == 0 {
		return nil
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := NewUnionFind(n)
	rows := make([]LinkageRow, 0, len(edges))

	for _, e := range edges {
		a := uf.Find(e.From)
		b := uf.Find(e.To)
		if a > b {
			a, b = b, a
		}
		id, size := uf.Relabel(a, b)
		rows = append(rows, LinkageRow{Left: a, Right: b, Distance: e.Weight, Size: size, ID: id})
	}

	return rows
}

// countLeafPairs returns the number of rows that join two raw samples.
// Each such row seeds one cluster id in the reconstructed tree.
func countLeafPairs(rows []LinkageRow) int {
	count := 0
	for _, r := range rows {
		if r.Size == 2 {
			count++
		}
	}
	return count
}

// minClusterSize is the smallest cluster treated as a real group rather
// than a handful of stragglers: 5% of the samples, clamped to [2, 100].
func minClusterSize(n int) int {
	return min(max(2, n*5/100), 100)
}
