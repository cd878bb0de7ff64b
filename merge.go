package dataeval

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MergeStatus is the verdict on one cluster-cluster merge.
type MergeStatus uint8

const (
	MergePending MergeStatus = iota
	MergeAccepted
	MergeRejected
)

func (s MergeStatus) String() string {
	switch s {
	case MergePending:
		return "pending"
	case MergeAccepted:
		return "accepted"
	case MergeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ClusterMergeEntry records one merge of two clusters: Inner was absorbed
// into Outer, producing Outer at Level.
type ClusterMergeEntry struct {
	Level  int
	Outer  int
	Inner  int
	Status MergeStatus
}

// Accepted reports whether the merge was judged natural.
func (e ClusterMergeEntry) Accepted() bool { return e.Status == MergeAccepted }

// byLevelDesc is the sort key for the merge list: higher levels first.
func byLevelDesc(entries []ClusterMergeEntry) func(i, j int) bool {
	return func(i, j int) bool { return entries[i].Level > entries[j].Level }
}

// generateMergeList scores every cluster-cluster merge in the tree and
// returns the entries with their verdicts, sorted by level descending.
//
// A merge is scored by aggregating the distance between the two clusters
// over all levels below it. The mean is used when the merge distance was an
// outlier for the resulting cluster (beyond two deviations, or beyond one
// for clusters of at least minSize samples); the max otherwise.
func generateMergeList(clusters *ClusterMap, dists *ClusterDistances, minSize int) []ClusterMergeEntry {
	var (
		entries   []ClusterMergeEntry
		mergeMean []float64
		intraMax  []float64
	)

	clusters.Each(func(pos ClusterPosition, c *Cluster) {
		inner, ok := c.Merged()
		if !ok {
			return
		}

		between := dists.column(pos.ID, inner, pos.Level)
		if c.Out2 || (c.Out1 && c.Count >= minSize) {
			mergeMean = append(mergeMean, meanOrNaN(between))
		} else {
			mergeMean = append(mergeMean, maxOrNaN(between))
		}

		var intra []float64
		for _, v := range dists.column(pos.ID, pos.ID, dists.Levels()) {
			if v >= 0 {
				intra = append(intra, v)
			}
		}
		intraMax = append(intraMax, maxOrNaN(intra))

		entries = append(entries, ClusterMergeEntry{Level: pos.Level, Outer: pos.ID, Inner: inner})
	})

	for i, ok := range mergeDecisions(mergeMean, intraMax) {
		if ok {
			entries[i].Status = MergeAccepted
		} else {
			entries[i].Status = MergeRejected
		}
	}

	sort.SliceStable(entries, byLevelDesc(entries))
	return entries
}

// mergeDecisions accepts merge i when log(mergeMean[i]) lies below the
// two-deviation bound of the log intra-cluster maxima, or when its relative
// deviation from that bound is smaller than mean+std of the deviations of
// the near misses (rejected merges with relative deviation below 1).
func mergeDecisions(mergeMean, intraMax []float64) []bool {
	logIntra := uniqueSorted(intraMax)
	for i, v := range logIntra {
		logIntra[i] = math.Log(v)
	}
	m, s := popMeanStd(logIntra)
	twoStd := m + 2*s

	values := make([]float64, len(mergeMean))
	desired := make([]bool, len(mergeMean))
	var nearMiss []float64
	for i, v := range mergeMean {
		values[i] = math.Log(v)
		desired[i] = values[i] < twoStd
		if !desired[i] {
			if dev := relativeDeviation(values[i], twoStd); dev < 1 {
				nearMiss = append(nearMiss, dev)
			}
		}
	}

	// NaN when there are no near misses, which accepts nothing extra.
	nm, ns := popMeanStd(nearMiss)
	oneStd := nm + ns

	accepted := make([]bool, len(values))
	for i, v := range values {
		accepted[i] = desired[i] || relativeDeviation(v, twoStd) < oneStd
	}
	return accepted
}

func meanOrNaN(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

func maxOrNaN(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Max(x)
}
