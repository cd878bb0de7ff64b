package dataeval

import "gonum.org/v1/gonum/stat"

// clusterStdEpsilon stands in for the standard deviation of a single
// merge distance.
const clusterStdEpsilon = 1e-5

// ClusterKind distinguishes clusters measured at a merge event from the
// placeholders that carry a cluster across levels where nothing happened
// to it.
type ClusterKind uint8

const (
	// Measured clusters were produced by a linkage row; their statistics
	// describe that event.
	Measured ClusterKind = iota

	// Placeholder clusters repeat the membership of a Measured cluster on a
	// higher level. Their statistics are zero and their flags false.
	Placeholder
)

func (k ClusterKind) String() string {
	switch k {
	case Measured:
		return "measured"
	case Placeholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Cluster is the state of one cluster id at one level of the tree.
type Cluster struct {
	Kind ClusterKind

	// Samples lists member sample indices in merge order; the last entry
	// is the most recently absorbed sample.
	Samples []int

	// SampleDist is the merge-distance history that built this cluster,
	// ending with the distance of the event that produced it.
	SampleDist []float64

	Count   int
	DistAvg float64
	DistStd float64

	// Out1 and Out2 report whether the latest merge distance exceeds the
	// history mean by more than one or two standard deviations.
	Out1, Out2 bool

	merged    int
	hasMerged bool
}

// newCluster builds a Measured cluster and computes its statistics.
func newCluster(samples []int, sampleDist []float64) *Cluster {
	c := &Cluster{
		Kind:       Measured,
		Samples:    samples,
		SampleDist: sampleDist,
		Count:      len(samples),
	}

	if len(sampleDist) > 1 {
		c.DistAvg, c.DistStd = stat.PopMeanStdDev(sampleDist, nil)
	} else {
		c.DistAvg = sampleDist[0]
		c.DistStd = clusterStdEpsilon
	}

	last := sampleDist[len(sampleDist)-1]
	oneStd := c.DistAvg + c.DistStd
	c.Out1 = last > oneStd
	c.Out2 = last > oneStd+c.DistStd
	return c
}

// newMergedCluster builds the Measured cluster produced by merging two
// clusters; absorbed is the id that stops existing.
func newMergedCluster(samples []int, sampleDist []float64, absorbed int) *Cluster {
	c := newCluster(samples, sampleDist)
	c.merged = absorbed
	c.hasMerged = true
	return c
}

// placeholder returns a Placeholder with the same membership as c.
func (c *Cluster) placeholder() *Cluster {
	return &Cluster{
		Kind:       Placeholder,
		Samples:    c.Samples,
		SampleDist: c.SampleDist,
		Count:      c.Count,
	}
}

// Merged returns the id of the cluster absorbed by the merge that produced
// c. ok is false for leaf pairs, single-sample absorptions and placeholders.
func (c *Cluster) Merged() (id int, ok bool) {
	return c.merged, c.hasMerged
}

// LastSample returns the most recently added sample.
func (c *Cluster) LastSample() int {
	return c.Samples[len(c.Samples)-1]
}

// ClusterPosition addresses a cluster by level and cluster id.
type ClusterPosition struct {
	Level, ID int
}

// ClusterMap holds every cluster of the reconstructed tree in a dense
// levels × ids table. Absent cells are nil.
type ClusterMap struct {
	levels [][]*Cluster
	width  int
	// top[id] is the highest level at which id is present.
	top []int
}

func newClusterMap(width int) *ClusterMap {
	top := make([]int, width)
	for i := range top {
		top[i] = -1
	}
	return &ClusterMap{width: width, top: top}
}

// NumLevels returns the number of levels holding at least one cluster.
func (m *ClusterMap) NumLevels() int { return len(m.levels) }

// NumIDs returns the number of cluster ids, one per leaf pair.
func (m *ClusterMap) NumIDs() int { return m.width }

// Get returns the cluster at pos, or nil if there is none.
func (m *ClusterMap) Get(pos ClusterPosition) *Cluster {
	if pos.Level < 0 || pos.Level >= len(m.levels) || pos.ID < 0 || pos.ID >= m.width {
		return nil
	}
	return m.levels[pos.Level][pos.ID]
}

// Lookup returns the cluster id at level, clamped to the range of levels on
// which id is present. Every id is present from level 0 up to its last
// event without gaps. Returns nil for unknown ids.
func (m *ClusterMap) Lookup(level, id int) *Cluster {
	if id < 0 || id >= m.width || m.top[id] < 0 {
		return nil
	}
	level = min(max(level, 0), m.top[id])
	return m.levels[level][id]
}

// Level returns the ids present at level in ascending order.
func (m *ClusterMap) Level(level int) []int {
	if level < 0 || level >= len(m.levels) {
		return nil
	}
	var ids []int
	for id, c := range m.levels[level] {
		if c != nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// Each calls fn for every cluster, levels ascending and ids ascending.
func (m *ClusterMap) Each(fn func(pos ClusterPosition, c *Cluster)) {
	for level, row := range m.levels {
		for id, c := range row {
			if c != nil {
				fn(ClusterPosition{Level: level, ID: id}, c)
			}
		}
	}
}

// set stores c at pos, growing the table as needed.
func (m *ClusterMap) set(pos ClusterPosition, c *Cluster) {
	for len(m.levels) <= pos.Level {
		m.levels = append(m.levels, make([]*Cluster, m.width))
	}
	m.levels[pos.Level][pos.ID] = c
	m.top[pos.ID] = max(m.top[pos.ID], pos.Level)
}

// setDefault stores c at pos unless a cluster is already there.
func (m *ClusterMap) setDefault(pos ClusterPosition, c *Cluster) {
	if m.Get(pos) == nil {
		m.set(pos, c)
	}
}
