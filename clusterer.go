package dataeval

import (
	"log"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ClusterResult holds the samples flagged by [Clusterer.Run]. All slices
// are sorted and non-nil.
type ClusterResult struct {
	// Outliers are samples that joined their cluster far beyond its usual
	// merge distance, or that belong to a small cluster merged late.
	Outliers []int

	// PotentialOutliers joined a sizeable cluster beyond one deviation of
	// its usual merge distance.
	PotentialOutliers []int

	// Duplicates groups samples that are practically identical.
	Duplicates [][]int

	// NearDuplicates groups samples closer than a typical cluster's merge
	// distance spread, excluding exact duplicates.
	NearDuplicates [][]int
}

// Clusterer finds outliers and duplicates in a feature matrix from the
// single-linkage hierarchy of its samples.
//
// Distances and the linkage are computed when data is assigned; the
// cluster tree is built on first use and cached until the data changes.
// A Clusterer is not safe for concurrent use.
type Clusterer struct {
	cfg   Config
	state *clustererState
}

// clustererState is everything derived from one dataset. It is replaced
// as a whole when the data changes.
type clustererState struct {
	data           *mat.Dense
	n              int
	dist           []float64 // n×n row-major
	linkage        []LinkageRow
	maxClusters    int
	minClusterSize int

	// Built lazily by buildClusters.
	clusters *ClusterMap
	maxLevel int
}

// NewClusterer validates data and prepares a Clusterer for it. data must
// have at least two rows of equal, non-zero length and finite values.
func NewClusterer(data [][]float64, cfg Config) (*Clusterer, error) {
	cfg, err := prepareConfig(cfg)
	if err != nil {
		return nil, err
	}
	c := &Clusterer{cfg: cfg}
	if err := c.SetData(data); err != nil {
		return nil, err
	}
	return c, nil
}

// SetData replaces the dataset and discards everything derived from the
// previous one. On error the Clusterer keeps its previous data.
func (c *Clusterer) SetData(data [][]float64) error {
	state, err := newClustererState(data, c.cfg)
	if err != nil {
		return err
	}
	c.state = state
	return nil
}

func newClustererState(data [][]float64, cfg Config) (*clustererState, error) {
	m, err := newFeatureMatrix(data, 2)
	if err != nil {
		return nil, err
	}
	n, _ := m.Dims()
	dist := ComputePairwiseDistancesParallel(m, cfg.Metric, cfg.Workers)
	linkage := Linkage(dist, n)

	return &clustererState{
		data:           m,
		n:              n,
		dist:           dist,
		linkage:        linkage,
		maxClusters:    countLeafPairs(linkage),
		minClusterSize: minClusterSize(n),
		maxLevel:       1,
	}, nil
}

// Data returns a copy of the current dataset.
func (c *Clusterer) Data() [][]float64 { return denseRows(c.state.data) }

// NumSamples returns the number of samples in the dataset.
func (c *Clusterer) NumSamples() int { return c.state.n }

// MaxClusters returns the number of cluster ids, one per linkage row that
// joins two raw samples.
func (c *Clusterer) MaxClusters() int { return c.state.maxClusters }

// MinClusterSize returns the size below which a cluster counts as small.
func (c *Clusterer) MinClusterSize() int { return c.state.minClusterSize }

// Linkage returns a copy of the extended single-linkage rows.
func (c *Clusterer) Linkage() []LinkageRow { return slices.Clone(c.state.linkage) }

// MaxLevel returns the highest level reached by either side of a
// cluster-cluster merge, building the cluster tree if needed.
func (c *Clusterer) MaxLevel() int {
	c.Clusters()
	return c.state.maxLevel
}

// Clusters returns the cluster tree, building it on first use.
func (c *Clusterer) Clusters() *ClusterMap {
	if c.state.clusters == nil {
		c.CreateClusters()
	}
	return c.state.clusters
}

// CreateClusters rebuilds the cluster tree from the linkage and caches it.
func (c *Clusterer) CreateClusters() *ClusterMap {
	s := c.state
	s.clusters, s.maxLevel = buildClusterTree(s.linkage, s.maxClusters)
	return s.clusters
}

// ClusterDistances returns the level × cluster × cluster distance tensor.
func (c *Clusterer) ClusterDistances() *ClusterDistances {
	clusters := c.Clusters()
	return buildClusterDistances(clusters, c.state.dist, c.state.n, c.state.maxLevel)
}

// MergeList returns every cluster-cluster merge with its verdict, highest
// level first.
func (c *Clusterer) MergeList() []ClusterMergeEntry {
	return generateMergeList(c.Clusters(), c.ClusterDistances(), c.state.minClusterSize)
}

// LastMergeLevels returns, per cluster id, the last level at which the
// cluster is trusted. When the hierarchy has at most one leaf pair there is
// nothing to compare and cluster 0 is trusted up to a tenth of the samples.
func (c *Clusterer) LastMergeLevels() map[int]int {
	if c.state.maxClusters <= 1 {
		log.Printf("dataeval: single cluster hierarchy (%d samples), using default merge level", c.state.n)
		return map[int]int{0: c.state.n / 10}
	}
	return lastMergeLevels(c.MergeList())
}

// FindOutliers returns the outliers and potential outliers given the last
// trusted level of each cluster.
func (c *Clusterer) FindOutliers(lastMergeLevels map[int]int) (outliers, potential []int) {
	return findOutliers(c.Clusters(), lastMergeLevels, c.state.minClusterSize)
}

// FindDuplicates returns the exact and near duplicate groups given the
// last trusted level of each cluster.
func (c *Clusterer) FindDuplicates(lastMergeLevels map[int]int) (exact, near [][]int) {
	cutoff := duplicateCutoff(c.Clusters(), lastMergeLevels, c.state.minClusterSize)
	return findDuplicates(c.state.dist, c.state.n, cutoff)
}

// Run flags outliers and duplicates in the current dataset.
func (c *Clusterer) Run() *ClusterResult {
	levels := c.LastMergeLevels()
	outliers, potential := c.FindOutliers(levels)
	duplicates, nearDuplicates := c.FindDuplicates(levels)

	return &ClusterResult{
		Outliers:          outliers,
		PotentialOutliers: potential,
		Duplicates:        duplicates,
		NearDuplicates:    nearDuplicates,
	}
}
