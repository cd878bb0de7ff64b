package dataeval

// unsetDistance marks a cell whose clusters are not both present at that level.
const unsetDistance = -1.0

// ClusterDistances is a levels × width × width tensor. At each level the
// diagonal cell (i, i) holds cluster i's mean merge distance and cell
// (i, j) holds the smallest sample-to-sample distance between clusters i
// and j. Cells for absent clusters hold -1.
type ClusterDistances struct {
	levels, width int
	cells         []float64
}

// At returns cell (i, j) of level.
func (d *ClusterDistances) At(level, i, j int) float64 {
	return d.cells[(level*d.width+i)*d.width+j]
}

// Levels returns the number of levels in the tensor.
func (d *ClusterDistances) Levels() int { return d.levels }

func (d *ClusterDistances) set(level, i, j int, v float64) {
	d.cells[(level*d.width+i)*d.width+j] = v
}

// column returns cell (i, j) for levels 0..upto-1, clamped to the tensor.
func (d *ClusterDistances) column(i, j, upto int) []float64 {
	upto = min(upto, d.levels)
	out := make([]float64, upto)
	for level := range out {
		out[level] = d.At(level, i, j)
	}
	return out
}

// buildClusterDistances fills the tensor for levels 0..maxLevel-1 from the
// cluster map and the flat n×n sample distance matrix.
func buildClusterDistances(clusters *ClusterMap, dist []float64, n, maxLevel int) *ClusterDistances {
	width := clusters.NumIDs()
	d := &ClusterDistances{
		levels: maxLevel,
		width:  width,
		cells:  make([]float64, maxLevel*width*width),
	}
	for i := range d.cells {
		d.cells[i] = unsetDistance
	}

	for level := 0; level < min(maxLevel, clusters.NumLevels()); level++ {
		ids := clusters.Level(level)
		for x, a := range ids {
			ca := clusters.Get(ClusterPosition{Level: level, ID: a})
			d.set(level, a, a, ca.DistAvg)
			for _, b := range ids[x+1:] {
				cb := clusters.Get(ClusterPosition{Level: level, ID: b})
				m := minCrossDistance(dist, n, ca.Samples, cb.Samples)
				d.set(level, a, b, m)
				d.set(level, b, a, m)
			}
		}
	}

	return d
}

// minCrossDistance returns the smallest distance between a sample of a and
// a sample of b.
func minCrossDistance(dist []float64, n int, a, b []int) float64 {
	best := dist[a[0]*n+b[0]]
	for _, i := range a {
		row := dist[i*n : (i+1)*n]
		for _, j := range b {
			best = min(best, row[j])
		}
	}
	return best
}
