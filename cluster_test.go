package dataeval

import (
	"math"
	"testing"
)

const floatTol = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewCluster_SingleDistance(t *testing.T) {
	c := newCluster([]int{3, 7}, []float64{2.5})

	if c.Kind != Measured {
		t.Errorf("Kind = %v, want measured", c.Kind)
	}
	if c.Count != 2 {
		t.Errorf("Count = %d, want 2", c.Count)
	}
	if c.DistAvg != 2.5 {
		t.Errorf("DistAvg = %v, want 2.5", c.DistAvg)
	}
	if c.DistStd != clusterStdEpsilon {
		t.Errorf("DistStd = %v, want epsilon %v", c.DistStd, clusterStdEpsilon)
	}
	if c.Out1 || c.Out2 {
		t.Errorf("Out1/Out2 = %v/%v, want false/false", c.Out1, c.Out2)
	}
	if _, ok := c.Merged(); ok {
		t.Error("leaf pair should not report a merged id")
	}
}

func TestNewCluster_Flags(t *testing.T) {
	tests := []struct {
		name       string
		dist       []float64
		out1, out2 bool
	}{
		// mean 1.5, std 0.5: 2 is exactly mean+std, not beyond it.
		{"at one std", []float64{1, 2}, false, false},
		// mean 7/3, std 1.2472: 4 > 3.58 but < 4.83.
		{"beyond one std", []float64{1, 2, 4}, true, false},
		// mean 5.9, std 14.7: 50 > 35.3.
		{"beyond two std", []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 50}, true, true},
		{"latest is smallest", []float64{5, 6, 1}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := make([]int, len(tt.dist)+1)
			c := newCluster(samples, tt.dist)
			if c.Out1 != tt.out1 || c.Out2 != tt.out2 {
				t.Errorf("Out1/Out2 = %v/%v, want %v/%v", c.Out1, c.Out2, tt.out1, tt.out2)
			}
			if c.Out2 && !c.Out1 {
				t.Error("Out2 set without Out1")
			}
		})
	}
}

func TestNewCluster_FinePrecisionGap(t *testing.T) {
	// A gap of 4e-4 at distance 1 is below half-precision resolution but
	// still moves the latest merge past one deviation.
	c := newCluster([]int{0, 1, 2, 3}, []float64{1, 1, 1.0004})

	if !c.Out1 || c.Out2 {
		t.Errorf("Out1/Out2 = %v/%v, want true/false", c.Out1, c.Out2)
	}
	if want := 0.0004 * math.Sqrt2 / 3; !almostEqual(c.DistStd, want, 1e-12) {
		t.Errorf("DistStd = %v, want %v", c.DistStd, want)
	}
}

func TestNewCluster_PopulationStd(t *testing.T) {
	c := newCluster([]int{0, 1, 2, 3}, []float64{1, 2, 4})
	if !almostEqual(c.DistAvg, 7.0/3.0, floatTol) {
		t.Errorf("DistAvg = %v, want %v", c.DistAvg, 7.0/3.0)
	}
	want := math.Sqrt(14.0 / 9.0)
	if !almostEqual(c.DistStd, want, floatTol) {
		t.Errorf("DistStd = %v, want %v", c.DistStd, want)
	}
}

func TestCluster_Placeholder(t *testing.T) {
	c := newMergedCluster([]int{0, 1, 2, 3}, []float64{1, 1, 9}, 4)
	p := c.placeholder()

	if p.Kind != Placeholder {
		t.Errorf("Kind = %v, want placeholder", p.Kind)
	}
	if p.Count != 4 || len(p.Samples) != 4 || len(p.SampleDist) != 3 {
		t.Errorf("placeholder membership not copied: %+v", p)
	}
	if p.DistAvg != 0 || p.DistStd != 0 || p.Out1 || p.Out2 {
		t.Errorf("placeholder should carry zero stats, got avg=%v std=%v out1=%v out2=%v",
			p.DistAvg, p.DistStd, p.Out1, p.Out2)
	}
	if _, ok := p.Merged(); ok {
		t.Error("placeholder should not report a merged id")
	}
	if id, ok := c.Merged(); !ok || id != 4 {
		t.Errorf("Merged() = (%d, %v), want (4, true)", id, ok)
	}
}

func TestClusterMap_LookupClamps(t *testing.T) {
	m := newClusterMap(2)
	a0 := newCluster([]int{0, 1}, []float64{1})
	a1 := newCluster([]int{0, 1, 2}, []float64{1, 2})
	b0 := newCluster([]int{3, 4}, []float64{1})
	m.set(ClusterPosition{Level: 0, ID: 0}, a0)
	m.set(ClusterPosition{Level: 1, ID: 0}, a1)
	m.set(ClusterPosition{Level: 0, ID: 1}, b0)

	tests := []struct {
		level, id int
		want      *Cluster
	}{
		{0, 0, a0},
		{1, 0, a1},
		{5, 0, a1},
		{-1, 0, a0},
		{3, 1, b0},
		{0, 2, nil},
	}
	for _, tt := range tests {
		if got := m.Lookup(tt.level, tt.id); got != tt.want {
			t.Errorf("Lookup(%d, %d) = %p, want %p", tt.level, tt.id, got, tt.want)
		}
	}

	if got := m.Get(ClusterPosition{Level: 1, ID: 1}); got != nil {
		t.Errorf("Get(1,1) = %p, want nil", got)
	}
	if m.NumLevels() != 2 {
		t.Errorf("NumLevels = %d, want 2", m.NumLevels())
	}
}

func TestClusterMap_SetDefault(t *testing.T) {
	m := newClusterMap(1)
	first := newCluster([]int{0, 1}, []float64{1})
	second := newCluster([]int{2, 3}, []float64{1})

	m.setDefault(ClusterPosition{Level: 0, ID: 0}, first)
	m.setDefault(ClusterPosition{Level: 0, ID: 0}, second)

	if got := m.Get(ClusterPosition{Level: 0, ID: 0}); got != first {
		t.Error("setDefault replaced an existing cluster")
	}
}
