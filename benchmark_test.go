package dataeval

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func generateBenchData(n, dims int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, dims)
		for j := range data[i] {
			data[i][j] = rng.Float64() * 100
		}
	}
	return data
}

func generateBenchMatrix(n, dims int) *mat.Dense {
	rng := rand.New(rand.NewSource(42))
	raw := make([]float64, n*dims)
	for i := range raw {
		raw[i] = rng.Float64() * 100
	}
	return mat.NewDense(n, dims, raw)
}

// --- Pairwise Distances ---

func benchPairwiseDistances(b *testing.B, n, workers int) {
	b.Helper()
	data := generateBenchMatrix(n, 2)
	metric := EuclideanMetric{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ComputePairwiseDistancesParallel(data, metric, workers)
	}
}

func BenchmarkPairwiseDistances_100(b *testing.B)          { benchPairwiseDistances(b, 100, 1) }
func BenchmarkPairwiseDistances_1000(b *testing.B)         { benchPairwiseDistances(b, 1000, 1) }
func BenchmarkPairwiseDistancesParallel_1000(b *testing.B) { benchPairwiseDistances(b, 1000, 4) }

// --- Linkage ---

func benchLinkage(b *testing.B, n int) {
	b.Helper()
	dist := ComputePairwiseDistances(generateBenchMatrix(n, 2), EuclideanMetric{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Linkage(dist, n)
	}
}

func BenchmarkLinkage_100(b *testing.B) { benchLinkage(b, 100) }
func BenchmarkLinkage_500(b *testing.B) { benchLinkage(b, 500) }

// --- Cluster tree ---

func benchClusterTree(b *testing.B, n int) {
	b.Helper()
	c, err := NewClusterer(generateBenchData(n, 2), DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.CreateClusters()
	}
}

func BenchmarkClusterTree_100(b *testing.B) { benchClusterTree(b, 100) }
func BenchmarkClusterTree_500(b *testing.B) { benchClusterTree(b, 500) }

// --- Full pipeline ---

func benchRun(b *testing.B, n int) {
	b.Helper()
	data := generateBenchData(n, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := NewClusterer(data, DefaultConfig())
		if err != nil {
			b.Fatal(err)
		}
		c.Run()
	}
}

func BenchmarkRun_100(b *testing.B) { benchRun(b, 100) }
func BenchmarkRun_300(b *testing.B) { benchRun(b, 300) }

// --- BER ---

func benchBER(b *testing.B, n int, method Method) {
	b.Helper()
	data := generateBenchData(n, 2)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i % 3
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BER(data, labels, method, DefaultConfig()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBER_MST_500(b *testing.B) { benchBER(b, 500, MethodMST) }
func BenchmarkBER_FNN_500(b *testing.B) { benchBER(b, 500, MethodFNN) }
