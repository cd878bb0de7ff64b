// Package dataeval provides data-quality metrics for machine learning
// datasets given as N×D feature matrices: raw samples flattened to vectors,
// or embeddings produced by an external model.
//
// # Outliers and duplicates
//
// [Clusterer] builds the single-linkage hierarchy of the samples, replays
// it as a tree of clusters with per-level merge statistics, and judges each
// cluster-cluster merge against the spread of intra-cluster distances.
// Samples that join late and far are reported as outliers; pairs closer
// than the typical intra-cluster spread are reported as duplicates.
//
//	c, err := dataeval.NewClusterer(data, dataeval.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	result := c.Run()
//	// result.Outliers, result.PotentialOutliers: sorted sample indices
//	// result.Duplicates, result.NearDuplicates: sorted groups of indices
//
// The stages can also be driven one by one:
//
//	levels := c.LastMergeLevels()
//	outliers, potential := c.FindOutliers(levels)
//	exact, near := c.FindDuplicates(levels)
//
// # Bayes Error Rate and divergence
//
// [BER] bounds the irreducible classification error of a labelled dataset
// and [Divergence] estimates how separable two datasets are. Both count
// label disagreements along a minimum spanning tree ([MethodMST]) or
// between first nearest neighbours ([MethodFNN]):
//
//	ber, err := dataeval.BER(data, labels, dataeval.MethodFNN, dataeval.DefaultConfig())
//	div, err := dataeval.Divergence(train, test, dataeval.MethodMST, dataeval.DefaultConfig())
//
// All entry points hold the full pairwise distance matrix in memory, so
// memory grows with the square of the number of samples.
package dataeval
