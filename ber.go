package dataeval

import (
	"fmt"
	"math"
)

const (
	minBERClasses = 2
	maxBERClasses = 10
)

// BEROutput is an estimate of the Bayes Error Rate of a labelled dataset.
type BEROutput struct {
	// BER is the upper bound.
	BER float64
	// BERLower is the lower bound. When the disagreement rate is past the
	// range where the bound is defined, the square root term is clamped
	// at 0 and BERLower saturates at (k-1)/k for k classes.
	BERLower float64
}

// BER estimates upper and lower bounds on the Bayes Error Rate of data
// with the given labels, using the Friedman-Rafsky MST statistic
// (MethodMST) or the first nearest neighbour statistic (MethodFNN).
// labels must hold between 2 and 10 distinct classes.
//
// See "Learning to Bound the Multi-class Bayes Error", Theorems 3 and 4
// (https://arxiv.org/abs/1811.06419).
func BER(data [][]float64, labels []int, method Method, cfg Config) (*BEROutput, error) {
	cfg, err := prepareConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	m, err := newFeatureMatrix(data, 2)
	if err != nil {
		return nil, err
	}
	n, _ := m.Dims()
	if len(labels) != n {
		return nil, fmt.Errorf("%w: got %d labels for %d samples", ErrInvalidLabels, len(labels), n)
	}
	classes := countClasses(labels)
	if classes < minBERClasses {
		return nil, fmt.Errorf("%w: label vector contains less than %d classes", ErrInvalidLabels, minBERClasses)
	}
	if classes > maxBERClasses {
		return nil, fmt.Errorf("%w: label vector contains more than %d classes", ErrInvalidLabels, maxBERClasses)
	}

	dist := ComputePairwiseDistancesParallel(m, cfg.Metric, cfg.Workers)
	mismatches := countLabelDisagreements(dist, n, labels, method)

	upper, lower := berBounds(mismatches, n, classes)
	return &BEROutput{BER: upper, BERLower: lower}, nil
}

// berBounds turns a disagreement count over n samples with k classes into
// the upper and lower Bayes Error Rate bounds.
func berBounds(mismatches, n, k int) (upper, lower float64) {
	deltas := float64(mismatches) / float64(2*n)
	upper = 2 * deltas
	kf := float64(k)
	lower = ((kf - 1) / kf) * (1 - math.Sqrt(max(1-2*(kf/(kf-1))*deltas, 0)))
	return upper, lower
}

func countClasses(labels []int) int {
	seen := make(map[int]struct{})
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}
