package dataeval

import "fmt"

// DivergenceOutput is the Dp divergence between two datasets.
type DivergenceOutput struct {
	// DpDivergence lies in [0, 1]: 0 for indistinguishable datasets, 1 for
	// fully separable ones.
	DpDivergence float64
	// Errors counts MST edges or nearest-neighbour links that cross from
	// one dataset to the other.
	Errors int
}

// Divergence estimates the Dp divergence between datasets a and b, which
// must have the same number of features. See https://arxiv.org/abs/1412.6534.
func Divergence(a, b [][]float64, method Method, cfg Config) (*DivergenceOutput, error) {
	cfg, err := prepareConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	ma, err := newFeatureMatrix(a, 1)
	if err != nil {
		return nil, fmt.Errorf("dataset a: %w", err)
	}
	mb, err := newFeatureMatrix(b, 1)
	if err != nil {
		return nil, fmt.Errorf("dataset b: %w", err)
	}
	na, da := ma.Dims()
	nb, db := mb.Dims()
	if da != db {
		return nil, fmt.Errorf("%w: datasets have %d and %d features", ErrInvalidInput, da, db)
	}

	stacked := stackRows(ma, mb)
	labels := make([]int, na+nb)
	for i := na; i < len(labels); i++ {
		labels[i] = 1
	}

	dist := ComputePairwiseDistancesParallel(stacked, cfg.Metric, cfg.Workers)
	mismatches := countLabelDisagreements(dist, na+nb, labels, method)

	return &DivergenceOutput{
		DpDivergence: dpDivergence(mismatches, na, nb),
		Errors:       mismatches,
	}, nil
}

func dpDivergence(mismatches, n, m int) float64 {
	nf, mf := float64(n), float64(m)
	return max(0, 1-((mf+nf)/(2*mf*nf))*float64(mismatches))
}
