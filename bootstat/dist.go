// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Comparison is the result of a block-bootstrap comparison of two
// series.
type Comparison struct {
	// Observed is the difference of means computed once on the
	// full, unresampled series. It is deterministic given the
	// inputs.
	Observed float64

	// Diffs is the bootstrap distribution: one difference of
	// means per replicate, in replicate order.
	Diffs []float64

	sample stats.Sample
}

func newComparison(observed float64, diffs []float64) *Comparison {
	samp := stats.Sample{Xs: append([]float64(nil), diffs...)}
	// Speed up order statistics.
	samp.Sort()
	return &Comparison{
		Observed: observed,
		Diffs:    diffs,
		sample:   samp,
	}
}

// Interval returns a percentile confidence interval of the bootstrap
// distribution at the given confidence level (e.g., 0.95).
//
// tests is the number of comparisons being run together. When it is
// greater than one, the tail width is Bonferroni-adjusted by dividing
// the significance level by tests, so the family of intervals jointly
// holds at the requested confidence. Pass 1 for a single comparison.
func (c *Comparison) Interval(confidence float64, tests int) (lo, hi float64) {
	alpha := 1 - confidence
	if tests > 1 {
		alpha /= float64(tests)
	}
	return c.sample.Quantile(alpha / 2), c.sample.Quantile(1 - alpha/2)
}

// PValue returns a two-sided empirical p-value for the observed
// difference under the null hypothesis of no difference in means.
//
// The bootstrap distribution is centered on its own mean to
// approximate the null, and the p-value is the fraction of replicates
// at least as extreme as the observed difference, with the standard
// +1 correction so the result is never exactly zero.
func (c *Comparison) PValue() float64 {
	center := c.sample.Mean()
	extreme := 0
	for _, d := range c.Diffs {
		if math.Abs(d-center) >= math.Abs(c.Observed) {
			extreme++
		}
	}
	return float64(extreme+1) / float64(len(c.Diffs)+1)
}

// Significant reports whether zero lies outside the percentile
// confidence interval of the bootstrap distribution, Bonferroni
// adjusted for tests comparisons. The distribution is centered near
// the observed difference, so this tests whether the difference is
// distinguishable from no change.
func (c *Comparison) Significant(confidence float64, tests int) bool {
	lo, hi := c.Interval(confidence, tests)
	return lo > 0 || hi < 0
}
