// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bootstat implements a moving-block bootstrap for comparing
// the means of two temporally aligned series.
//
// The block bootstrap preserves short-range dependence by resampling
// contiguous runs of observations rather than individual points,
// which makes its variance estimates honest for autocorrelated data
// such as daily event counts. Compare produces the observed
// difference of means and a bootstrap distribution of the statistic;
// Comparison turns that distribution into confidence intervals and
// empirical p-values, with optional Bonferroni adjustment when
// several comparisons are run as a family.
package bootstat
