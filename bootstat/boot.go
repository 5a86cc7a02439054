// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstat

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"
)

// An InvalidInputError reports a malformed argument to Compare. It is
// always returned before any resampling has happened.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return "bootstat: invalid input: " + e.Msg
}

// Compare estimates the sampling distribution of the difference of
// means between two temporally aligned series using a moving-block
// bootstrap.
//
// A plain bootstrap resamples individual observations, which
// understates variance when the series are autocorrelated. Compare
// instead resamples contiguous blocks of blockSize observations:
// each replicate draws n/blockSize block start positions uniformly
// with replacement from [0, n-blockSize], extracts the same runs
// from both series, and recomputes mean(a')-mean(b') on the
// concatenated runs.
//
// When n is not a multiple of blockSize the resampled series is
// floor(n/blockSize)*blockSize long, shorter than n. The replicate
// statistic is computed over the shorter series rather than padding
// to n. This slightly changes the effective sample size per
// replicate; it is a known approximation, kept for continuity with
// the analysis this package was extracted from.
//
// rng supplies all randomness. Replicates are reproducible exactly
// when rng is explicitly seeded. If rng is nil, Compare uses a
// time-seeded source and the result is not reproducible.
func Compare(rng *rand.Rand, a, b []float64, blockSize, replicates int) (*Comparison, error) {
	n := len(a)
	if len(b) != n {
		return nil, &InvalidInputError{fmt.Sprintf("series lengths differ: %d != %d", n, len(b))}
	}
	if blockSize < 1 || blockSize > n {
		return nil, &InvalidInputError{fmt.Sprintf("block size %d out of range [1, %d]", blockSize, n)}
	}
	if replicates < 1 {
		return nil, &InvalidInputError{fmt.Sprintf("replicate count %d < 1", replicates)}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	observed := stat.Mean(a, nil) - stat.Mean(b, nil)

	// Number of blocks per replicate. k*blockSize <= n.
	k := n / blockSize
	ra := make([]float64, 0, k*blockSize)
	rb := make([]float64, 0, k*blockSize)
	diffs := make([]float64, replicates)
	for i := range diffs {
		ra, rb = ra[:0], rb[:0]
		for j := 0; j < k; j++ {
			start := rng.Intn(n - blockSize + 1)
			ra = append(ra, a[start:start+blockSize]...)
			rb = append(rb, b[start:start+blockSize]...)
		}
		if len(ra) > n {
			ra, rb = ra[:n], rb[:n]
		}
		diffs[i] = stat.Mean(ra, nil) - stat.Mean(rb, nil)
	}

	return newComparison(observed, diffs), nil
}

// autoCorrelation returns the lag-k autocorrelation of xs.
func autoCorrelation(xs []float64, k int) float64 {
	n := len(xs)
	mean := stat.Mean(xs, nil)
	var variance float64
	for _, v := range xs {
		d := v - mean
		variance += d * d
	}
	if variance == 0 {
		return 0
	}
	var sum float64
	for i := k; i < n; i++ {
		sum += (xs[i] - mean) * (xs[i-k] - mean)
	}
	return sum / variance
}

// AutoBlockSize suggests a block size for Compare: the smallest lag
// at which the autocorrelation of xs falls inside the approximate
// 95% white-noise band ±2/sqrt(n). Blocks of that length capture the
// bulk of the serial dependence. The result is always in [1, len(xs)].
//
// This is a convenience heuristic; Compare accepts any valid block
// size and the choice is ultimately the caller's.
func AutoBlockSize(xs []float64) int {
	n := len(xs)
	if n < 2 {
		return 1
	}
	cutoff := 2 / math.Sqrt(float64(n))
	for lag := 1; lag < n; lag++ {
		r := autoCorrelation(xs, lag)
		if math.Abs(r) < cutoff {
			return lag
		}
	}
	return n
}
