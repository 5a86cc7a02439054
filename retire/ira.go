// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package retire implements retirement-savings projection formulas:
// IRA contribution limits for a single filer, the CalPERS 2%-at-62
// pension formula, and a multi-year IRA growth ledger.
package retire

import "math"

// 2024 limits for a single filer.
// https://www.irs.gov/retirement-plans/plan-participant-employee/amount-of-roth-ira-contributions-that-you-can-make-for-2024
const (
	ContributionLimit = 7000
	rothPhaseOutStart = 146000
	rothPhaseOutEnd   = 161000
)

// RothContribution returns the allowed Roth IRA contribution for the
// given adjusted gross income: the full limit below the phase-out
// range, zero at or above its top, and a linear reduction in between.
func RothContribution(agi float64) float64 {
	switch {
	case agi < rothPhaseOutStart:
		return ContributionLimit
	case agi >= rothPhaseOutEnd:
		return 0
	}
	return ContributionLimit * (1 - (agi-rothPhaseOutStart)/(rothPhaseOutEnd-rothPhaseOutStart))
}

// TradContribution returns the traditional IRA contribution that
// fills whatever the Roth phase-out disallows, up to the annual
// limit.
func TradContribution(agi float64) float64 {
	return math.Abs(ContributionLimit - RothContribution(agi))
}

// RothContributionEach applies RothContribution elementwise.
func RothContributionEach(agis []float64) []float64 {
	out := make([]float64, len(agis))
	for i, agi := range agis {
		out[i] = RothContribution(agi)
	}
	return out
}

// TradContributionEach applies TradContribution elementwise.
func TradContributionEach(agis []float64) []float64 {
	out := make([]float64, len(agis))
	for i, agi := range agis {
		out[i] = TradContribution(agi)
	}
	return out
}
