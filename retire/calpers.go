// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retire

// CalPERS 2%-at-62 formula for state miscellaneous members.
// https://www.calpers.ca.gov/docs/forms-publications/benefit-factors-state-misc-industrial-2-at-62.pdf

// ContributionRate is the employee contribution rate.
const ContributionRate = 0.08

// Contribution returns the annual employee pension contribution for
// the given income.
func Contribution(agi float64) float64 {
	return ContributionRate * agi
}

// BenefitFactor returns the percent-of-income benefit factor per year
// of service at the given retirement age: zero before age 52, 2.5%
// from age 67 on, and 1% plus 0.1% per year past 52 (plus any
// existing service credit) in between.
func BenefitFactor(age, existingServiceCredit float64) float64 {
	switch {
	case age >= 67:
		return 0.025
	case age < 52:
		return 0
	}
	return 0.01 + (age-52+existingServiceCredit)*0.001
}

// PercentOfIncome returns the fraction of final compensation the
// pension replaces for a member retiring at age having started at
// startAge, capped at the full final compensation.
func PercentOfIncome(age, startAge float64) float64 {
	pct := BenefitFactor(age, 1) * (age - startAge)
	if pct > 1 {
		return 1
	}
	return pct
}

// FinalCompensation returns the benefit base: the mean of the last
// three entries of incomes (CalPERS uses the highest consecutive
// 36-month average; for a monotone career the trailing years are the
// highest). Shorter series average what they have.
func FinalCompensation(incomes []float64) float64 {
	n := len(incomes)
	if n == 0 {
		return 0
	}
	start := n - 3
	if start < 0 {
		start = 0
	}
	var sum float64
	for _, v := range incomes[start:] {
		sum += v
	}
	return sum / float64(n-start)
}

// Benefit returns the annual pension benefit for a member retiring at
// age having started at startAge with the given income history.
func Benefit(age, startAge float64, incomes []float64) float64 {
	return PercentOfIncome(age, startAge) * FinalCompensation(incomes)
}
