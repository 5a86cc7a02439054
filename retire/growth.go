// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retire

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// A Balance is the pair of IRA balances recorded for one period,
// after that period's contribution and before its market growth.
type Balance struct {
	Roth decimal.Decimal
	Trad decimal.Decimal
}

// GrowIRA projects Roth and traditional IRA balances over periods
// years. Each period contributes the income-dependent limit to both
// accounts, records the balances, then compounds them by that
// period's market growth rate.
//
// incomes and growth must each have at least periods elements.
// Balances are exact decimals so a long projection doesn't accumulate
// float drift on the money arithmetic.
func GrowIRA(incomes, growth []float64, periods int, roth, trad decimal.Decimal) ([]Balance, error) {
	if periods < 0 {
		return nil, fmt.Errorf("retire: negative period count %d", periods)
	}
	if len(incomes) < periods || len(growth) < periods {
		return nil, fmt.Errorf("retire: %d periods need %d incomes and growth rates, have %d and %d",
			periods, periods, len(incomes), len(growth))
	}

	ledger := make([]Balance, periods)
	for i := 0; i < periods; i++ {
		roth = roth.Add(decimal.NewFromFloat(RothContribution(incomes[i])))
		trad = trad.Add(decimal.NewFromFloat(TradContribution(incomes[i])))
		ledger[i] = Balance{Roth: roth, Trad: trad}

		rate := decimal.NewFromFloat(growth[i])
		roth = roth.Add(roth.Mul(rate))
		trad = trad.Add(trad.Mul(rate))
	}
	return ledger, nil
}
