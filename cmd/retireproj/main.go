// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command retireproj projects retirement savings from a CSV of
// projected annual income and market growth.
//
// The input must have a header row naming an income column and a
// growth column (fractional rates, e.g. 0.07 for 7%). Each row is one
// year. The projection contributes the income-dependent IRA limits to
// a Roth and a traditional account, compounds both by the year's
// growth, and reports the year-by-year balances together with the
// CalPERS pension the income history would earn.
//
// Usage:
//
//	retireproj [flags] income.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dmarchetti/sfstats/retire"
)

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	flagIncomeCol := flag.String("income-col", "income", "`name` of the income column")
	flagGrowthCol := flag.String("growth-col", "growth", "`name` of the growth-rate column")
	flagPeriods := flag.Int("periods", 0, "years to project; 0 means every input row")
	flagStartAge := flag.Float64("start-age", 30, "age at the first projected year")
	flagRoth := flag.Float64("roth", 26000, "starting Roth IRA balance")
	flagTrad := flag.Float64("trad", 0, "starting traditional IRA balance")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] income.csv\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	incomes, growth, err := loadColumns(flag.Arg(0), *flagIncomeCol, *flagGrowthCol)
	if err != nil {
		log.Fatal(err)
	}

	periods := *flagPeriods
	if periods == 0 {
		periods = len(incomes)
	}

	ledger, err := retire.GrowIRA(incomes, growth, periods,
		decimal.NewFromFloat(*flagRoth), decimal.NewFromFloat(*flagTrad))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%4s %12s %14s %14s\n", "year", "income", "roth", "traditional")
	for i, bal := range ledger {
		fmt.Printf("%4d %12.0f %14s %14s\n", i+1, incomes[i],
			bal.Roth.StringFixed(2), bal.Trad.StringFixed(2))
	}

	age := *flagStartAge + float64(periods)
	benefit := retire.Benefit(age, *flagStartAge, incomes[:periods])
	fmt.Printf("\nCalPERS at age %.0f: %.1f%% of final compensation, %.0f/year\n",
		age, retire.PercentOfIncome(age, *flagStartAge)*100, benefit)
}

// loadColumns reads the named numeric columns from a CSV file with a
// header row.
func loadColumns(path, incomeCol, growthCol string) (incomes, growth []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: reading header: %w", path, err)
	}
	incomeIdx, growthIdx := -1, -1
	for i, name := range header {
		switch name {
		case incomeCol:
			incomeIdx = i
		case growthCol:
			growthIdx = i
		}
	}
	if incomeIdx < 0 {
		return nil, nil, fmt.Errorf("%s: no column %q", path, incomeCol)
	}
	if growthIdx < 0 {
		return nil, nil, fmt.Errorf("%s: no column %q", path, growthCol)
	}

	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		income, err := strconv.ParseFloat(row[incomeIdx], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: bad income %q", path, line, row[incomeIdx])
		}
		rate, err := strconv.ParseFloat(row[growthIdx], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: bad growth rate %q", path, line, row[growthIdx])
		}
		incomes = append(incomes, income)
		growth = append(growth, rate)
	}
	return incomes, growth, nil
}
