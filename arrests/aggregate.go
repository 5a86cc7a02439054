// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrests

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// A Period is a fixed resampling interval.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
)

// ParsePeriod parses "day", "week", or "month".
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "day":
		return Daily, nil
	case "week":
		return Weekly, nil
	case "month":
		return Monthly, nil
	}
	return 0, fmt.Errorf("arrests: unknown period %q (want day, week, or month)", s)
}

func (p Period) String() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

// Truncate returns the start of the period containing t. Weeks start
// on Monday.
func (p Period) Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	switch p {
	case Daily:
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	case Weekly:
		day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	}
	panic("invalid period")
}

// Next returns the start of the period after the period starting at t.
func (p Period) Next(t time.Time) time.Time {
	switch p {
	case Daily:
		return t.AddDate(0, 0, 1)
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Monthly:
		return t.AddDate(0, 1, 0)
	}
	panic("invalid period")
}

type cell struct {
	counts       map[string]int
	incidents    map[string]struct{}
	postPandemic bool
}

// An Aggregate resamples arrest records into per-period counts, one
// count per metric plus the number of distinct incidents.
type Aggregate struct {
	period  Period
	metrics []Metric

	// cells maps a period start to its accumulated counts.
	cells map[time.Time]*cell
}

// NewAggregate returns an empty aggregate over the given period and
// the package's Metrics table.
func NewAggregate(period Period) *Aggregate {
	return &Aggregate{
		period:  period,
		metrics: Metrics,
		cells:   make(map[time.Time]*cell),
	}
}

// Add accumulates one record.
func (a *Aggregate) Add(r *Record) {
	key := a.period.Truncate(r.IncidentTime)
	c := a.cells[key]
	if c == nil {
		c = &cell{
			counts:    make(map[string]int),
			incidents: make(map[string]struct{}),
		}
		a.cells[key] = c
	}
	for _, m := range a.metrics {
		if m.Match(r) {
			c.counts[m.Name]++
		}
	}
	c.incidents[r.IncidentID] = struct{}{}
	if r.PostPandemic() {
		// Max of the indicator over the period: one
		// post-pandemic record marks the whole period.
		c.postPandemic = true
	}
}

// AddAll accumulates every record in the study windows.
func (a *Aggregate) AddAll(records []Record) {
	for i := range records {
		if records[i].InStudyWindow() {
			a.Add(&records[i])
		}
	}
}

// Periods returns the observed period starts in time order.
func (a *Aggregate) Periods() []time.Time {
	periods := make([]time.Time, 0, len(a.cells))
	for t := range a.cells {
		periods = append(periods, t)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })
	return periods
}

// Count returns the count of metric in the period starting at t.
// Periods with no records count zero.
func (a *Aggregate) Count(t time.Time, metric string) int {
	c := a.cells[t]
	if c == nil {
		return 0
	}
	if metric == "incidents" {
		return len(c.incidents)
	}
	return c.counts[metric]
}

// Column returns the count series of metric over the observed
// periods, aligned with Periods.
func (a *Aggregate) Column(metric string) []float64 {
	periods := a.Periods()
	xs := make([]float64, len(periods))
	for i, t := range periods {
		xs[i] = float64(a.Count(t, metric))
	}
	return xs
}

// Study window bounds, half-open.
var (
	preWindowStart  = time.Date(2018, time.January, 1, 0, 0, 0, 0, time.Local)
	preWindowEnd    = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.Local)
	postWindowStart = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.Local)
	postWindowEnd   = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
)

// window returns the zero-filled count series of metric over every
// period in [start, end).
func (a *Aggregate) window(metric string, start, end time.Time) []float64 {
	var xs []float64
	t := a.period.Truncate(start)
	if t.Before(start) {
		t = a.period.Next(t)
	}
	for t.Before(end) {
		xs = append(xs, float64(a.Count(t, metric)))
		t = a.period.Next(t)
	}
	return xs
}

// PairedWindows returns the count series of metric over the pre- and
// post-pandemic study windows, zero-filled for empty periods and
// truncated to a common length so the pair is valid bootstrap input.
// (Weekly periods do not tile the two windows identically, so the
// longer series can exceed the shorter by one.)
func (a *Aggregate) PairedWindows(metric string) (pre, post []float64) {
	pre = a.window(metric, preWindowStart, preWindowEnd)
	post = a.window(metric, postWindowStart, postWindowEnd)
	if len(pre) > len(post) {
		pre = pre[:len(post)]
	} else if len(post) > len(pre) {
		post = post[:len(pre)]
	}
	return pre, post
}

// Table returns the aggregate as a dataframe: one row per observed
// period with the period start, each metric count, the distinct
// incident count, and the post-pandemic indicator.
func (a *Aggregate) Table() dataframe.DataFrame {
	periods := a.Periods()

	labels := make([]string, len(periods))
	post := make([]int, len(periods))
	incidents := make([]int, len(periods))
	for i, t := range periods {
		labels[i] = t.Format("2006-01-02")
		incidents[i] = a.Count(t, "incidents")
		if a.cells[t].postPandemic {
			post[i] = 1
		}
	}

	cols := []series.Series{series.New(labels, series.String, "period")}
	for _, m := range a.metrics {
		counts := make([]int, len(periods))
		for i, t := range periods {
			counts[i] = a.Count(t, m.Name)
		}
		cols = append(cols, series.New(counts, series.Int, m.Name))
	}
	cols = append(cols,
		series.New(incidents, series.Int, "incidents"),
		series.New(post, series.Int, "post_pandemic"))
	return dataframe.New(cols...)
}
