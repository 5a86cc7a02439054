// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders time-series line charts as standalone SVG,
// with control over the key: entry order, placement outside the plot
// area, and direct labeling of line endpoints.
package chart

import (
	"fmt"
	"image/color"
)

// An Order determines how key entries are arranged.
type Order int

const (
	// OrderDefault keeps series in the order they were added.
	OrderDefault Order = iota

	// OrderReverse reverses the added order.
	OrderReverse

	// OrderDescending sorts by each series' final value,
	// descending, so the key reads top-to-bottom like the right
	// edge of the chart.
	OrderDescending
)

// A Placement positions the key relative to the plot area.
type Placement int

const (
	// PlacementEnds labels each line directly at its right
	// endpoint instead of drawing a separate key block.
	PlacementEnds Placement = iota

	// PlacementUpper, PlacementCenter, and PlacementLower stack
	// the key in the right margin, anchored to the top, middle,
	// or bottom of the plot area.
	PlacementUpper
	PlacementCenter
	PlacementLower
)

// A Key configures the chart key.
type Key struct {
	Title     string
	Order     Order
	Placement Placement

	// Explicit, if non-nil, overrides Order with an exact label
	// order. Every label must name an added series.
	Explicit []string

	// LineWidth is the stroke width of key swatches and chart
	// lines. Zero means 2.
	LineWidth float64
}

// A Series is one labeled line.
type Series struct {
	Label string
	Xs    []float64
	Ys    []float64
}

// A Chart is a collection of line series sharing one coordinate
// system.
type Chart struct {
	Title  string
	Width  float64 // pixels; zero means 800
	Height float64 // pixels; zero means 400
	Key    Key

	series []Series
}

// New returns an empty chart.
func New(title string) *Chart {
	return &Chart{Title: title}
}

// Add appends a line series. Xs and Ys must be the same nonzero
// length.
func (c *Chart) Add(label string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("chart: series %q: %d x values, %d y values", label, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("chart: series %q is empty", label)
	}
	c.series = append(c.series, Series{label, xs, ys})
	return nil
}

// Qualitative palette from Color Brewer.
var set1_9 = []color.RGBA{
	{228, 26, 28, 255}, {55, 126, 184, 255}, {77, 175, 74, 255},
	{152, 78, 163, 255}, {255, 127, 0, 255}, {255, 255, 51, 255},
	{166, 86, 40, 255}, {247, 129, 191, 255}, {153, 153, 153, 255},
}

// seriesColor returns the stroke color of the i'th added series.
// Colors follow insertion order so reordering the key never recolors
// the lines.
func seriesColor(i int) string {
	c := set1_9[i%len(set1_9)]
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
