// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/aclements/go-moremath/scale"
)

const (
	titleFontSize = 16
	labelFontSize = 12
	tickFontSize  = 10

	keyEntryHeight = 18
	keySwatchWidth = 24
	keyWidth       = 160
)

func expandScale(s *scale.Linear, min, max float64) {
	if s.Min == 0 && s.Max == 0 {
		s.Min, s.Max = min, max
	} else {
		s.Min = math.Min(s.Min, min)
		s.Max = math.Max(s.Max, max)
	}
}

// Render writes the chart as a standalone SVG document.
func (c *Chart) Render(w io.Writer) error {
	if len(c.series) == 0 {
		return fmt.Errorf("chart: no series to render")
	}
	order, err := c.keyOrder()
	if err != nil {
		return err
	}

	width, height := c.Width, c.Height
	if width == 0 {
		width = 800
	}
	if height == 0 {
		height = 400
	}
	lineWidth := c.Key.LineWidth
	if lineWidth == 0 {
		lineWidth = 2
	}

	// Data extents.
	var xext, yext scale.Linear
	for _, s := range c.series {
		for i := range s.Xs {
			expandScale(&xext, s.Xs[i], s.Xs[i])
			expandScale(&yext, s.Ys[i], s.Ys[i])
		}
	}
	if xext.Min == xext.Max {
		xext.Max = xext.Min + 1
	}
	if yext.Min == yext.Max {
		yext.Max = yext.Min + 1
	}

	top := 10.0
	if c.Title != "" {
		top += titleFontSize * 1.5
	}
	left, bottom := 50.0, 30.0
	right := width - keyWidth

	xOut := scale.Linear{Min: left, Max: right}
	yOut := scale.Linear{Min: height - bottom, Max: top}
	x := scale.QQ{Src: &xext, Dest: &xOut}
	y := scale.QQ{Src: &yext, Dest: &yOut}

	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g" font-family="sans-serif">`+"\n", width, height, width, height)
	if c.Title != "" {
		fmt.Fprintf(buf, `  <text x="%g" y="%g" font-size="%d" text-anchor="middle">%s</text>`+"\n", (left+right)/2, float64(titleFontSize)*1.2, titleFontSize, c.Title)
	}

	// Axes.
	fmt.Fprintf(buf, `  <path d="M%g %gV%gH%g" fill="none" stroke="black" />`+"\n", left, top, height-bottom, right)
	fmt.Fprintf(buf, `  <text x="%g" y="%g" font-size="%d" text-anchor="middle">%g</text>`+"\n", left, height-bottom+tickFontSize+4, tickFontSize, xext.Min)
	fmt.Fprintf(buf, `  <text x="%g" y="%g" font-size="%d" text-anchor="middle">%g</text>`+"\n", right, height-bottom+tickFontSize+4, tickFontSize, xext.Max)
	fmt.Fprintf(buf, `  <text x="%g" y="%g" font-size="%d" text-anchor="end">%g</text>`+"\n", left-4, y.Map(yext.Min), tickFontSize, yext.Min)
	fmt.Fprintf(buf, `  <text x="%g" y="%g" font-size="%d" text-anchor="end">%g</text>`+"\n", left-4, y.Map(yext.Max)+tickFontSize/2, tickFontSize, yext.Max)

	// Lines.
	for i, s := range c.series {
		fmt.Fprintf(buf, `  <polyline fill="none" stroke="%s" stroke-width="%g" points="`, seriesColor(i), lineWidth)
		for j := range s.Xs {
			if j > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%.2f,%.2f", x.Map(s.Xs[j]), y.Map(s.Ys[j]))
		}
		fmt.Fprintf(buf, `"><title>%s</title></polyline>`+"\n", s.Label)
	}

	switch c.Key.Placement {
	case PlacementEnds:
		c.renderEndLabels(buf, y, right, lineWidth)
	case PlacementUpper, PlacementCenter, PlacementLower:
		c.renderKeyBlock(buf, order, top, height-bottom, right, lineWidth)
	default:
		return fmt.Errorf("chart: invalid key placement %d", c.Key.Placement)
	}

	fmt.Fprint(buf, "</svg>\n")
	return buf.Flush()
}

// renderEndLabels labels each line at its right endpoint, sliding
// labels apart where they would collide.
func (c *Chart) renderEndLabels(buf io.Writer, y scale.QQ, right, lineWidth float64) {
	// Lay labels out bottom-up in endpoint order.
	order := make([]int, len(c.series))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		si, sj := c.series[order[i]], c.series[order[j]]
		// Values map top-down, so higher values sort first.
		return si.Ys[len(si.Ys)-1] > sj.Ys[len(sj.Ys)-1]
	})

	const labelHeight = labelFontSize * 5 / 4
	intervals := make([]interval, len(order))
	for i, si := range order {
		s := c.series[si]
		mid := y.Map(s.Ys[len(s.Ys)-1])
		intervals[i] = interval{mid - labelHeight/2, mid + labelHeight/2}
	}
	removeIntervalOverlaps(intervals)

	for i, si := range order {
		s := c.series[si]
		end := y.Map(s.Ys[len(s.Ys)-1])
		in := intervals[i]
		fmt.Fprintf(buf, `  <path d="M%g %gC%g %g,%g %g,%g %g" fill="none" stroke="%s" stroke-width="%g" />`+"\n",
			right, end,
			right+8, end,
			right+8, in.mid(),
			right+16, in.mid(),
			seriesColor(si), lineWidth)
		fmt.Fprintf(buf, `  <text x="%g" y="%g" font-size="%d" dominant-baseline="central">%s</text>`+"\n",
			right+20, in.mid(), labelFontSize, s.Label)
	}
}

// renderKeyBlock stacks the key in the right margin, anchored per the
// configured placement.
func (c *Chart) renderKeyBlock(buf io.Writer, order []int, top, bottom, right, lineWidth float64) {
	blockH := float64(len(order)) * keyEntryHeight
	if c.Key.Title != "" {
		blockH += keyEntryHeight
	}

	var yPos float64
	switch c.Key.Placement {
	case PlacementUpper:
		yPos = top
	case PlacementCenter:
		yPos = (top+bottom)/2 - blockH/2
	case PlacementLower:
		yPos = bottom - blockH
	}

	x0 := right + 12
	if c.Key.Title != "" {
		fmt.Fprintf(buf, `  <text x="%g" y="%g" font-size="%d" font-weight="bold" dominant-baseline="central">%s</text>`+"\n",
			x0, yPos+keyEntryHeight/2, labelFontSize, c.Key.Title)
		yPos += keyEntryHeight
	}
	for _, si := range order {
		mid := yPos + keyEntryHeight/2
		fmt.Fprintf(buf, `  <path d="M%g %gH%g" stroke="%s" stroke-width="%g" />`+"\n",
			x0, mid, x0+keySwatchWidth, seriesColor(si), lineWidth)
		fmt.Fprintf(buf, `  <text x="%g" y="%g" font-size="%d" dominant-baseline="central">%s</text>`+"\n",
			x0+keySwatchWidth+6, mid, labelFontSize, c.series[si].Label)
		yPos += keyEntryHeight
	}
}
