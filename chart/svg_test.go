// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	c := New("Arrests per day")
	if err := c.Add("burglary", []float64{0, 1, 2}, []float64{3, 5, 4}); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("robbery", []float64{0, 1, 2}, []float64{1, 2, 2}); err != nil {
		t.Fatal(err)
	}
	c.Key = Key{Title: "Category", Placement: PlacementCenter, Order: OrderDescending}

	var buf strings.Builder
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	svg := buf.String()

	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output is not a standalone SVG document")
	}
	if strings.Count(svg, "<polyline") != 2 {
		t.Errorf("got %d polylines, want 2", strings.Count(svg, "<polyline"))
	}
	for _, want := range []string{"Arrests per day", "Category", "burglary", "robbery"} {
		if !strings.Contains(svg, want) {
			t.Errorf("output is missing %q", want)
		}
	}
}

func TestRenderEndLabels(t *testing.T) {
	c := New("")
	// Lines ending at the same value force the labels apart.
	if err := c.Add("a", []float64{0, 1}, []float64{2, 2}); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("b", []float64{0, 1}, []float64{0, 2}); err != nil {
		t.Fatal(err)
	}
	c.Key = Key{Placement: PlacementEnds}

	var buf strings.Builder
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "<text"); got < 2 {
		t.Errorf("got %d labels, want at least 2", got)
	}
}

func TestRenderErrors(t *testing.T) {
	c := New("")
	var buf strings.Builder
	if err := c.Render(&buf); err == nil {
		t.Error("expected error for empty chart")
	}

	if err := c.Add("a", []float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched series lengths")
	}
	if err := c.Add("a", nil, nil); err == nil {
		t.Error("expected error for empty series")
	}

	if err := c.Add("a", []float64{0, 1}, []float64{1, 2}); err != nil {
		t.Fatal(err)
	}
	c.Key = Key{Placement: Placement(42)}
	if err := c.Render(&buf); err == nil {
		t.Error("expected error for invalid placement")
	}
}
