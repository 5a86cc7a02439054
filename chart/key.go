// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"sort"
)

// keyOrder returns the indices of c.series in key order.
func (c *Chart) keyOrder() ([]int, error) {
	if c.Key.Explicit != nil {
		byLabel := make(map[string]int, len(c.series))
		for i, s := range c.series {
			byLabel[s.Label] = i
		}
		order := make([]int, 0, len(c.Key.Explicit))
		for _, label := range c.Key.Explicit {
			i, ok := byLabel[label]
			if !ok {
				return nil, fmt.Errorf("chart: key order names unknown series %q", label)
			}
			order = append(order, i)
		}
		return order, nil
	}

	order := make([]int, len(c.series))
	for i := range order {
		order[i] = i
	}
	switch c.Key.Order {
	case OrderDefault:
	case OrderReverse:
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	case OrderDescending:
		sort.SliceStable(order, func(i, j int) bool {
			si, sj := c.series[order[i]], c.series[order[j]]
			return si.Ys[len(si.Ys)-1] > sj.Ys[len(sj.Ys)-1]
		})
	default:
		return nil, fmt.Errorf("chart: invalid key order %d", c.Key.Order)
	}
	return order, nil
}

type interval struct {
	start, end float64
}

func (i interval) mid() float64 {
	return (i.start + i.end) / 2
}

// removeIntervalOverlaps adjusts ints, which must be sorted by start,
// so no intervals overlap, while minimizing the total movement of the
// intervals. Overlapping runs are spread out around the mean of their
// original centers, iterating until the layout settles.
func removeIntervalOverlaps(ints []interval) {
	nints := make([]interval, len(ints))
	copy(nints, ints)

	supers := make([]int, 0, len(ints)+1)
	for {
		// Find runs of overlapping intervals.
		supers = append(supers[:0], 0)
		overlaps := 0
		for i := 1; i < len(nints); i++ {
			if nints[i].start < nints[i-1].end {
				overlaps++
			} else if nints[i].start > nints[i-1].end {
				supers = append(supers, i)
			}
		}
		supers = append(supers, len(nints))
		if overlaps == 0 {
			copy(ints, nints)
			return
		}

		// Spread each run out around the center of its original
		// intervals.
		for i := 1; i < len(supers); i++ {
			super := nints[supers[i-1]:supers[i]]
			if len(super) == 1 {
				continue
			}
			orig := ints[supers[i-1]:supers[i]]

			var height, midSum float64
			for _, in := range orig {
				height += in.end - in.start
				midSum += in.mid()
			}
			mid := midSum / float64(len(orig))

			pos := mid - height/2
			for j := range super {
				h := orig[j].end - orig[j].start
				super[j] = interval{pos, pos + h}
				pos += h
			}
		}
	}
}
