// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrests

import (
	"sort"

	"github.com/dmarchetti/sfstats/socrata"
)

// Clean converts raw dataset rows into the cleaned arrest set: only
// rows resolved by an adult cite or arrest are kept, records are
// sorted by incident time, and each record's associated-incident
// count is filled in.
//
// Rows with a malformed incident timestamp fail the whole clean; the
// portal serves a uniform timestamp format, so a malformed row means
// a corrupt pull rather than dirty data.
func Clean(raw []socrata.Record) ([]Record, error) {
	var records []Record
	for _, row := range raw {
		if row["resolution"] != ResolutionArrest {
			continue
		}
		rec, err := parseRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].IncidentTime.Before(records[j].IncidentTime)
	})

	// Count rows per incident ID. One incident produces one row
	// per incident code, so this measures how many charges are
	// associated with each arrest.
	counts := make(map[string]int)
	for i := range records {
		counts[records[i].IncidentID]++
	}
	for i := range records {
		records[i].AssociatedIncidents = counts[records[i].IncidentID]
	}

	return records, nil
}
