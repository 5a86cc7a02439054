// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/sfstats/socrata"
)

func raw(id, incidentID, ts, category, subcategory, description, resolution string) socrata.Record {
	return socrata.Record{
		"row_id":               id,
		"incident_id":          incidentID,
		"incident_datetime":    ts,
		"report_datetime":      ts,
		"incident_category":    category,
		"incident_subcategory": subcategory,
		"incident_description": description,
		"resolution":           resolution,
	}
}

func TestClean(t *testing.T) {
	records, err := Clean([]socrata.Record{
		raw("r1", "i1", "2019-06-02T10:00:00.000", "Burglary", "", "", ResolutionArrest),
		raw("r2", "i2", "2018-01-05T08:30:00.000", "Robbery", "", "", ResolutionArrest),
		raw("r3", "i3", "2019-01-01T00:00:00.000", "Larceny Theft", "", "", "Open or Active"),
		raw("r4", "i1", "2019-06-02T10:00:00.000", "Weapons Carrying Etc", "", "", ResolutionArrest),
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Sorted by incident time: r2 first.
	assert.Equal(t, "r2", records[0].RowID)
	// i1 appears on two rows; both carry the association count.
	assert.Equal(t, 2, records[1].AssociatedIncidents)
	assert.Equal(t, 2, records[2].AssociatedIncidents)
	assert.Equal(t, 1, records[0].AssociatedIncidents)
}

func TestCleanMalformedTimestamp(t *testing.T) {
	_, err := Clean([]socrata.Record{
		raw("r1", "i1", "06/02/2019", "Burglary", "", "", ResolutionArrest),
	})
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "r1", parseErr.RowID)
	assert.Equal(t, "incident_datetime", parseErr.Field)
}

func TestWindows(t *testing.T) {
	at := func(ts string) Record {
		parsed, err := time.ParseInLocation("2006-01-02T15:04:05.000", ts, time.Local)
		require.NoError(t, err)
		return Record{IncidentTime: parsed}
	}

	pre := at("2018-01-01T00:00:00.000")
	assert.True(t, pre.PrePandemic())
	assert.False(t, pre.PostPandemic())
	assert.False(t, pre.PostSIP())

	post := at("2022-07-04T12:00:00.000")
	assert.True(t, post.PostPandemic())
	assert.True(t, post.PostSIP())

	gap := at("2021-01-01T00:00:00.000")
	assert.False(t, gap.InStudyWindow())
	assert.True(t, gap.PostSIP())

	// The order took effect at 12:01 AM; one minute earlier is
	// still pre-SIP.
	edge := Record{IncidentTime: ShelterInPlace.Add(-time.Minute)}
	assert.False(t, edge.PostSIP())
}

func TestFlags(t *testing.T) {
	homicide := Record{Category: "Homicide"}
	assert.True(t, homicide.Violent())
	assert.Equal(t, "Violent", homicide.BroadCategory())

	// Aggravated assault is violent only via its subcategory.
	aggravated := Record{Category: "Assault", Subcategory: "Aggravated Assault"}
	assert.True(t, aggravated.Violent())
	simple := Record{Category: "Assault", Subcategory: "Simple Assault"}
	assert.False(t, simple.Violent())
	assert.Equal(t, "Other", simple.BroadCategory())

	// The dataset's literal category values, question mark and all.
	mvt := Record{Category: "Motor Vehicle Theft?"}
	assert.True(t, mvt.Property())
	assert.Equal(t, "Property", mvt.BroadCategory())

	sale := Record{Category: "Drug Offense", Description: "Sale Of Base/Rock Cocaine"}
	assert.True(t, sale.Drugs())
	assert.Equal(t, "Drugs", sale.BroadCategory())
}

func metricMatch(t *testing.T, name string, r Record) bool {
	t.Helper()
	for _, m := range Metrics {
		if m.Name == name {
			return m.Match(&r)
		}
	}
	t.Fatalf("no metric %q", name)
	return false
}

func TestMetricTable(t *testing.T) {
	sale := Record{Category: "Drug Offense", Description: "Sale Of Base/Rock Cocaine"}
	assert.True(t, metricMatch(t, "drug_sale", sale))
	assert.False(t, metricMatch(t, "drug_non_sale", sale))

	possession := Record{Category: "Drug Violation", Description: "Possession Of Narcotics"}
	assert.False(t, metricMatch(t, "drug_sale", possession))
	assert.True(t, metricMatch(t, "drug_non_sale", possession))

	assert.True(t, metricMatch(t, "weapons", Record{Subcategory: "Weapons Offense"}))
	assert.True(t, metricMatch(t, "traffic", Record{Category: "Traffic Violation Arrest"}))
}
