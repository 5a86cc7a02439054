// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrests cleans and aggregates the SFPD incident-report
// dataset for arrest analysis.
//
// The dataset (data.sfgov.org, wg3w-h783) has one row per incident
// report. This package keeps the rows resolved by an adult cite or
// arrest, derives crime-category flags from the incident category
// taxonomy, and aggregates arrests into fixed-period count series
// suitable for a block-bootstrap comparison of the pre- and
// post-pandemic study windows.
package arrests

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmarchetti/sfstats/socrata"
)

// ResolutionArrest is the resolution value identifying an adult cite
// or arrest.
const ResolutionArrest = "Cite or Arrest Adult"

// ShelterInPlace is the instant San Francisco's stay-home order took
// effect: March 17, 2020 at 12:01 AM.
// https://www.sf.gov/news/sf-responds-coronavirus-outbreak-stay-home-order
var ShelterInPlace = time.Date(2020, time.March, 17, 0, 1, 0, 0, time.Local)

// incidentTimeLayout is the timestamp format the portal serves.
const incidentTimeLayout = "2006-01-02T15:04:05.000"

// A Record is one cleaned incident report.
type Record struct {
	RowID        string
	IncidentID   string
	IncidentTime time.Time
	ReportTime   time.Time
	Category     string
	Subcategory  string
	Description  string
	Resolution   string

	// AssociatedIncidents is the number of rows sharing this
	// record's incident ID. A single incident produces one row
	// per incident code.
	AssociatedIncidents int
}

// A ParseError reports a malformed field in a dataset row.
type ParseError struct {
	RowID string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("arrests: row %s: field %s: %v", e.RowID, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseRecord converts a raw dataset row. Rows without an incident
// timestamp are unusable and reported as errors.
func parseRecord(raw socrata.Record) (Record, error) {
	rec := Record{
		RowID:       raw["row_id"],
		IncidentID:  raw["incident_id"],
		Category:    raw["incident_category"],
		Subcategory: raw["incident_subcategory"],
		Description: raw["incident_description"],
		Resolution:  raw["resolution"],
	}

	incident, err := time.ParseInLocation(incidentTimeLayout, raw["incident_datetime"], time.Local)
	if err != nil {
		return Record{}, &ParseError{rec.RowID, "incident_datetime", err}
	}
	rec.IncidentTime = incident

	// The report timestamp is informational; tolerate its absence.
	if v := raw["report_datetime"]; v != "" {
		if report, err := time.ParseInLocation(incidentTimeLayout, v, time.Local); err == nil {
			rec.ReportTime = report
		}
	}
	return rec, nil
}

// PostSIP reports whether the incident happened after the
// shelter-in-place order took effect.
func (r *Record) PostSIP() bool {
	return r.IncidentTime.After(ShelterInPlace)
}

// PrePandemic reports whether the incident falls in the pre-pandemic
// study window, calendar years 2018 and 2019.
func (r *Record) PrePandemic() bool {
	y := r.IncidentTime.Year()
	return y == 2018 || y == 2019
}

// PostPandemic reports whether the incident falls in the
// post-pandemic study window, calendar years 2022 and 2023.
func (r *Record) PostPandemic() bool {
	y := r.IncidentTime.Year()
	return y == 2022 || y == 2023
}

// InStudyWindow reports whether the incident falls in either study
// window.
func (r *Record) InStudyWindow() bool {
	return r.PrePandemic() || r.PostPandemic()
}

// containsSale reports whether the incident description mentions a
// sale, case-insensitively.
func (r *Record) containsSale() bool {
	return strings.Contains(strings.ToLower(r.Description), "sale")
}
