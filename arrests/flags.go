// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrests

// Category tables for the SFPD incident taxonomy. The Part I
// groupings follow the department's published definitions: property
// crimes are burglary, larceny, motor vehicle theft and arson;
// violent crimes are homicide, rape, robbery and aggravated assault.
// Aggravated assault is a subcategory, not a category, so it gets its
// own table. "Motor Vehicle Theft?" appears verbatim as a category
// value in the dataset.
var (
	propertyCategories = map[string]bool{
		"Burglary":             true,
		"Larceny Theft":        true,
		"Motor Vehicle Theft":  true,
		"Motor Vehicle Theft?": true,
		"Arson":                true,
		"Recovered Vehicle":    true,
	}
	drugCategories = map[string]bool{
		"Drug Offense":   true,
		"Drug Violation": true,
	}
	violentCategories = map[string]bool{
		"Homicide": true,
		"Rape":     true,
		"Robbery":  true,
	}
	violentSubcategories = map[string]bool{
		"Aggravated Assault": true,
	}
)

// Violent reports whether the incident is a violent Part I crime.
// The category and subcategory tables are disjoint, so an incident
// is never counted twice.
func (r *Record) Violent() bool {
	return violentCategories[r.Category] || violentSubcategories[r.Subcategory]
}

// Property reports whether the incident is a property Part I crime.
func (r *Record) Property() bool {
	return propertyCategories[r.Category]
}

// Drugs reports whether the incident is a drug crime.
func (r *Record) Drugs() bool {
	return drugCategories[r.Category]
}

// BroadCategory returns the broad crime grouping of the incident:
// "Violent", "Property", "Drugs", or "Other". The groupings are
// mutually exclusive.
func (r *Record) BroadCategory() string {
	switch {
	case r.Violent():
		return "Violent"
	case r.Property():
		return "Property"
	case r.Drugs():
		return "Drugs"
	}
	return "Other"
}

// A Metric names a per-record predicate counted during aggregation.
type Metric struct {
	Name  string
	Match func(*Record) bool
}

// Metrics is the set of arrest metrics the analysis tracks, one count
// series per metric. The original vectorized flag columns are
// re-expressed here as an explicit predicate table.
var Metrics = []Metric{
	{"larceny_theft", func(r *Record) bool { return r.Category == "Larceny Theft" }},
	{"burglary", func(r *Record) bool { return r.Category == "Burglary" }},
	{"drug_non_sale", func(r *Record) bool { return r.Drugs() && !r.containsSale() }},
	{"drug_sale", func(r *Record) bool { return r.Drugs() && r.containsSale() }},
	{"assault", func(r *Record) bool { return r.Category == "Assault" }},
	{"robbery", func(r *Record) bool { return r.Category == "Robbery" }},
	{"traffic", func(r *Record) bool { return r.Category == "Traffic Violation Arrest" }},
	{"weapons", func(r *Record) bool { return r.Subcategory == "Weapons Offense" }},
	{"homicide", func(r *Record) bool { return r.Category == "Homicide" }},
}
