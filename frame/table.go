// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame converts rendered summary tables into dataframes.
//
// Statistical reports are often available only as rendered HTML (for
// example, a regression summary table). ReadTable recovers a typed
// dataframe from such a table so downstream code can work with the
// numbers instead of markup.
package frame

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ReadTable parses the first HTML table in r into a dataframe.
//
// If promoteHeader is set, the table's first row becomes the column
// names; blank names are replaced with positional ones. Columns whose
// every cell parses as a number become float columns; other columns
// are left as strings.
func ReadTable(r io.Reader, promoteHeader bool) (dataframe.DataFrame, error) {
	tables := dataframe.ReadHTML(r, dataframe.HasHeader(false), dataframe.DetectTypes(false))
	if len(tables) == 0 {
		return dataframe.DataFrame{}, errors.New("frame: no table found")
	}
	df := tables[0]
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}

	// Records includes the synthetic X0, X1, ... header row; drop it.
	records := df.Records()[1:]
	if len(records) == 0 {
		return dataframe.DataFrame{}, errors.New("frame: empty table")
	}

	names := df.Names()
	if promoteHeader {
		for i, name := range records[0] {
			if name == "" {
				name = fmt.Sprintf("col%d", i)
			}
			names[i] = name
		}
		records = records[1:]
		if len(records) == 0 {
			return dataframe.DataFrame{}, errors.New("frame: table has a header but no rows")
		}
	}

	cols := make([]series.Series, len(names))
	for j, name := range names {
		cells := make([]string, len(records))
		numeric := true
		for i, row := range records {
			cells[i] = row[j]
			if numeric {
				if _, err := strconv.ParseFloat(row[j], 64); err != nil {
					numeric = false
				}
			}
		}
		if numeric {
			vals := make([]float64, len(cells))
			for i, cell := range cells {
				vals[i], _ = strconv.ParseFloat(cell, 64)
			}
			cols[j] = series.New(vals, series.Float, name)
		} else {
			cols[j] = series.New(cells, series.String, name)
		}
	}

	out := dataframe.New(cols...)
	return out, out.Err
}
