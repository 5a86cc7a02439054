// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package socrata fetches records from a Socrata Open Data API (SODA)
// endpoint and caches them locally.
//
// Municipal open-data portals serve datasets as paged JSON. The
// client here pulls a whole dataset with offset paging and hands back
// flat string records; the cache half of the package persists a pull
// as a JSON-lines file so repeated analysis runs don't hit the API.
package socrata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// A Record is one dataset row. SODA serves every scalar field as a
// string; nested values are kept as their compact JSON encoding.
type Record map[string]string

// A StatusError is a non-200 response from the API.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("socrata: %s: unexpected status %d", e.URL, e.Code)
}

// A Client fetches a single dataset from a Socrata domain.
type Client struct {
	// Domain is the data portal host, e.g. "data.sfgov.org".
	Domain string

	// Dataset is the dataset identifier, e.g. "wg3w-h783".
	Dataset string

	// AppToken, if non-empty, is sent as X-App-Token. Anonymous
	// requests work but are throttled more aggressively.
	AppToken string

	// HTTPClient is the client used for requests. If nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client

	// PageSize is the number of records requested per page. If
	// zero, a server-friendly default is used.
	PageSize int
}

const defaultPageSize = 50000

// Fetch retrieves up to limit records, paging through the dataset in
// stable :id order. A limit <= 0 means the whole dataset.
func (c *Client) Fetch(ctx context.Context, limit int) ([]Record, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var records []Record
	for offset := 0; ; offset += pageSize {
		n := pageSize
		if limit > 0 && limit-offset < n {
			n = limit - offset
		}
		if n <= 0 {
			break
		}

		page, err := c.fetchPage(ctx, httpClient, n, offset)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
		if len(page) < n {
			// Short page: the dataset is exhausted.
			break
		}
	}
	return records, nil
}

func (c *Client) fetchPage(ctx context.Context, httpClient *http.Client, limit, offset int) ([]Record, error) {
	q := url.Values{}
	q.Set("$limit", strconv.Itoa(limit))
	q.Set("$offset", strconv.Itoa(offset))
	q.Set("$order", ":id")
	u := fmt.Sprintf("https://%s/resource/%s.json?%s", c.Domain, c.Dataset, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.AppToken != "" {
		req.Header.Set("X-App-Token", c.AppToken)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: u, Code: resp.StatusCode}
	}

	var raw []map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("socrata: decoding page at offset %d: %w", offset, err)
	}

	records := make([]Record, len(raw))
	for i, row := range raw {
		records[i] = flatten(row)
	}
	return records, nil
}

// flatten converts a decoded JSON row to a flat string record.
// Scalars become their string form; objects and arrays (e.g. point
// geometries) keep their compact JSON encoding.
func flatten(row map[string]json.RawMessage) Record {
	rec := make(Record, len(row))
	for key, raw := range row {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			rec[key] = s
			continue
		}
		rec[key] = string(raw)
	}
	return rec
}
