// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package socrata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a TLS test server backed by handler and
// returns a client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)
	client := &Client{
		Domain:     strings.TrimPrefix(server.URL, "https://"),
		Dataset:    "wg3w-h783",
		HTTPClient: server.Client(),
	}
	return client, server
}

// pagedHandler serves total synthetic records honoring $limit and
// $offset, and records the number of requests seen.
func pagedHandler(total int, requests *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		limit, _ := strconv.Atoi(r.URL.Query().Get("$limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("$offset"))
		var page []map[string]string
		for i := offset; i < offset+limit && i < total; i++ {
			page = append(page, map[string]string{
				"incident_id": fmt.Sprintf("id%d", i),
				"resolution":  "Open or Active",
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(page)
	})
}

func TestFetchPaging(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, pagedHandler(5, &requests))
	client.PageSize = 2

	records, err := client.Fetch(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "id0", records[0]["incident_id"])
	assert.Equal(t, "id4", records[4]["incident_id"])
	// Pages of 2, 2, 1: the short final page stops the loop.
	assert.Equal(t, 3, requests)
}

func TestFetchLimit(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, pagedHandler(100, &requests))
	client.PageSize = 10

	records, err := client.Fetch(context.Background(), 25)
	require.NoError(t, err)
	assert.Len(t, records, 25)
	assert.Equal(t, 3, requests)
}

func TestFetchHeaders(t *testing.T) {
	var gotToken, gotOrder string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-App-Token")
		gotOrder = r.URL.Query().Get("$order")
		fmt.Fprint(w, "[]")
	}))
	client.AppToken = "sekrit"

	_, err := client.Fetch(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "sekrit", gotToken)
	// Paging is only stable with an explicit order.
	assert.Equal(t, ":id", gotOrder)
}

func TestFetchStatusError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))

	_, err := client.Fetch(context.Background(), 10)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
}

func TestFetchNestedValues(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"incident_id": "a", "point": {"type": "Point", "coordinates": [-122.4, 37.7]}}]`)
	}))

	records, err := client.Fetch(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0]["incident_id"])
	// Nested values keep their JSON encoding.
	assert.JSONEq(t, `{"type": "Point", "coordinates": [-122.4, 37.7]}`, records[0]["point"])
}
