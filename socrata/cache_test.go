// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package socrata

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main_data.jsonl")
	records := []Record{
		{"incident_id": "1", "resolution": "Cite or Arrest Adult"},
		{"incident_id": "2", "resolution": "Open or Active"},
	}
	require.NoError(t, WriteCache(path, records))

	got, err := ReadCache(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReaderDecodeError(t *testing.T) {
	input := `{"incident_id": "1"}
not json
{"incident_id": "2"}
`
	r := NewReader(strings.NewReader(input), "main_data.jsonl")
	require.True(t, r.Scan())
	require.False(t, r.Scan())

	var decodeErr *DecodeError
	require.ErrorAs(t, r.Err(), &decodeErr)
	assert.Equal(t, 2, decodeErr.Line)
	assert.Equal(t, "main_data.jsonl", decodeErr.FileName)
}

func TestReaderSkipsBlankLines(t *testing.T) {
	input := "{\"a\": \"1\"}\n\n{\"a\": \"2\"}\n"
	r := NewReader(strings.NewReader(input), "")
	n := 0
	for r.Scan() {
		n++
	}
	require.NoError(t, r.Err())
	assert.Equal(t, 2, n)
}

func TestLoadOrFetch(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, pagedHandler(3, &requests))
	path := filepath.Join(t.TempDir(), "main_data.jsonl")

	// First call fetches and writes the cache.
	records, cached, err := client.LoadOrFetch(context.Background(), path, 0)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, records, 3)
	fetched := requests

	// Second call reads the cache without touching the API.
	records, cached, err = client.LoadOrFetch(context.Background(), path, 0)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Len(t, records, 3)
	assert.Equal(t, fetched, requests)
}
