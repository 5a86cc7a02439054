// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package socrata

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// A DecodeError represents a malformed record on a particular line of
// a cache file.
type DecodeError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

var noRecord = errors.New("Reader.Scan has not been called")

// A Reader reads records from a JSON-lines cache file.
//
// Its API is modeled on bufio.Scanner: Scan advances to the next
// record, Record returns it, and Err reports the first error
// encountered.
//
// The zero value of the Reader is a valid Reader, but the user must
// call Reset before using it.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	lineNum  int
	err      error

	rec    Record
	recErr error
}

// NewReader constructs a reader for the JSON-lines cache in r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	// Records with free-text fields can be long.
	r.s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.rec = nil
	r.recErr = noRecord
}

// Scan advances the reader to the next record and returns true if one
// was read. If an I/O or decode error occurs, or this reaches the end
// of the input, it returns false and the caller should use the Err
// method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.lineNum++
		line := r.s.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			r.err = &DecodeError{r.fileName, r.lineNum, err.Error()}
			return false
		}
		r.rec, r.recErr = rec, nil
		return true
	}
	r.err = r.s.Err()
	return false
}

// Record returns the record read by the latest call to Scan.
func (r *Reader) Record() (Record, error) {
	return r.rec, r.recErr
}

// Err returns the first error encountered while reading.
func (r *Reader) Err() error {
	return r.err
}

// ReadCache reads all records from the JSON-lines cache file at path.
func ReadCache(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []Record
	r := NewReader(f, path)
	for r.Scan() {
		rec, err := r.Record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// WriteCache writes records to path as JSON lines. The file is
// written atomically: a partial write never replaces an existing
// cache.
func WriteCache(path string, records []Record) (err error) {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err = enc.Encode(rec); err != nil {
			return err
		}
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadOrFetch returns the records cached at path, fetching and
// caching them first if the file does not exist. It reports whether
// the records came from the cache.
func (c *Client) LoadOrFetch(ctx context.Context, path string, limit int) (records []Record, cached bool, err error) {
	if _, err := os.Stat(path); err == nil {
		records, err := ReadCache(path)
		return records, true, err
	}
	records, err = c.Fetch(ctx, limit)
	if err != nil {
		return nil, false, err
	}
	if err := WriteCache(path, records); err != nil {
		return nil, false, err
	}
	return records, false, nil
}
