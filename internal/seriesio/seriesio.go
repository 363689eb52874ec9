// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seriesio is a thin file/array I/O collaborator for the core
// solver. It reads a single column of observations from a file or stdin
// and writes the solver's result back out as JSON, reimplementing (not
// translating) the loading convention of
// original_source/fish_proc/denoiseLocalPCA's numpy-based drivers.
package seriesio

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jingxlim/l1tf/pdas"
)

// ReadSeries parses a single column of float64 values from r, accepting
// either one value per line or comma-separated values on a line, and
// skipping blank lines.
func ReadSeries(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var values []float64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields, err := csv.NewReader(strings.NewReader(line)).Read()
		if err != nil {
			return nil, fmt.Errorf("seriesio: %w", err)
		}
		for _, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("seriesio: invalid value %q: %w", field, err)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seriesio: %w", err)
	}
	return values, nil
}

// ReadSeriesFile opens path (or stdin when path is "-") and delegates to
// ReadSeries.
func ReadSeriesFile(path string) ([]float64, error) {
	if path == "-" || path == "" {
		return ReadSeries(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seriesio: %w", err)
	}
	defer f.Close()
	return ReadSeries(f)
}

// Result is the JSON-serializable outcome of a solve, combining the
// primal/dual solution with the diagnostic trace pdas.Logger collected.
type Result struct {
	Status string        `json:"status"`
	X      []float64     `json:"x"`
	Z      []float64     `json:"z"`
	Trace  []pdas.Record `json:"trace,omitempty"`
}

// WriteResult marshals res as indented JSON to w.
func WriteResult(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteResultFile writes res as JSON to path, or stdout when path is "-"
// or empty.
func WriteResultFile(path string, res Result) error {
	if path == "-" || path == "" {
		return WriteResult(os.Stdout, res)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("seriesio: %w", err)
	}
	defer f.Close()
	return WriteResult(f, res)
}
