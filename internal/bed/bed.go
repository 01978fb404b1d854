// Copyright 2026 Genome Tools Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bed provides reading of region records from BED-like files
// (https://genome.ucsc.edu/FAQ/FAQformat.html#format1).
package bed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is a single region line.  Start and End are kept as stored on
// disk: zero-based and half-open.
type Record struct {
	Chromosome string
	Start, End int64
}

// Reader reads region records from BED-like text, skipping blank lines,
// comments and track or browser declaration lines.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader returns a Reader that reads records from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Read returns the next region record.  It returns io.EOF after the last
// record.  A malformed record (too few fields, non-integer coordinates)
// is reported with its line number and content.
func (r *Reader) Read() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return Record{}, fmt.Errorf("line %d: invalid region record %q", r.line, line)
		}
		start, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return Record{}, fmt.Errorf("line %d: invalid start position %q", r.line, fields[1])
		}
		end, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return Record{}, fmt.Errorf("line %d: invalid end position %q", r.line, fields[2])
		}
		return Record{Chromosome: fields[0], Start: start, End: end}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, io.EOF
}
