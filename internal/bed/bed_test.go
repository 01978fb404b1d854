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

package bed

import (
	"io"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := strings.Join([]string{
		`track name="test regions"`,
		"browser position chr1:1-1000",
		"# a comment",
		"",
		"chr1\t100\t200",
		"chr1\t300\t400\tfeature-a\t960\t+",
		"chrX 500 600",
	}, "\n")

	want := []Record{
		{Chromosome: "chr1", Start: 100, End: 200},
		{Chromosome: "chr1", Start: 300, End: 400},
		{Chromosome: "chrX", Start: 500, End: 600},
	}

	r := NewReader(strings.NewReader(input))
	for i, w := range want {
		got, err := r.Read()
		if err != nil {
			t.Fatalf("Read() #%d returned error: %v", i, err)
		}
		if got != w {
			t.Fatalf("Wrong record #%d: got %+v, want %+v", i, got, w)
		}
	}
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("Read() after last record returned %v, want io.EOF", err)
	}
}

func TestRead_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"too few fields", "chr1\t100"},
		{"non-integer start", "chr1\tabc\t200"},
		{"non-integer end", "chr1\t100\tdef"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tc.input))
			if _, err := r.Read(); err == nil || err == io.EOF {
				t.Fatalf("Read() returned %v, want a parse error", err)
			}
		})
	}
}

func TestRead_Empty(t *testing.T) {
	r := NewReader(strings.NewReader("# only a comment\n"))
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("Read() returned %v, want io.EOF", err)
	}
}
