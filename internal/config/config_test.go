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

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/genometools/binning"
)

func writeScheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scheme.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scheme file: %v", err)
	}
	return path
}

func TestLoad_Default(t *testing.T) {
	scheme, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if !reflect.DeepEqual(scheme, binning.UCSC) {
		t.Fatalf("Wrong scheme: got %+v, want the UCSC scheme", scheme)
	}
}

func TestLoad(t *testing.T) {
	path := writeScheme(t, `
max_position: 4096
offsets: [9, 1, 0]
shift_first: 6
shift_next: 3
`)

	scheme, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if got, want := scheme.MaxPosition, int64(4096); got != want {
		t.Fatalf("Wrong maximum position: got %d, want %d", got, want)
	}
	if got, want := scheme.Levels(), 3; got != want {
		t.Fatalf("Wrong level count: got %d, want %d", got, want)
	}
	if got, want := scheme.MaxBin(), int64(72); got != want {
		t.Fatalf("Wrong maximum bin: got %d, want %d", got, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"not yaml", "{not yaml"},
		{"unknown field", "levels: 5"},
		{"invalid scheme", `
max_position: 536870912
offsets: [1, 0]
shift_first: 17
shift_next: 3
`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeScheme(t, tc.content)); err == nil {
				t.Fatal("Load() succeeded, want error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() succeeded, want error")
	}
}
