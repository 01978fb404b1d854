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

// Package config loads binning scheme descriptions from YAML files.
package config

import (
	"fmt"
	"os"

	"github.com/genometools/binning"
	yaml "gopkg.in/yaml.v2"
)

// File mirrors the YAML scheme description:
//
//	max_position: 536870912
//	offsets: [585, 73, 9, 1, 0]
//	shift_first: 17
//	shift_next: 3
type File struct {
	MaxPosition int64   `yaml:"max_position"`
	Offsets     []int64 `yaml:"offsets"`
	ShiftFirst  uint    `yaml:"shift_first"`
	ShiftNext   uint    `yaml:"shift_next"`
}

// Load reads a scheme description from path and validates it.  An empty
// path selects the standard UCSC Genome Browser scheme.
func Load(path string) (binning.Scheme, error) {
	if path == "" {
		return binning.UCSC, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return binning.Scheme{}, fmt.Errorf("reading scheme file: %v", err)
	}
	var file File
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return binning.Scheme{}, fmt.Errorf("parsing scheme file %s: %v", path, err)
	}
	scheme, err := binning.NewScheme(file.MaxPosition, file.Offsets, file.ShiftFirst, file.ShiftNext)
	if err != nil {
		return binning.Scheme{}, fmt.Errorf("invalid scheme in %s: %v", path, err)
	}
	return scheme, nil
}
