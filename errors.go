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

package binning

import "fmt"

// RegionOutOfRangeError is returned when a region's endpoints fall
// outside the addressable range of a scheme.
type RegionOutOfRangeError struct {
	Start, End  int64
	MaxPosition int64
}

func (e *RegionOutOfRangeError) Error() string {
	return fmt.Sprintf("genomic region %d-%d is out of range (maximum position is %d)", e.Start, e.End, e.MaxPosition)
}

// BinOutOfRangeError is returned when a bin number does not identify any
// bin of a scheme.
type BinOutOfRangeError struct {
	Bin, MaxBin int64
}

func (e *BinOutOfRangeError) Error() string {
	return fmt.Sprintf("invalid bin number %d (maximum bin number is %d)", e.Bin, e.MaxBin)
}
