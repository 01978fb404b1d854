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

package binning_test

import (
	"fmt"

	"github.com/genometools/binning"
)

func ExampleScheme_AssignBin() {
	bin, err := binning.UCSC.AssignBin(binning.Region{Start: 100000, End: 100005})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(bin)
	// Output: 585
}

func ExampleScheme_AllBins() {
	bins, err := binning.UCSC.AllBins(binning.Region{Start: 100000, End: 100005})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(bins)
	// Output: [585 73 9 1 0]
}

func ExampleScheme_CoveredRegion() {
	region, err := binning.UCSC.CoveredRegion(585)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(region)
	// Output: 1-131072
}
