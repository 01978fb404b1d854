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

// Package binning implements the hierarchical binning scheme used by the
// UCSC Genome Browser to index genomic regions (see
// http://genomewiki.ucsc.edu/index.php/Bin_indexing_system).
//
// The scheme partitions a linear coordinate space at several resolutions
// and assigns every region the smallest bin that fully contains it.  A
// range-overlap query against a bin-indexed store then only needs to probe
// the bins returned by AllBins instead of scanning every stored interval.
//
// All positions in this package are one-based and inclusive.  Records
// stored with zero-based half-open coordinates (BED, BAM) should be
// converted at the boundary with FromHalfOpen.
//
// Bins are scoped to a single chromosome; disambiguating between
// chromosomes is the caller's responsibility.
package binning

import "fmt"

// Region defines a region of genomic interest on a single chromosome.
// Start and End are one-based and inclusive.
type Region struct {
	Start, End int64
}

func (region Region) String() string {
	return fmt.Sprintf("%d-%d", region.Start, region.End)
}

// FromHalfOpen converts a zero-based half-open interval, the convention
// used by BED and BAM records, to the one-based inclusive convention used
// by this package.
func FromHalfOpen(start, end int64) Region {
	return Region{Start: start + 1, End: end}
}

// LevelRange holds the first and last bin overlapping a region at one
// level of a scheme.
type LevelRange struct {
	First, Last int64
}

// Scheme describes a hierarchical binning of the positions 1 through
// MaxPosition.  The zero value is not usable; construct schemes with
// NewScheme or use UCSC.
//
// Positions beyond MaxPosition are rejected.  The extended scheme used by
// some tools for larger chromosomes is not implemented.
type Scheme struct {
	// MaxPosition is the largest addressable position.
	MaxPosition int64
	// Offsets holds the number of the first bin of each level, ordered
	// from the finest level to the coarsest.  Offsets strictly decrease,
	// and the coarsest offset is 0: bin 0 is the single root bin covering
	// the entire coordinate space.
	Offsets []int64
	// ShiftFirst is the width in bits of the finest bins.  ShiftNext is
	// the number of additional bits of width gained at each coarser
	// level.
	ShiftFirst, ShiftNext uint
}

// UCSC is the standard scheme used by the UCSC Genome Browser and the BAM
// index format: five levels from 128kb bins up to a single 512Mb root
// bin.
var UCSC = Scheme{
	MaxPosition: 1 << 29,
	Offsets:     []int64{512 + 64 + 8 + 1, 64 + 8 + 1, 8 + 1, 1, 0},
	ShiftFirst:  17,
	ShiftNext:   3,
}

// NewScheme returns a validated scheme with the given geometry.  Offsets
// are ordered from the finest level to the coarsest.  An error is
// returned if the offsets do not strictly decrease to 0 or if the shifts
// are too small for the coarsest level to collapse every addressable
// region into the root bin, since either defect would leave some region
// with no assignable bin.
func NewScheme(maxPosition int64, offsets []int64, shiftFirst, shiftNext uint) (Scheme, error) {
	if maxPosition < 1 {
		return Scheme{}, fmt.Errorf("invalid maximum position %d", maxPosition)
	}
	if len(offsets) == 0 {
		return Scheme{}, fmt.Errorf("scheme has no levels")
	}
	for i, offset := range offsets {
		if offset < 0 {
			return Scheme{}, fmt.Errorf("negative bin offset %d at level %d", offset, i)
		}
		if i > 0 && offset >= offsets[i-1] {
			return Scheme{}, fmt.Errorf("bin offsets must strictly decrease: got %d after %d", offset, offsets[i-1])
		}
	}
	if last := offsets[len(offsets)-1]; last != 0 {
		return Scheme{}, fmt.Errorf("coarsest bin offset is %d, want 0", last)
	}
	shift := shiftFirst + shiftNext*uint(len(offsets)-1)
	if shift < 64 && (maxPosition-1)>>shift != 0 {
		return Scheme{}, fmt.Errorf("shifts %d+%d are too small to cover position %d at %d levels", shiftFirst, shiftNext, maxPosition, len(offsets))
	}
	return Scheme{
		MaxPosition: maxPosition,
		Offsets:     append([]int64(nil), offsets...),
		ShiftFirst:  shiftFirst,
		ShiftNext:   shiftNext,
	}, nil
}

// Levels returns the number of resolution levels in the scheme.
func (s Scheme) Levels() int {
	return len(s.Offsets)
}

// MaxBin returns the largest valid bin number: the last bin of the
// finest level.
func (s Scheme) MaxBin() int64 {
	return s.Offsets[0] + (s.MaxPosition-1)>>s.ShiftFirst
}

// Normalize returns region with its endpoints ordered.  Reversed
// endpoints are swapped rather than rejected.  It returns a
// *RegionOutOfRangeError if the ordered region extends beyond the
// addressable range.
func (s Scheme) Normalize(region Region) (Region, error) {
	if region.Start > region.End {
		region.Start, region.End = region.End, region.Start
	}
	if region.Start < 1 || region.End > s.MaxPosition {
		return Region{}, &RegionOutOfRangeError{Start: region.Start, End: region.End, MaxPosition: s.MaxPosition}
	}
	return region, nil
}

// RangesPerLevel returns, for each level of the scheme, the first and
// last bin overlapping region, ordered from the finest level to the
// coarsest.  For any valid region the coarsest entry has First == Last:
// the root bin covers everything.
//
// Algorithm by Jim Kent (http://genomewiki.ucsc.edu/index.php/Bin_indexing_system).
func (s Scheme) RangesPerLevel(region Region) ([]LevelRange, error) {
	region, err := s.Normalize(region)
	if err != nil {
		return nil, err
	}
	first := (region.Start - 1) >> s.ShiftFirst
	last := (region.End - 1) >> s.ShiftFirst
	ranges := make([]LevelRange, len(s.Offsets))
	for i, offset := range s.Offsets {
		ranges[i] = LevelRange{First: offset + first, Last: offset + last}
		first >>= s.ShiftNext
		last >>= s.ShiftNext
	}
	return ranges, nil
}

// AssignBin returns the number of the smallest bin that fully contains
// region.
//
// AssignBin panics if no level contains the region.  That cannot happen
// with a scheme from NewScheme or with UCSC; it indicates a
// hand-constructed scheme that skipped validation.
func (s Scheme) AssignBin(region Region) (int64, error) {
	ranges, err := s.RangesPerLevel(region)
	if err != nil {
		return 0, err
	}
	for _, r := range ranges {
		if r.First == r.Last {
			return r.First, nil
		}
	}
	panic(fmt.Sprintf("binning: no level contains region %v; scheme is misconfigured", region))
}

// AllBins returns every bin, at every level, overlapping region.  These
// are the bins a range query must probe to find all stored intervals
// intersecting region.  The result is ordered first by level (finest
// first) and then by bin number, is never empty, and always contains the
// bin returned by AssignBin.
func (s Scheme) AllBins(region Region) ([]int64, error) {
	ranges, err := s.RangesPerLevel(region)
	if err != nil {
		return nil, err
	}
	var n int64
	for _, r := range ranges {
		n += r.Last - r.First + 1
	}
	bins := make([]int64, 0, n)
	for _, r := range ranges {
		for bin := r.First; bin <= r.Last; bin++ {
			bins = append(bins, bin)
		}
	}
	return bins, nil
}

// CoveredRegion returns the region covered by the given bin.  The region
// assigned to a bin always contains every region the bin was assigned
// to, so CoveredRegion(AssignBin(r)) is a superset of r.  It returns a
// *BinOutOfRangeError if bin is negative or exceeds MaxBin.
func (s Scheme) CoveredRegion(bin int64) (Region, error) {
	if bin < 0 || bin > s.MaxBin() {
		return Region{}, &BinOutOfRangeError{Bin: bin, MaxBin: s.MaxBin()}
	}
	shift := s.ShiftFirst
	for _, offset := range s.Offsets {
		if offset <= bin {
			return Region{
				Start: (bin-offset)<<shift + 1,
				End:   (bin + 1 - offset) << shift,
			}, nil
		}
		shift += s.ShiftNext
	}
	panic(fmt.Sprintf("binning: no level contains bin %d; scheme is misconfigured", bin))
}
