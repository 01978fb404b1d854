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

// bed-binning assigns a bin number to each region in a BED file
// according to the UCSC Genome Browser binning scheme.  The bin numbers
// are written one per line in the order of the input regions.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/genometools/binning"
	"github.com/genometools/binning/internal/bed"
	"github.com/genometools/binning/internal/config"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:            "bed-binning",
		Usage:           "Assign a bin number to each region in a BED file",
		ArgsUsage:       "regions.bed",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "all",
				Aliases:  []string{"a"},
				Usage:    "List every overlapping bin instead of the smallest enclosing bin",
				Category: "Optional",
			},
			&cli.BoolFlag{
				Name:     "names",
				Aliases:  []string{"n"},
				Usage:    "Prefix each output line with the chromosome name",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "The location of the output file, defaults to stdout",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "scheme",
				Aliases:  []string{"s"},
				Usage:    "YAML file describing an alternate binning scheme",
				Category: "Optional",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("exactly one BED file argument is required", 1)
	}

	scheme, err := config.Load(ctx.String("scheme"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	in, err := os.Open(ctx.Args().Get(0))
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not read BED file: %v", err), 1)
	}
	defer in.Close()

	// Bin every region before writing anything, so that a bad record
	// aborts the run without partial output.
	lines, err := binRegions(scheme, bed.NewReader(in), ctx.Bool("all"), ctx.Bool("names"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out := os.Stdout
	if path := ctx.String("output"); path != "" {
		out, err = os.Create(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("could not create output file: %v", err), 1)
		}
		defer out.Close()
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func binRegions(scheme binning.Scheme, r *bed.Reader, all, names bool) ([]string, error) {
	var lines []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}

		region := binning.FromHalfOpen(record.Start, record.End)
		var text string
		if all {
			bins, err := scheme.AllBins(region)
			if err != nil {
				return nil, err
			}
			text = joinBins(bins)
		} else {
			bin, err := scheme.AssignBin(region)
			if err != nil {
				return nil, err
			}
			text = strconv.FormatInt(bin, 10)
		}
		if names {
			text = record.Chromosome + "\t" + text
		}
		lines = append(lines, text)
	}
}

func joinBins(bins []int64) string {
	parts := make([]string, len(bins))
	for i, bin := range bins {
		parts[i] = strconv.FormatInt(bin, 10)
	}
	return strings.Join(parts, ",")
}
