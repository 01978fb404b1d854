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

// bam-binning assigns a bin number to the alignment span of every
// mapped read in a BAM file, writing one chromosome and bin number pair
// per line.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/genometools/binning"
	"github.com/genometools/binning/internal/config"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:            "bam-binning",
		Usage:           "Assign a bin number to the alignment span of each mapped read in a BAM file",
		ArgsUsage:       "alignments.bam",
		HideHelpCommand: true,
		Flags: []cli.Flag{
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
		return cli.Exit("exactly one BAM file argument is required", 1)
	}

	scheme, err := config.Load(ctx.String("scheme"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	in, err := os.Open(ctx.Args().Get(0))
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not read BAM file: %v", err), 1)
	}
	defer in.Close()

	reader, err := bam.NewReader(in, 0)
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not open BAM file: %v", err), 1)
	}
	defer reader.Close()

	out := os.Stdout
	if path := ctx.String("output"); path != "" {
		out, err = os.Create(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("could not create output file: %v", err), 1)
		}
		defer out.Close()
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return cli.Exit(fmt.Sprintf("reading BAM record: %v", err), 1)
		}
		if record.Flags&sam.Unmapped != 0 {
			continue
		}

		region := binning.FromHalfOpen(int64(record.Start()), int64(record.End()))
		bin, err := scheme.AssignBin(region)
		if err != nil {
			return cli.Exit(fmt.Sprintf("read %s: %v", record.Name, err), 1)
		}
		fmt.Fprintf(out, "%s\t%d\n", record.Ref.Name(), bin)
	}
}
