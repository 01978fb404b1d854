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

// bin-region prints the genomic region covered by each given bin
// number, one region per line as tab-separated start and end positions
// (one-based, inclusive).
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/genometools/binning/internal/config"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:            "bin-region",
		Usage:           "Print the genomic region covered by each given bin number",
		ArgsUsage:       "bin [bin ...]",
		HideHelpCommand: true,
		Flags: []cli.Flag{
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
	if ctx.NArg() < 1 {
		return cli.Exit("at least one bin number argument is required", 1)
	}

	scheme, err := config.Load(ctx.String("scheme"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	for _, arg := range ctx.Args().Slice() {
		bin, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid bin number %q", arg), 1)
		}
		region, err := scheme.CoveredRegion(bin)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		fmt.Printf("%d\t%d\t%d\n", bin, region.Start, region.End)
	}
	return nil
}
