// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"time"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-flictionary"
)

func (f *flictutil) infoCommand() *cli.Command {
	return &cli.Command{
		Name:         "info",
		Usage:        "print dictionary header information",
		ArgsUsage:    "FILE...",
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: expected at least one FILE", ErrFlagParse)
			}

			dicts, err := f.openDicts(c.Args().Slice())
			printInfo(c, dicts)
			return err
		},
	}
}

func printInfo(c *cli.Context, dicts []*flictionary.Dictionary) {
	if len(dicts) == 0 {
		return
	}
	tbl := table.New("Path", "Version", "Created", "Words", "Payload").WithWriter(c.App.Writer)
	for _, d := range dicts {
		tbl.AddRow(
			d.Path(),
			d.Version(),
			d.Timestamp().UTC().Format(time.RFC3339),
			d.WordCount(),
			d.Payload(),
		)
	}
	tbl.Print()
}
