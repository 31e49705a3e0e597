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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-flictionary"
)

const defaultMaxSuggestions = 10

func (f *flictutil) predictCommand() *cli.Command {
	return &cli.Command{
		Name:      "predict",
		Usage:     "suggest words that complete PREFIX",
		ArgsUsage: "FILE PREFIX",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "max",
				Usage:   "suggest at most `N` words",
				Aliases: []string{"n"},
				Value:   defaultMaxSuggestions,
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("%w: expected FILE and PREFIX", ErrFlagParse)
			}
			d, err := f.manager.Open(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDictionary, err)
			}

			current := &flictionary.Token{Data: c.Args().Get(1)}
			printTokens(c, d.Predict(nil, current, c.Int("max")))
			return nil
		},
	}
}

func (f *flictutil) lookupCommand() *cli.Command {
	return &cli.Command{
		Name:         "lookup",
		Usage:        "look up WORD and print its frequency",
		ArgsUsage:    "FILE WORD",
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("%w: expected FILE and WORD", ErrFlagParse)
			}
			d, err := f.manager.Open(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDictionary, err)
			}

			printTokens(c, d.Lookup(c.Args().Get(1)))
			return nil
		},
	}
}

func printTokens(c *cli.Context, tokens []flictionary.WeightedToken) {
	if len(tokens) == 0 {
		fmt.Fprintln(c.App.ErrWriter, "no words found")
		return
	}
	tbl := table.New("Word", "Frequency").WithWriter(c.App.Writer)
	for _, t := range tokens {
		tbl.AddRow(t.Word, t.Frequency)
	}
	tbl.Print()
}
