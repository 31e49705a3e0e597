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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-flictionary/trie"
)

func (f *flictutil) dumpCommand() *cli.Command {
	return &cli.Command{
		Name:         "dump",
		Usage:        "print the dictionary's word tree",
		ArgsUsage:    "FILE",
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected FILE", ErrFlagParse)
			}
			d, err := f.manager.Open(c.Args().First())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDictionary, err)
			}

			var dumpErr error
			d.Walk(func(n *trie.Node, depth int) bool {
				if dumpErr != nil {
					return false
				}
				freq := "filler"
				if !n.IsFiller() {
					freq = fmt.Sprint(n.Frequency)
				}
				_, dumpErr = fmt.Fprintf(c.App.Writer, "%s%d %s (%s)\n",
					strings.Repeat("  ", depth-1), n.Order, n.Word, freq)
				return dumpErr == nil
			})
			if dumpErr != nil {
				return fmt.Errorf("writing output: %w", dumpErr)
			}
			return nil
		},
	}
}
