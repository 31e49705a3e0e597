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
	"errors"
	"fmt"
	"io/fs"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-flictionary"
)

func (f *flictutil) listCommand() *cli.Command {
	return &cli.Command{
		Name:         "list",
		Usage:        "list dictionaries in the data directories",
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			dicts, failed := f.listDicts(c.StringSlice("data-dir"))
			printInfo(c, dicts)
			if failed > 0 {
				return fmt.Errorf("%w: %d failed", ErrDictionary, failed)
			}
			return nil
		},
	}
}

// listDicts opens all dictionaries under dirs. Missing directories are
// skipped. It returns the number of dictionaries that failed to open.
func (f *flictutil) listDicts(dirs []string) ([]*flictionary.Dictionary, int) {
	var dicts []*flictionary.Dictionary
	var failed int
	for _, dir := range dirs {
		openDicts, errs := flictionary.OpenAll(dir, nil)
		for _, err := range errs {
			if errors.Is(err, fs.ErrNotExist) {
				f.logger.Debug("skipping data directory", "dir", dir, "err", err)
				continue
			}
			f.logger.Error("opening dictionary", "dir", dir, "err", err)
			failed++
		}
		dicts = append(dicts, openDicts...)
	}
	return dicts, failed
}
