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
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-flictionary"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrFlictutil is a parent error for all command errors.
var ErrFlictutil = errors.New("flictutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrFlictutil)

// ErrDictionary indicates that one or more dictionaries could not be read.
var ErrDictionary = fmt.Errorf("%w: reading dictionaries", ErrFlictutil)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// flictutil holds state shared by commands. It is populated before any
// command runs.
type flictutil struct {
	logger  *slog.Logger
	manager *flictionary.Manager
}

func (f *flictutil) before(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	f.logger = slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))

	opts := &flictionary.Options{
		Folder: flictionary.DefaultFolder,
	}
	if c.Bool("no-fold") {
		opts = flictionary.DefaultOptions
	}
	f.manager = flictionary.NewManager(&flictionary.ManagerOptions{
		Options: opts,
		Logger:  f.logger,
	})
	return nil
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// openDicts opens the dictionaries at the given paths. Paths that fail to open
// are reported to the logger.
func (f *flictutil) openDicts(paths []string) ([]*flictionary.Dictionary, error) {
	var dicts []*flictionary.Dictionary
	var failed int
	for _, path := range paths {
		d, err := f.manager.Open(path)
		if err != nil {
			f.logger.Error("opening dictionary", "path", path, "err", err)
			failed++
			continue
		}
		dicts = append(dicts, d)
	}
	if failed > 0 {
		return dicts, fmt.Errorf("%w: %d of %d failed", ErrDictionary, failed, len(paths))
	}
	return dicts, nil
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

Licensed under the Apache License, Version 2.0.
`, c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, ", "))
	if err != nil {
		return fmt.Errorf("printing version: %w", err)
	}
	return nil
}

func newFlictutilApp(stdout, stderr io.Writer) *cli.App {
	f := &flictutil{}
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Inspect and query Flictionary dictionaries.",
		Description: strings.Join([]string{
			"Flictionary utility written in Go.",
			"http://github.com/ianlewis/go-flictionary",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "include dictionaries in `DIR` when listing",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dictLocations()...),
			},
			&cli.BoolFlag{
				Name:               "no-fold",
				Usage:              "compare words exactly instead of ignoring case and accents",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "print debug logs",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Before:          f.before,
		OnUsageError:    onUsageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			f.infoCommand(),
			f.listCommand(),
			f.predictCommand(),
			f.lookupCommand(),
			f.dumpCommand(),
		},
	}
}
