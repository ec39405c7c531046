// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Program decondenser reformats condensed text into an indented, readable
// rendering, or unescapes a quoted literal on its own.
//
// Usage: decondenser [fmt|unescape] [--config FILE] [--profile NAME]
//
//	[--indent STR] [--max-line-size N] [--no-break-size N] [FILE]
//
// With no subcommand, fmt is assumed. Input is read from FILE, or from
// standard input if FILE is omitted; output always goes to standard output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt"

	"github.com/openconfig/decondenser/pkg/config"
	"github.com/openconfig/decondenser/pkg/decondenser"
	"github.com/openconfig/decondenser/pkg/indent"
)

// stop is a var, not a direct os.Exit call, so tests can swap it out.
var stop = os.Exit

func main() {
	var configPath string
	var profile string
	var indentStr string
	var maxLineSize int
	var noBreakSize int
	var help bool

	getopt.StringVarLong(&configPath, "config", 0, "path to a decondenser YAML config", "FILE")
	getopt.StringVarLong(&profile, "profile", 0, "named profile to load from --config", "NAME")
	getopt.StringVarLong(&indentStr, "indent", 0, "indent string (overrides the profile)", "STR")
	getopt.IntVarLong(&maxLineSize, "max-line-size", 0, "target line width (overrides the profile)", "N")
	getopt.IntVarLong(&noBreakSize, "no-break-size", 0, "minimum width never refused to a broken group (overrides the profile)", "N")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[fmt|unescape] [FILE]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
		return
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		printAvailableProfiles(configPath)
		stop(0)
		return
	}

	args := getopt.Args()
	subcommand := "fmt"
	if len(args) > 0 && (args[0] == "fmt" || args[0] == "unescape") {
		subcommand = args[0]
		args = args[1:]
	}

	var inputPath string
	if len(args) > 0 {
		inputPath = args[0]
	}

	input, err := readInput(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
		return
	}

	if subcommand == "unescape" {
		fmt.Fprint(os.Stdout, decondenser.Unescape(input))
		return
	}

	cfg, err := resolveConfig(configPath, profile)
	if err != nil {
		reportError(err)
		stop(1)
		return
	}

	if indentStr != "" {
		cfg = cfg.Indent(indentStr)
	}
	if maxLineSize > 0 {
		cfg = cfg.MaxLineSize(maxLineSize)
	}
	if noBreakSize > 0 {
		cfg = cfg.NoBreakSize(noBreakSize)
	}

	fmt.Fprint(os.Stdout, cfg.Format(input))
}

// reportError prints err to stderr, indenting every line past the first so
// multi-line causes (a YAML parse error naming several bad fields, say)
// read as a single indented block instead of a wall of unrelated-looking
// lines.
func reportError(err error) {
	fmt.Fprintln(os.Stderr, "decondenser:")
	w := indent.NewWriter(os.Stderr, "  ")
	fmt.Fprintln(w, err)
}

// printAvailableProfiles prints the profiles --config would make available
// to --profile, if a config path was given on the command line. A config
// that fails to load is reported the same way resolveConfig's failures
// are, rather than silently skipped.
func printAvailableProfiles(configPath string) {
	if configPath == "" {
		return
	}

	doc, err := config.Load(configPath)
	if err != nil {
		reportError(err)
		return
	}

	names := doc.ProfileNames()
	if len(names) == 0 {
		fmt.Fprintf(os.Stderr, "\n%s defines no profiles.\n", configPath)
		return
	}

	fmt.Fprintf(os.Stderr, "\navailable profiles in %s:\n", configPath)
	w := indent.NewWriter(os.Stderr, "  ")
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

func resolveConfig(configPath, profile string) (*decondenser.Decondenser, error) {
	if configPath == "" {
		if profile != "" {
			return nil, fmt.Errorf("--profile requires --config")
		}
		return decondenser.Generic(), nil
	}

	doc, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return doc.Build(profile)
}

func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
