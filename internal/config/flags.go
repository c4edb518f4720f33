// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses all configuration flags from args (the command line
// without the program name).
//
// Flags:
//
//	-i input file path, "-" for standard input
//	-log-level minimum log level (debug, info, warn, error)
//	-strict fail instead of printing -1 when no second value exists;
//	        -strict=false turns off a strict mode enabled by the environment
//	-c/-config json file path with configs
//	-version print build information and exit
//
// flag.ErrHelp is returned wrapped when -h or -help is given.
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args, io.Discard)
}

func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	var inputPath string
	var logLevel string
	var strict bool
	var jsonConfigPath string
	var showVersion bool

	fs := flag.NewFlagSet("secondlargest", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&inputPath, "i", "", `Input file path ("-" or empty for stdin)`)
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&strict, "strict", false, "Exit with an error instead of printing -1 when no second value exists")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&showVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidFlags, fs.Args())
	}

	strictSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "strict" {
			strictSet = true
		}
	})

	return &StructuredConfig{
		App: App{
			LogLevel:       logLevel,
			StrictNotFound: strict,
		},
		Input: Input{
			Path: inputPath,
		},
		JSONFilePath:      jsonConfigPath,
		ShowVersion:       showVersion,
		strictNotFoundSet: strictSet,
	}, nil
}

// Usage writes the flag help text to w.
func Usage(w io.Writer) {
	_, _ = parseFlags([]string{"-h"}, w)
}
