// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// second-largest command. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds runtime behaviour settings: log level and how a missing
	// second value is reported.
	App App `envPrefix:"APP_"`

	// Input describes where the integer sequence is read from.
	Input Input `envPrefix:"INPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ShowVersion asks the command to print build information and exit.
	// Flag only: -version.
	ShowVersion bool

	// strictNotFoundSet records that the source set App.StrictNotFound
	// explicitly, so a false value still overrides earlier sources.
	strictNotFoundSet bool
}

// App holds application-level settings.
type App struct {
	// LogLevel is the minimum zerolog level written to stderr
	// (e.g. "debug", "info", "warn"). Defaults to "info".
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// StrictNotFound makes the command fail with a dedicated exit status
	// instead of printing -1 when the input has fewer than two distinct
	// values.
	// Env: APP_STRICT_NOT_FOUND
	StrictNotFound bool `env:"STRICT_NOT_FOUND"`
}

// Input holds the input source settings.
type Input struct {
	// Path is the file the sequence is read from. Empty or "-" means
	// standard input.
	// Env: INPUT_PATH
	Path string `env:"PATH"`
}

// StdinPath is the Input.Path value that selects standard input explicitly.
const StdinPath = "-"

// UsesStdin reports whether the sequence should be read from standard input.
func (i Input) UsesStdin() bool {
	return i.Path == "" || i.Path == StdinPath
}

// DefaultLogLevel is applied when no source sets App.LogLevel.
const DefaultLogLevel = "info"

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args (without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
