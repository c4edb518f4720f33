// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Errors returned while loading and validating [StructuredConfig].
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidFlags indicates command-line arguments that are not flags.
	ErrInvalidFlags = errors.New("invalid command-line arguments")
)
