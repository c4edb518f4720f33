// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"io"
	"os"
)

// releaseFunc gives back an input acquired by openInput. It is always safe to
// call exactly once.
type releaseFunc func()

// openInput returns the configured input stream. Standard input is borrowed:
// its release func is a no-op so the process-wide handle stays open. A file
// is owned and closed on release.
func (a *App) openInput() (io.Reader, releaseFunc, error) {
	if a.input.UsesStdin() {
		return a.stdin, func() {}, nil
	}

	f, err := os.Open(a.input.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %q: %w", ErrOpenInput, a.input.Path, err)
	}

	release := func() {
		if err := f.Close(); err != nil {
			a.logger.Warn().Err(err).Str("path", a.input.Path).Msg("error closing input file")
		}
	}

	return f, release, nil
}
