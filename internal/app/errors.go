// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/second-largest/internal/reader"
)

var (
	ErrNoServices  = errors.New("no services provided")
	ErrOpenInput   = errors.New("cannot open input")
	ErrWriteOutput = errors.New("cannot write result")
	// ErrNotFound is returned in strict mode instead of printing the -1
	// sentinel.
	ErrNotFound = errors.New("fewer than two distinct values")
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitMalformedInput = 1
	ExitConfig         = 2
	ExitNotFound       = 3
	ExitIO             = 4
	ExitInterrupted    = 130
)

// ExitCode maps an error returned by [App.Run] to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, reader.ErrMalformedInput):
		return ExitMalformedInput
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitIO
	}
}

// Message returns the diagnostic text logged for err.
func Message(err error) string {
	switch {
	case errors.Is(err, reader.ErrMalformedInput):
		return MsgMalformedInput
	case errors.Is(err, ErrNotFound):
		return MsgNoSecondLargest
	case errors.Is(err, ErrWriteOutput):
		return MsgOutputFailed
	case errors.Is(err, context.Canceled):
		return MsgInterrupted
	default:
		return MsgInputUnavailable
	}
}
