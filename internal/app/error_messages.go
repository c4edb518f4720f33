// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs one invocation of the second-largest command: it acquires
// the input stream, delegates to the service layer, writes the result and
// maps failures to process exit codes.
//
// All Msg* constants are human-readable diagnostic strings written to the
// log when a run fails. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgMalformedInput is logged when the input is not a count followed by
	// that many integers.
	MsgMalformedInput = "malformed input"

	// MsgNoSecondLargest is logged in strict mode when the input holds fewer
	// than two distinct values.
	MsgNoSecondLargest = "no second largest value"

	// MsgInputUnavailable is logged when the input file cannot be opened or
	// the stream fails while reading.
	MsgInputUnavailable = "input unavailable"

	// MsgOutputFailed is logged when the result cannot be written.
	MsgOutputFailed = "writing result failed"

	// MsgInvalidConfig is logged when configuration cannot be loaded.
	MsgInvalidConfig = "invalid configuration"

	// MsgInterrupted is logged when the run is cancelled by a signal.
	MsgInterrupted = "interrupted"
)
