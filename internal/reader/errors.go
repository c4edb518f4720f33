// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reader

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the parent of every parsing error returned by [Read].
var ErrMalformedInput = errors.New("malformed input")

var (
	// ErrMissingCount is returned when the stream holds no tokens at all.
	ErrMissingCount = fmt.Errorf("%w: missing element count", ErrMalformedInput)
	// ErrInvalidCount is returned when the count is not a non-negative integer.
	ErrInvalidCount = fmt.Errorf("%w: invalid element count", ErrMalformedInput)
	// ErrInvalidToken is returned when an element is not an integer.
	ErrInvalidToken = fmt.Errorf("%w: invalid element", ErrMalformedInput)
	// ErrCountMismatch is returned when the stream ends before count elements
	// were read.
	ErrCountMismatch = fmt.Errorf("%w: fewer elements than declared", ErrMalformedInput)
)
