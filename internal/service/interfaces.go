// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/second_largest_service_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/second-largest/internal/finder"
)

// SecondLargestService turns an input stream into a second-largest result.
type SecondLargestService interface {
	// Compute reads a count followed by that many integers from r and
	// returns the second-largest distinct value among them.
	// Malformed input is reported with an error wrapping
	// reader.ErrMalformedInput.
	Compute(ctx context.Context, r io.Reader) (finder.Result, error)
}
