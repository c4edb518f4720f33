// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/second-largest/internal/finder"
	"github.com/MKhiriev/second-largest/internal/logger"
	"github.com/MKhiriev/second-largest/internal/reader"
	"github.com/MKhiriev/second-largest/internal/utils"
)

type secondLargestService struct {
	logger *logger.Logger
}

func NewSecondLargestService(logger *logger.Logger) SecondLargestService {
	return &secondLargestService{
		logger: logger,
	}
}

func (s *secondLargestService) Compute(ctx context.Context, r io.Reader) (finder.Result, error) {
	if err := ctx.Err(); err != nil {
		return finder.Result{}, err
	}

	seq, err := reader.Read(r)
	if err != nil {
		return finder.Result{}, fmt.Errorf("error reading input: %w", err)
	}

	// reading stdin can block for a while
	if err = ctx.Err(); err != nil {
		return finder.Result{}, err
	}

	res := finder.Find(seq)

	s.loggerFor(ctx).Debug().
		Int("count", len(seq)).
		Bool("found", res.Found).
		Int("value", res.Value).
		Msg("second largest computed")

	return res, nil
}

// loggerFor prefers the run-scoped logger attached to ctx by the app.
func (s *secondLargestService) loggerFor(ctx context.Context) *logger.Logger {
	if _, ok := utils.GetRunIDFromContext(ctx); ok {
		return logger.FromContext(ctx)
	}

	return s.logger
}
