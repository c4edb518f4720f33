// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/second-largest/internal/config"
	"github.com/MKhiriev/second-largest/internal/finder"
	"github.com/MKhiriev/second-largest/internal/logger"
	"github.com/MKhiriev/second-largest/internal/service"
	"github.com/MKhiriev/second-largest/internal/utils"
)

type App struct {
	services *service.Services

	input  config.Input
	strict bool

	stdin  io.Reader
	stdout io.Writer
	ids    utils.IDGenerator

	logger *logger.Logger
}

// Option customizes an [App]. Tests use them to replace the process streams.
type Option func(*App)

// WithStdin replaces os.Stdin as the standard input stream.
func WithStdin(r io.Reader) Option {
	return func(a *App) { a.stdin = r }
}

// WithStdout replaces os.Stdout as the result destination.
func WithStdout(w io.Writer) Option {
	return func(a *App) { a.stdout = w }
}

// WithIDGenerator replaces the UUID run id generator.
func WithIDGenerator(g utils.IDGenerator) Option {
	return func(a *App) { a.ids = g }
}

func NewApp(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger, opts ...Option) (*App, error) {
	if services == nil || services.SecondLargestService == nil {
		return nil, ErrNoServices
	}

	a := &App{
		services: services,
		input:    cfg.Input,
		strict:   cfg.App.StrictNotFound,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Run performs one invocation: read the input, compute, print the result
// followed by a newline.
func (a *App) Run(ctx context.Context) error {
	runID := a.ids.Generate()
	log := a.logger.WithRunID(runID)
	ctx = utils.WithRunID(log.WithContext(ctx), runID)

	in, release, err := a.openInput()
	if err != nil {
		return err
	}
	defer release()

	log.Debug().Bool("stdin", a.input.UsesStdin()).Str("path", a.input.Path).Msg("reading input")

	res, err := a.compute(ctx, in)
	if err != nil {
		return fmt.Errorf("error computing second largest: %w", err)
	}

	if !res.Found && a.strict {
		return ErrNotFound
	}

	if _, err = fmt.Fprintln(a.stdout, res.OrSentinel()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	log.Debug().Int("result", res.OrSentinel()).Bool("found", res.Found).Msg("run finished")
	return nil
}

type computeResult struct {
	res finder.Result
	err error
}

// compute runs the service in its own goroutine so cancellation is observed
// while the read is blocked. On cancellation the goroutine is abandoned; it
// ends when the input yields data, EOF or an error.
func (a *App) compute(ctx context.Context, in io.Reader) (finder.Result, error) {
	done := make(chan computeResult, 1)
	go func() {
		res, err := a.services.SecondLargestService.Compute(ctx, in)
		done <- computeResult{res: res, err: err}
	}()

	select {
	case r := <-done:
		return r.res, r.err
	case <-ctx.Done():
		return finder.Result{}, ctx.Err()
	}
}
