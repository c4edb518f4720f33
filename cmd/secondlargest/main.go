package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/second-largest/internal/app"
	"github.com/MKhiriev/second-largest/internal/config"
	"github.com/MKhiriev/second-largest/internal/logger"
	"github.com/MKhiriev/second-largest/internal/service"
	"github.com/MKhiriev/second-largest/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.NewLogger("secondlargest", os.Stderr)

	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			config.Usage(os.Stderr)
			return app.ExitOK
		}
		log.Error().Err(err).Msg(app.MsgInvalidConfig)
		return app.ExitConfig
	}

	if cfg.ShowVersion {
		_ = models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)
		return app.ExitOK
	}

	log, err = log.SetLevel(cfg.App.LogLevel)
	if err != nil {
		// validate() already accepted the level, so this is unexpected
		fmt.Fprintln(os.Stderr, err)
		return app.ExitConfig
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services := service.NewServices(log)

	a, err := app.NewApp(services, *cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("init app error")
		return app.ExitIO
	}

	if err = a.Run(ctx); err != nil {
		log.Error().Err(err).Msg(app.Message(err))
		return app.ExitCode(err)
	}

	return app.ExitOK
}
