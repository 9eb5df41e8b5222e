package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qr-redirect/internal/adapter"
	"github.com/MKhiriev/go-qr-redirect/internal/client"
	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewConsoleLogger("qr-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	logLevel := cfg.App.LogLevel
	if logLevel == "" {
		logLevel = "warn"
	}
	log := logger.NewConsoleLogger("qr-client", logLevel)

	qrAdapter, err := adapter.NewHTTPQRCodeAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http adapter")
	}

	app, err := client.NewApp(qrAdapter, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, client.ErrNoCommand) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}
