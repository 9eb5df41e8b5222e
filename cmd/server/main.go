package main

import (
	"context"

	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/internal/handler"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/server"
	"github.com/MKhiriev/go-qr-redirect/internal/service"
	"github.com/MKhiriev/go-qr-redirect/internal/store"
	"github.com/MKhiriev/go-qr-redirect/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("qr-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("qr-server", cfg.App.LogLevel)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", buildInfo.String()).Msg("starting qr redirect server")

	if buildVersion != "" && cfg.App.Version == "dev" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("base_url", cfg.App.BaseURL).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("image_archive", cfg.Storage.Images.Endpoint != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
