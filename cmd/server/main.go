package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-safe-keeper/internal/config"
	"github.com/MKhiriev/go-safe-keeper/internal/crypto"
	"github.com/MKhiriev/go-safe-keeper/internal/handler"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/server"
	"github.com/MKhiriev/go-safe-keeper/internal/service"
	"github.com/MKhiriev/go-safe-keeper/internal/store"
	"github.com/MKhiriev/go-safe-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	// unversioned builds report "N/A" rather than failing on a missing version
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("go-safe-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Info().
		Str("backend", cfg.Storage.Backend).
		Str("address", cfg.Server.HTTPAddress).
		Str("secret_fingerprint", crypto.Fingerprint(cfg.App.SafeSecret())).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
