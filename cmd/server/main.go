package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/handler"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/objectstore"
	"github.com/MKhiriev/resume-keeper/internal/server"
	"github.com/MKhiriev/resume-keeper/internal/service"
	"github.com/MKhiriev/resume-keeper/internal/store"
	"github.com/MKhiriev/resume-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("resume-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.HTTPAddress).
		Str("object_provider", cfg.Storage.Objects.Provider).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	objectStorage, err := objectstore.NewObjectStorage(ctx, cfg.Storage.Objects, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object storage client")
	}

	services := service.NewServices(storages, objectStorage, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
