package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/vip-motors/internal/adapter"
	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/crypto"
	"github.com/MKhiriev/vip-motors/internal/handler"
	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/media"
	"github.com/MKhiriev/vip-motors/internal/server"
	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/internal/workers"
	"github.com/MKhiriev/vip-motors/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vip-motors-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.New("vip-motors-server", os.Stdout, logger.LevelFor(cfg.App.Environment))

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	hasher := crypto.NewBcryptPool(cfg.Auth.BcryptCost, cfg.Workers.HashPoolSize)

	notifier, err := adapter.NewNotifier(cfg.Mailer, cfg.App.FrontendURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notifier")
	}

	var presigner media.Presigner
	if cfg.Media.Bucket != "" {
		s3Presigner, err := media.NewS3Presigner(ctx, cfg.Media)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating image presigner")
		}
		presigner = s3Presigner
	} else {
		log.Warn().Msg("media bucket is not configured, image uploads are disabled")
	}

	services, err := service.NewServices(service.Dependencies{
		Storages:  storages,
		Hasher:    hasher,
		Notifier:  notifier,
		Presigner: presigner,
		Build:     models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(log).Add("bcrypt-pool", hasher)

	srv, err := server.NewServer(handlers, cfg.Server, bgWorkers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
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
