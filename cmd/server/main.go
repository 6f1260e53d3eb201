package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-flavor-resolver/internal/config"
	"github.com/MKhiriev/go-flavor-resolver/internal/handler"
	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/server"
	"github.com/MKhiriev/go-flavor-resolver/internal/service"
	"github.com/MKhiriev/go-flavor-resolver/internal/store"
	"github.com/MKhiriev/go-flavor-resolver/internal/workers"
	"github.com/MKhiriev/go-flavor-resolver/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("flavor-resolver-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = leveled

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(log)

	services, err := service.NewServices(storages, cfg.App, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if cfg.Storage.Declaration.Path != "" {
		resolved, err := services.VariantService.Reload(ctx)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.Declaration.Path).Msg("error resolving declaration")
		}
		log.Info().Int("variants", len(resolved)).Msg("declaration resolved")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers := workers.NewWorkers(services, cfg.Workers, log)
	workersDone := make(chan struct{})
	go func() {
		bgWorkers.Run(ctx)
		close(workersDone)
	}()

	runErr := srv.RunServer(ctx)
	stop()
	<-workersDone

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
}
