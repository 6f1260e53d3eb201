package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-flavor-resolver/internal/adapter"
	"github.com/MKhiriev/go-flavor-resolver/internal/client"
	"github.com/MKhiriev/go-flavor-resolver/internal/config"
	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/service"
	"github.com/MKhiriev/go-flavor-resolver/internal/store"
	"github.com/MKhiriev/go-flavor-resolver/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewCLILogger("flavor-resolver", os.Stderr)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = leveled

	storages := store.NewStorages(log)

	services, err := service.NewServices(storages, cfg.App, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var remote adapter.ResolverAdapter
	if cfg.Adapter.HTTPAddress != "" {
		if remote, err = adapter.NewHTTPResolverAdapter(cfg.Adapter, cfg.App, log); err != nil {
			log.Fatal().Err(err).Msg("error creating remote adapter")
		}
	}

	app, err := client.NewApp(cfg, services, storages, remote, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating resolver app")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("resolution failed")
	}
}
