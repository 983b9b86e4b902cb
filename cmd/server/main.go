package main

import (
	"context"
	"fmt"

	"github.com/makarov-dev/movierec/internal/adapter"
	"github.com/makarov-dev/movierec/internal/catalog"
	"github.com/makarov-dev/movierec/internal/config"
	handler "github.com/makarov-dev/movierec/internal/handler/http"
	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/server"
	"github.com/makarov-dev/movierec/internal/service"
	"github.com/makarov-dev/movierec/internal/store"
	"github.com/makarov-dev/movierec/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("movierec-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	movies, err := catalog.NewSQLiteCatalog(cfg.Storage.Catalog.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading movie catalog")
	}

	remote := adapter.NewHTTPRemoteCatalog(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)

	storages := store.NewStorages(db)
	services := service.NewServices(storages, remote, movies, *cfg, log)

	// Startup reconciliation pass plus the recurring schedule.
	syncJob := workers.NewSyncJob(services.SyncService, logger.NewLogger("movierec-sync-job"))
	jobCtx := log.WithContext(ctx)
	syncJob.Start(jobCtx, cfg.Workers.SyncInterval)

	handlers := handler.NewHandler(services, syncJob, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log, syncJob.Stop)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
