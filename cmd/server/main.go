package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/painel-produtividade/internal/config"
	httphandler "github.com/MKhiriev/painel-produtividade/internal/handler/http"
	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/server"
	"github.com/MKhiriev/painel-produtividade/internal/service"
	"github.com/MKhiriev/painel-produtividade/internal/store"
	"github.com/MKhiriev/painel-produtividade/internal/utils"
	"github.com/MKhiriev/painel-produtividade/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine, environment variables win anyway
	_ = godotenv.Load()

	log := logger.NewLogger("painel-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	adminHash, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing admin password")
	}
	if err := store.EnsureCanonicalAdmin(ctx, db, cfg.Admin.Name, cfg.Admin.Email, adminHash); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping canonical admin")
	}

	if cfg.App.SeedDemoData {
		if err := store.SeedDemoData(ctx, db, adminHash, cfg.App.Categories); err != nil {
			log.Fatal().Err(err).Msg("error seeding demo data")
		}
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)
	handler := httphandler.NewHandler(services, db, log)

	background := workers.NewWorkers(storages, cfg, log)
	background.Run()
	defer background.Stop()

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
