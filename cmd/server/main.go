// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/crypto"
	"github.com/MKhiriev/go-shop-admin/internal/handler"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/server"
	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/internal/store"
	"github.com/MKhiriev/go-shop-admin/internal/workers"
	"github.com/MKhiriev/go-shop-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-shop-admin-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost, workers.NewPool(cfg.App.HashWorkers))

	services, err := service.NewServices(store.NewStorages(db, log), hasher, *cfg, log)
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

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		db.Close()
		os.Exit(1)
	}
}
