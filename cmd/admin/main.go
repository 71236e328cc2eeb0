// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-shop-admin/internal/adapter"
	"github.com/MKhiriev/go-shop-admin/internal/client"
	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("go-shop-admin-cli")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	adminClient, err := adapter.NewHTTPAdminClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create admin client")
	}

	app, err := client.NewApp(
		adminClient,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
		client.WithToken(os.Getenv("ADMIN_TOKEN")),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("init admin app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
