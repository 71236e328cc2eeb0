// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/crypto"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/store"
	"github.com/MKhiriev/go-shop-admin/internal/validators"
)

type Services struct {
	AuthService     AuthService
	SettingsService SettingsService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, validators.NewAuthValidator(), cfg.App, logger),
		SettingsService: NewSettingsService(storages.SettingsRepository, validators.NewSettingsValidator(), logger),
		AppInfoService:  appInfoService,
	}, nil
}
