// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-shop-admin/models"
)

// AuthService registers and authenticates accounts and issues bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// SeedAdmin creates the first administrator account. setupSecret is the
	// value presented by the caller out of band.
	SeedAdmin(ctx context.Context, setupSecret string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SettingsService reads and writes the settings tree.
type SettingsService interface {
	GetSettings(ctx context.Context) (models.SettingsTree, error)

	// UpdateSettings upserts every (group, key) of tree atomically. Keys not
	// present in tree are left untouched.
	UpdateSettings(ctx context.Context, tree models.SettingsTree) error
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
