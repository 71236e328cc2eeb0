// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the shop admin HTTP API.
//
// [AdminClient] hides request building, bearer-token handling and error
// decoding from the admin CLI. Error bodies are mapped by their "kind" field
// onto the sentinel errors in errors.go so that callers can branch with
// [errors.Is] (e.g. [ErrForbidden] for a non-admin token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/admin_client_mock.go -package=mock

// AdminClient talks to the shop admin server.
type AdminClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	// Register creates a user account. The returned token is stored.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates by email and password. The returned token is stored.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	// SeedAdmin bootstraps the first administrator using the setup secret.
	SeedAdmin(ctx context.Context, setupSecret string) (models.SeedAdminResponse, error)

	// GetSettings fetches the whole settings tree. Requires an admin token.
	GetSettings(ctx context.Context) (models.SettingsTree, error)

	// PutSettings upserts every leaf of tree. Requires an admin token.
	PutSettings(ctx context.Context, tree models.SettingsTree) error

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
