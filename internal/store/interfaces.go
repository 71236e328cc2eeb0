// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-shop-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

// UserRepository persists user accounts. Email uniqueness is enforced by
// the underlying table.
type UserRepository interface {
	// CreateUser inserts user and returns it with the store-assigned ID and
	// timestamps. Returns [ErrEmailAlreadyExists] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// CountUsersByRole returns the number of accounts holding role.
	CountUsersByRole(ctx context.Context, role models.Role) (int64, error)

	// CreateFirstAdmin inserts admin inside a transaction that first checks
	// no admin account exists. Returns [ErrAdminAlreadyExists] otherwise.
	CreateFirstAdmin(ctx context.Context, admin models.User) (models.User, error)
}

// SettingsRepository persists flat settings rows keyed by (group, key).
type SettingsRepository interface {
	// GetAllSettings returns every row ordered by group then key.
	GetAllSettings(ctx context.Context) ([]models.SettingEntry, error)

	// UpsertSettings inserts or updates all entries atomically: either every
	// row is written or none is.
	UpsertSettings(ctx context.Context, entries ...models.SettingEntry) error
}
