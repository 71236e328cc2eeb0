// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-shop-admin/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	SettingsRepository SettingsRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		SettingsRepository: NewSettingsRepository(db, log),
	}
}
