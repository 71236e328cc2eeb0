// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// minAdminPasswordLength mirrors the password length rule applied to
// registered users.
const minAdminPasswordLength = 6

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and positive token duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.App.HashWorkers < 0 {
		return fmt.Errorf("%w: hash workers must not be negative", ErrInvalidAppConfigs)
	}
	if cfg.App.AdminSetupSecret != "" {
		if cfg.App.AdminEmail == "" || cfg.App.AdminName == "" {
			return fmt.Errorf("%w: admin name and email are required when seeding is enabled", ErrInvalidAppConfigs)
		}
		if len(cfg.App.AdminPassword) < minAdminPasswordLength {
			return fmt.Errorf("%w: admin password must be at least %d characters", ErrInvalidAppConfigs, minAdminPasswordLength)
		}
	}

	if !isSupportedDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func isSupportedDSN(dsn string) bool {
	for _, prefix := range []string{"postgres://", "postgresql://", "sqlite://", "file:"} {
		if strings.HasPrefix(dsn, prefix) && len(dsn) > len(prefix) {
			return true
		}
	}
	return false
}
