// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/store"
	"github.com/MKhiriev/go-shop-admin/internal/validators"
	"github.com/MKhiriev/go-shop-admin/models"
)

// settingsService serializes the settings tree to and from flat rows.
type settingsService struct {
	settingsRepository store.SettingsRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewSettingsService(settingsRepository store.SettingsRepository, validator validators.Validator, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		validator:          validator,
		logger:             logger,
	}
}

// GetSettings returns every stored setting as a tree. An empty store yields
// an empty, non-nil tree.
func (s *settingsService) GetSettings(ctx context.Context) (models.SettingsTree, error) {
	log := logger.FromContext(ctx)

	entries, err := s.settingsRepository.GetAllSettings(ctx)
	if err != nil {
		log.Err(err).Msg("loading settings failed")
		return nil, fmt.Errorf("%w: %w", ErrSettingsNotLoaded, err)
	}

	return unflattenSettings(entries), nil
}

// UpdateSettings validates tree, flattens it and upserts all rows in one
// transaction.
func (s *settingsService) UpdateSettings(ctx context.Context, tree models.SettingsTree) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, tree); err != nil {
		log.Debug().Err(err).Msg("invalid settings tree")
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	entries, err := flattenSettings(tree)
	if err != nil {
		log.Debug().Err(err).Msg("settings tree cannot be encoded")
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if len(entries) == 0 {
		return nil
	}

	if err = s.settingsRepository.UpsertSettings(ctx, entries...); err != nil {
		log.Err(err).Int("rows", len(entries)).Msg("saving settings failed")
		return fmt.Errorf("%w: %w", ErrSettingsNotSaved, err)
	}

	log.Info().Int("rows", len(entries)).Msg("settings saved")
	return nil
}
