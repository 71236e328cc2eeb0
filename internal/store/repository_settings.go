// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
)

// settingsRepository is the SQL-backed implementation of [SettingsRepository]
// over the "settings" table, whose rows are unique per (group_name, setting_key).
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllSettings loads every settings row ordered by group and key.
func (r *settingsRepository) GetAllSettings(ctx context.Context) ([]models.SettingEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.getAllSettingsQuery()
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetAllSettings").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetAllSettings").Msg("error querying settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.SettingEntry, 0)
	for rows.Next() {
		var entry models.SettingEntry
		if err = rows.Scan(&entry.Group, &entry.Key, &entry.Value, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*settingsRepository.GetAllSettings").Msg("error scanning settings row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetAllSettings").Msg("error iterating settings rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	log.Debug().Str("func", "*settingsRepository.GetAllSettings").Int("rows", len(entries)).Msg("settings loaded")
	return entries, nil
}

// UpsertSettings writes entries inside one transaction, in chunks of
// multi-row INSERT ... ON CONFLICT DO UPDATE statements. Any failure rolls
// the whole batch back and is reported as [ErrSettingsNotSaved].
func (r *settingsRepository) UpsertSettings(ctx context.Context, entries ...models.SettingEntry) error {
	log := logger.FromContext(ctx)

	if len(entries) == 0 {
		log.Debug().Str("func", "*settingsRepository.UpsertSettings").Msg("nothing to upsert")
		return nil
	}

	chunks := chunkSettings(entries, upsertChunkSize)
	err := r.db.inTx(ctx, nil, func(tx *sql.Tx) error {
		for idx, chunk := range chunks {
			query, args, err := r.db.upsertSettingsQuery(chunk)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "*settingsRepository.UpsertSettings").
					Int("chunk", idx+1).
					Int("chunks", len(chunks)).
					Str("classification", r.db.classify(err).String()).
					Msg("failed to upsert settings chunk")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*settingsRepository.UpsertSettings").
			Int("rows", len(entries)).
			Msg("settings transaction rolled back")
		return fmt.Errorf("%w: %w", ErrSettingsNotSaved, err)
	}

	log.Info().
		Str("func", "*settingsRepository.UpsertSettings").
		Int("rows", len(entries)).
		Int("chunks", len(chunks)).
		Msg("settings upserted")
	return nil
}
