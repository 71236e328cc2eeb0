// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-shop-admin/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable    = "users"
	settingsTable = "settings"

	// upsertChunkSize bounds the rows of one multi-row INSERT: 3 bind
	// parameters per row stays under SQLite's historical 999 limit.
	upsertChunkSize = 200

	upsertSettingsSuffix = "ON CONFLICT (group_name, setting_key) DO UPDATE SET " +
		"setting_value = EXCLUDED.setting_value, updated_at = CURRENT_TIMESTAMP"
)

var userColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"gender",
	"profile_picture",
	"status",
	"role",
	"email_verification",
	"created_at",
	"updated_at",
}

var settingColumns = []string{
	"group_name",
	"setting_key",
	"setting_value",
	"created_at",
	"updated_at",
}

func (db *DB) createUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns[1:]...).
		Values(
			user.Name,
			user.Email,
			user.PasswordHash,
			string(user.Gender),
			user.ProfilePicture,
			string(user.Status),
			string(user.Role),
			string(user.EmailVerification),
			user.CreatedAt,
			user.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) findUserByEmailQuery(email string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func (db *DB) countUsersByRoleQuery(role models.Role) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(usersTable).
		Where(sq.Eq{"role": string(role)}).
		ToSql()
}

func (db *DB) getAllSettingsQuery() (string, []any, error) {
	return db.builder.
		Select(settingColumns...).
		From(settingsTable).
		OrderBy("group_name", "setting_key").
		ToSql()
}

// upsertSettingsQuery builds one multi-row upsert for entries.
func (db *DB) upsertSettingsQuery(entries []models.SettingEntry) (string, []any, error) {
	if len(entries) == 0 {
		return "", nil, fmt.Errorf("%w: no settings to upsert", ErrBuildingSQLQuery)
	}

	insert := db.builder.
		Insert(settingsTable).
		Columns("group_name", "setting_key", "setting_value")
	for _, entry := range entries {
		insert = insert.Values(entry.Group, entry.Key, entry.Value)
	}

	return insert.Suffix(upsertSettingsSuffix).ToSql()
}

// chunkSettings splits entries into consecutive batches of at most size rows.
func chunkSettings(entries []models.SettingEntry, size int) [][]models.SettingEntry {
	if size <= 0 {
		size = upsertChunkSize
	}

	chunks := make([][]models.SettingEntry, 0, (len(entries)+size-1)/size)
	for start := 0; start < len(entries); start += size {
		end := min(start+size, len(entries))
		chunks = append(chunks, entries[start:end])
	}

	return chunks
}
