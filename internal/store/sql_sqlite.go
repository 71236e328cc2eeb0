// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/migrations"
)

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, path := sqliteDSN(cfg.DSN)

	// db will be in file
	if err := createLocalDBDirIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite serialises writers; a single connection avoids SQLITE_BUSY
	// between concurrent transactions of this process
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, migrations.SQLite, log), nil
}

// sqliteDSN converts a sqlite:// DSN into the form go-sqlite3 expects and
// returns the database file path. file: DSNs are passed through unchanged.
// Foreign keys are always switched on.
func sqliteDSN(raw string) (dsn string, path string) {
	dsn = raw
	if strings.HasPrefix(raw, sqliteScheme) {
		dsn = sqliteFileScheme + strings.TrimPrefix(raw, sqliteScheme)
	}

	path = strings.TrimPrefix(dsn, sqliteFileScheme)
	query := ""
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path, query = path[:idx], path[idx+1:]
	}

	values, err := url.ParseQuery(query)
	if err == nil && values.Get("_foreign_keys") == "" && values.Get("_fk") == "" {
		if query == "" {
			dsn += "?_foreign_keys=on"
		} else {
			dsn += "&_foreign_keys=on"
		}
	}

	return dsn, path
}

func createLocalDBDirIfNotExists(dbFile string) error {
	if dbFile == "" || dbFile == ":memory:" {
		return nil
	}

	dir := filepath.Dir(dbFile)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	return nil
}
