// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-shop-admin server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix  - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        - direct environment variable name for scalar fields.
//   - envDefault - value used when the variable is not set.
type StructuredConfig struct {
	// App holds token, password hashing and bootstrap settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the admin CLI to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, the administrator bootstrap and versioning.
type App struct {
	// TokenSignKey is the shared secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"go-shop-admin"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST" envDefault:"10"`

	// HashWorkers bounds how many password hashes are computed concurrently.
	// Zero means GOMAXPROCS.
	// Env: APP_HASH_WORKERS
	HashWorkers int `env:"HASH_WORKERS"`

	// AdminSetupSecret is the out-of-band one-time secret that must be
	// presented in the X-Setup-Secret header to bootstrap the first admin.
	// Seeding is disabled while it is empty.
	// Env: APP_ADMIN_SETUP_SECRET
	AdminSetupSecret string `env:"ADMIN_SETUP_SECRET"`

	// AdminName is the display name of the bootstrapped administrator.
	// Env: APP_ADMIN_NAME
	AdminName string `env:"ADMIN_NAME" envDefault:"Admin User"`

	// AdminEmail is the login of the bootstrapped administrator.
	// Env: APP_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`

	// AdminPassword is the initial password of the bootstrapped administrator.
	// Required when AdminSetupSecret is set.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the connection:
	//   - "postgres://..." or "postgresql://..." - PostgreSQL via pgx;
	//   - "sqlite://<path>" or "file:<path>"     - SQLite via go-sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings used by the admin CLI to reach the server.
type Adapter struct {
	// HTTPAddress is the base URL of the server API
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Environment variables (with defaults)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
