// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert violates the unique
	// constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAdminAlreadyExists is returned by CreateFirstAdmin when an account
	// with the admin role is already present.
	ErrAdminAlreadyExists = errors.New("admin user already exists")

	// ErrSettingsNotSaved is returned when the settings transaction was
	// rolled back. No row of the batch has been persisted.
	ErrSettingsNotSaved = errors.New("settings were not saved")

	// ErrUnsupportedDSN is returned by NewDB when the DSN scheme maps to no
	// known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery      = errors.New("error building sql query")
	ErrExecutingQuery        = errors.New("error executing sql query")
	ErrBeginningTransaction  = errors.New("failed to begin transaction")
	ErrCommittingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement    = errors.New("failed to execute statement")
	ErrScanningRow           = errors.New("failed to scan row")
	ErrScanningRows          = errors.New("failed to scan rows")
)
