// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrAdminAlreadyExists is returned by SeedAdmin once any admin account exists.
	ErrAdminAlreadyExists = errors.New("admin user already exists")
	// ErrSetupDisabled is returned by SeedAdmin when no setup secret is configured.
	ErrSetupDisabled = errors.New("admin setup is disabled")
	// ErrInvalidSetupSecret is returned by SeedAdmin when the presented secret does not match.
	ErrInvalidSetupSecret = errors.New("invalid setup secret")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrSettingsNotSaved means the write transaction was rolled back; the
	// stored state is unknown to the caller and must be re-read.
	ErrSettingsNotSaved  = errors.New("settings were not saved")
	ErrSettingsNotLoaded = errors.New("settings could not be loaded")
	ErrInvalidSettings   = errors.New("invalid settings payload")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
