// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing primitive used by the auth
// service. Plaintext passwords never leave this package in any other form
// than an adaptive bcrypt hash.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes passwords and checks candidates against stored hashes.
type PasswordHasher interface {
	// Hash returns a salted adaptive hash of password.
	// Two calls with the same password return different hashes.
	Hash(ctx context.Context, password string) (string, error)

	// Compare returns nil when password matches hash,
	// [ErrPasswordMismatch] when it does not, or another error when
	// hash is not a recognised bcrypt hash.
	Compare(ctx context.Context, hash, password string) error
}
