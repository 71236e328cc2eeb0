// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-admin/internal/workers"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements [PasswordHasher] with bcrypt. Every hash and
// compare runs inside the supplied [workers.Runner], so the number of
// concurrent bcrypt computations never exceeds the runner's size.
type BcryptHasher struct {
	cost   int
	runner workers.Runner
}

// NewBcryptHasher returns a hasher using cost. Costs outside
// [bcrypt.MinCost, bcrypt.MaxCost] are replaced with bcrypt.DefaultCost.
func NewBcryptHasher(cost int, runner workers.Runner) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost, runner: runner}
}

func (h *BcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	var hashed []byte
	err := h.runner.Do(ctx, func() error {
		var err error
		hashed, err = bcrypt.GenerateFromPassword([]byte(password), h.cost)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

func (h *BcryptHasher) Compare(ctx context.Context, hash, password string) error {
	err := h.runner.Do(ctx, func() error {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	})
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("error comparing password hash: %w", err)
	}

	return nil
}
