// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/crypto"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/store"
	"github.com/MKhiriev/go-shop-admin/internal/utils"
	"github.com/MKhiriev/go-shop-admin/internal/validators"
	"github.com/MKhiriev/go-shop-admin/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, the first admin
// bootstrap and JWT token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies bcrypt password hashes.
	hasher crypto.PasswordHasher

	// validator checks register and login payloads.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	setupSecret   string
	adminName     string
	adminEmail    string
	adminPassword string

	// now is the clock used for token issuance and verification.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// AuthServiceOption customises an AuthService at construction time.
type AuthServiceOption func(*authService)

// WithClock replaces the wall clock used to stamp and verify tokens.
func WithClock(now func() time.Time) AuthServiceOption {
	return func(a *authService) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, cfg config.App, logger *logger.Logger, opts ...AuthServiceOption) AuthService {
	a := &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		setupSecret:    cfg.AdminSetupSecret,
		adminName:      cfg.AdminName,
		adminEmail:     cfg.AdminEmail,
		adminPassword:  cfg.AdminPassword,
		now:            time.Now,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// RegisterUser creates a new account with role user.
//
// Returns the persisted user (with a store-assigned ID) or:
//   - ErrInvalidDataProvided wrapping the validator error for a bad payload.
//   - ErrEmailAlreadyExists if the email is taken.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("email", request.Email).Msg("invalid register request")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if request.Gender == "" {
		request.Gender = models.GenderMale
	}

	_, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		log.Debug().Str("email", request.Email).Msg("email is already registered")
		return models.User{}, ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(ctx, request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:              request.Name,
		Email:             request.Email,
		PasswordHash:      passwordHash,
		Gender:            request.Gender,
		ProfilePicture:    request.ProfilePicture,
		Status:            models.StatusInactive,
		Role:              models.RoleUser,
		EmailVerification: models.EmailVerificationPending,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account by email and password.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is blank.
//   - ErrUserNotFound if no account is registered under the email.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid login request")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(ctx, foundUser.PasswordHash, request.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Debug().Int64("id", foundUser.ID).Msg("wrong password")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Int64("id", foundUser.ID).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return foundUser, nil
}

// SeedAdmin creates the first administrator from the configured identity.
//
// Returns the created admin or:
//   - ErrSetupDisabled if no setup secret is configured.
//   - ErrInvalidSetupSecret if setupSecret does not match.
//   - ErrAdminAlreadyExists if an admin account is already present.
func (a *authService) SeedAdmin(ctx context.Context, setupSecret string) (models.User, error) {
	log := logger.FromContext(ctx)

	if a.setupSecret == "" {
		return models.User{}, ErrSetupDisabled
	}
	if !secretsEqual(a.setupSecret, setupSecret) {
		log.Warn().Msg("admin seeding attempted with a wrong setup secret")
		return models.User{}, ErrInvalidSetupSecret
	}

	admins, err := a.userRepository.CountUsersByRole(ctx, models.RoleAdmin)
	if err != nil {
		log.Err(err).Msg("counting admins failed")
		return models.User{}, fmt.Errorf("counting admins failed: %w", err)
	}
	if admins > 0 {
		return models.User{}, ErrAdminAlreadyExists
	}

	passwordHash, err := a.hasher.Hash(ctx, a.adminPassword)
	if err != nil {
		log.Err(err).Msg("admin password hashing failed")
		return models.User{}, fmt.Errorf("admin password hashing failed: %w", err)
	}

	admin, err := a.userRepository.CreateFirstAdmin(ctx, models.User{
		Name:              a.adminName,
		Email:             a.adminEmail,
		PasswordHash:      passwordHash,
		Gender:            models.GenderMale,
		Status:            models.StatusActive,
		Role:              models.RoleAdmin,
		EmailVerification: models.EmailVerificationPending,
	})
	switch {
	case errors.Is(err, store.ErrAdminAlreadyExists):
		return models.User{}, ErrAdminAlreadyExists
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, ErrEmailAlreadyExists
	case err != nil:
		log.Err(err).Msg("admin creation ended with error")
		return models.User{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	log.Info().Int64("id", admin.ID).Str("email", admin.Email).Msg("first admin created")
	return admin, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Principal(), a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure is wrapped in ErrTokenIsExpiredOrInvalid. The
// typed cause from utils stays reachable through errors.Is.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// secretsEqual compares two secrets in constant time regardless of their lengths.
func secretsEqual(expected, presented string) bool {
	e := sha256.Sum256([]byte(expected))
	p := sha256.Sum256([]byte(presented))
	return subtle.ConstantTimeCompare(e[:], p[:]) == 1
}
