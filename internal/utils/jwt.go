// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// Typed token verification failures returned by [ValidateAndParseJWTToken].
var (
	// ErrTokenMalformed is returned when the token is not a well-formed JWS,
	// uses an unexpected signing method, or lacks the identity claims.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenSignatureInvalid is returned when the signature does not match
	// the shared secret.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("token is expired")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for principal.
//
// The token carries {id, email, role} plus the standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// The result depends only on its arguments, which makes issuance
// reproducible in tests. All parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-shop-admin", principal, 24*time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, principal models.Principal, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(principal.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ID:    principal.ID,
		Email: principal.Email,
		Role:  principal.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string at the
// instant now and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check, which is mandatory
//   - Presence of the identity claims (id, role)
//
// Failures are reported as one of [ErrTokenMalformed],
// [ErrTokenSignatureInvalid] or [ErrTokenExpired] (wrapped).
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	claims := models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, classifyJWTError(err)
	}

	if claims.ID == 0 || claims.Role == "" {
		return models.Token{}, fmt.Errorf("%w: identity claims are missing", ErrTokenMalformed)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
