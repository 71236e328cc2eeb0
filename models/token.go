// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by every issued bearer token.
//
// Besides the registered claims (iss, sub, iat, exp) it carries the
// authenticated identity {id, email, role}. The role is a snapshot taken at
// issuance: a later role change does not affect already issued tokens.
type Claims struct {
	jwt.RegisteredClaims

	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Principal returns the identity encoded in the claims.
func (c Claims) Principal() Principal {
	return Principal{
		ID:    c.ID,
		Email: c.Email,
		Role:  c.Role,
	}
}

// Token wraps a signed JWT together with its decoded claims.
type Token struct {
	// Claims holds the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
