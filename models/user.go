// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the access level granted to a user account.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleManagement Role = "management"
)

// IsValid reports whether r is one of the predefined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleManagement:
		return true
	default:
		return false
	}
}

// Gender is the self-declared gender stored on the account.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid reports whether g is one of the predefined genders.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Status is the activation state of an account.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// EmailVerification tracks the state of the e-mail ownership check.
type EmailVerification string

const (
	EmailVerificationPending  EmailVerification = "pending"
	EmailVerificationVerified EmailVerification = "verified"
	EmailVerificationFailed   EmailVerification = "failed"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries: use
// [User.Public] to build the client-facing view.
type User struct {
	// ID is the store-assigned unique identifier of the user.
	ID int64 `json:"-"`

	// Name is the display name of the user.
	Name string `json:"-"`

	// Email is the globally unique login identifier.
	Email string `json:"-"`

	// PasswordHash is the adaptive (bcrypt) hash of the user's password.
	// It is never plaintext and never leaves the credential store boundary.
	PasswordHash string `json:"-"`

	Gender         Gender  `json:"-"`
	ProfilePicture *string `json:"-"`

	Status            Status            `json:"-"`
	Role              Role              `json:"-"`
	EmailVerification EmailVerification `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the client-facing projection of the user. The password hash
// is deliberately absent from the returned value.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Gender:         u.Gender,
		ProfilePicture: u.ProfilePicture,
		Role:           u.Role,
	}
}

// Principal returns the identity that is embedded into issued tokens.
func (u User) Principal() Principal {
	return Principal{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

// PublicUser is the JSON view of a user returned by the auth endpoints.
type PublicUser struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Gender         Gender  `json:"gender,omitempty"`
	ProfilePicture *string `json:"profilePicture"`
	Role           Role    `json:"role"`
}

// Principal is the authenticated identity attached to a request after a
// bearer token has been verified. It is the only identity information that
// downstream handlers receive; the store is not consulted again.
type Principal struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
