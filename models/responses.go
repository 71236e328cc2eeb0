// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// SeededAdmin is the reduced user view returned after bootstrapping the
// first administrator.
type SeededAdmin struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// SeedAdminResponse is returned by POST /api/auth/seed-admin.
type SeedAdminResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    SeededAdmin `json:"user"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response. Message is a
// stable, client-safe text; internal diagnostics are only logged.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
