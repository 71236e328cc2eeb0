// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/internal/validators"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAuth(authSvc service.AuthService) *Handler {
	return newTestHandler(&service.Services{AuthService: authSvc})
}

var registeredUser = models.User{
	ID:           5,
	Name:         "Jane Doe",
	Email:        "jane@example.com",
	PasswordHash: "$2a$10$secret-hash",
	Gender:       models.GenderMale,
	Role:         models.RoleUser,
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var got models.RegisterRequest
	h := newHandlerWithAuth(&mockAuthService{
		registerFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			got = request
			return registeredUser, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com","password":"secret1","gender":"female"}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.GenderFemale, got.Gender)

	var body models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "User registered successfully!", body.Message)
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, registeredUser.Public(), body.User)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantKind    string
		wantMessage string
	}{
		{
			name:        "invalid JSON",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantKind:    kindValidation,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "missing fields",
			body:        `{}`,
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrMissingRequiredFields),
			wantStatus:  http.StatusBadRequest,
			wantKind:    kindValidation,
			wantMessage: "Please fill all required fields.",
		},
		{
			name:        "bad format",
			body:        `{}`,
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidFormat),
			wantStatus:  http.StatusBadRequest,
			wantKind:    kindValidation,
			wantMessage: "Invalid input data",
		},
		{
			name:        "email exists",
			body:        `{}`,
			err:         service.ErrEmailAlreadyExists,
			wantStatus:  http.StatusBadRequest,
			wantKind:    kindConflict,
			wantMessage: "Email already exists",
		},
		{
			name:        "unexpected",
			body:        `{}`,
			err:         errors.New("pq: connection refused on 10.0.0.1"),
			wantStatus:  http.StatusInternalServerError,
			wantKind:    kindInternal,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(&mockAuthService{
				registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
					return models.User{}, tt.err
				},
			})

			rec := httptest.NewRecorder()
			h.register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.NotContains(t, rec.Body.String(), "10.0.0.1")
		})
	}
}

func TestRegister_TokenCreationFails(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{
		registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			return registeredUser, nil
		},
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	})

	rec := httptest.NewRecorder()
	h.register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.User, error) {
			assert.Equal(t, models.LoginRequest{Email: "jane@example.com", Password: "secret1"}, request)
			return registeredUser, nil
		},
	})

	rec := httptest.NewRecorder()
	h.login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"jane@example.com","password":"secret1"}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, int64(5), body.User.ID)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantKind    string
		wantMessage string
	}{
		{name: "not found", err: service.ErrUserNotFound, wantStatus: http.StatusNotFound, wantKind: kindNotFound, wantMessage: "User not found"},
		{name: "wrong password", err: service.ErrWrongPassword, wantStatus: http.StatusBadRequest, wantKind: kindInvalidCredentials, wantMessage: "Invalid password"},
		{
			name:        "missing fields",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrMissingRequiredFields),
			wantStatus:  http.StatusBadRequest,
			wantKind:    kindValidation,
			wantMessage: "Please fill all required fields.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(&mockAuthService{
				loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
					return models.User{}, tt.err
				},
			})

			rec := httptest.NewRecorder()
			h.login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`)))

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

// ─────────────────────────────────────────────
// seedAdmin
// ─────────────────────────────────────────────

func TestSeedAdmin_Success(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{
		seedAdminFn: func(_ context.Context, secret string) (models.User, error) {
			assert.Equal(t, "setup-secret", secret)
			return models.User{ID: 1, Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin, PasswordHash: "hash"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/seed-admin", nil)
	req.Header.Set(setupSecretHeader, "setup-secret")
	rec := httptest.NewRecorder()

	h.seedAdmin(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Admin user created successfully",
		"user": {"id": 1, "name": "Admin User", "email": "admin@example.com", "role": "admin"}
	}`, rec.Body.String())
}

func TestSeedAdmin_Errors(t *testing.T) {
	tests := []struct {
		err         error
		wantStatus  int
		wantKind    string
		wantMessage string
	}{
		{err: service.ErrAdminAlreadyExists, wantStatus: http.StatusBadRequest, wantKind: kindConflict, wantMessage: "Admin user already exists"},
		{err: service.ErrInvalidSetupSecret, wantStatus: http.StatusUnauthorized, wantKind: kindAuthentication, wantMessage: "Invalid setup secret"},
		{err: service.ErrSetupDisabled, wantStatus: http.StatusForbidden, wantKind: kindAuthorization, wantMessage: "Admin setup is disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := newHandlerWithAuth(&mockAuthService{
				seedAdminFn: func(context.Context, string) (models.User, error) {
					return models.User{}, tt.err
				},
			})

			rec := httptest.NewRecorder()
			h.seedAdmin(rec, httptest.NewRequest(http.MethodPost, "/api/auth/seed-admin", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}
