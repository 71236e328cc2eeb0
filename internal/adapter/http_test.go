// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *httpAdminClient {
	t.Helper()

	c, err := NewHTTPAdminClient(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return c.(*httpAdminClient)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, models.ErrorResponse{Success: false, Kind: kind, Message: message})
}

func TestNewHTTPAdminClient_Address(t *testing.T) {
	_, err := NewHTTPAdminClient(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.ErrorIs(t, err, errEmptyAddress)

	c, err := NewHTTPAdminClient(config.ClientAdapter{HTTPAddress: "localhost:5000/"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", c.(*httpAdminClient).client.BaseURL)
}

func TestRegister_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane@example.com", req.Email)

		writeJSON(w, http.StatusCreated, models.AuthResponse{
			Success: true,
			Message: "User registered successfully!",
			Token:   "user-token",
			User:    models.PublicUser{ID: 7, Email: req.Email, Role: models.RoleUser},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Register(context.Background(), models.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.User.ID)
	assert.Equal(t, "user-token", c.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, "conflict", "Email already exists")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Register(context.Background(), models.RegisterRequest{Email: "jane@example.com"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Email already exists")
	assert.Empty(t, c.Token())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   string
		want   error
	}{
		{name: "wrong password", status: http.StatusBadRequest, kind: "invalid_credentials", want: ErrInvalidCredentials},
		{name: "unknown user", status: http.StatusNotFound, kind: "not_found", want: ErrNotFound},
		{name: "missing fields", status: http.StatusBadRequest, kind: "validation", want: ErrValidation},
		{name: "server failure", status: http.StatusInternalServerError, kind: "internal", want: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, tt.status, tt.kind, "nope")
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapHTTPError_PlainTextFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("go away"))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetSettings(context.Background())

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "go away")
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).ServerVersion(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestSeedAdmin_SendsSecretHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/seed-admin", r.URL.Path)
		if r.Header.Get(setupSecretHeader) != "s3cret" {
			writeError(w, http.StatusUnauthorized, "authentication", "Invalid setup secret")
			return
		}
		writeJSON(w, http.StatusCreated, models.SeedAdminResponse{
			Success: true,
			Message: "Admin user created successfully",
			User:    models.SeededAdmin{ID: 1, Email: "admin@example.com", Role: models.RoleAdmin},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.SeedAdmin(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	got, err := c.SeedAdmin(context.Background(), "s3cret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.User.Role)
}

func TestSettings_SendsBearerToken(t *testing.T) {
	var putBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/settings", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer admin-token" {
			writeError(w, http.StatusUnauthorized, "authentication", "Access denied. No token provided.")
			return
		}

		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"theme":{"darkMode":true,"fontSize":"5"}}`))
		case http.MethodPut:
			data, _ := io.ReadAll(r.Body)
			putBody = string(data)
			writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Settings updated successfully"})
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.GetSettings(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	c.SetToken(" admin-token ")

	tree, err := c.GetSettings(context.Background())
	require.NoError(t, err)
	s, ok := tree["theme"]["fontSize"].Str()
	assert.True(t, ok)
	assert.Equal(t, "5", s)

	require.NoError(t, c.PutSettings(context.Background(), models.SettingsTree{
		"theme": {"darkMode": models.BoolValue(false)},
	}))
	assert.JSONEq(t, `{"theme":{"darkMode":false}}`, putBody)
}

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}
