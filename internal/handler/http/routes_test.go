// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userPrincipal = models.Principal{ID: 2, Email: "jane@example.com", Role: models.RoleUser}

func newTestRouter(t *testing.T, opts ...HandlerOption) http.Handler {
	t.Helper()

	parse := func(ctx context.Context, s string) (models.Token, error) {
		switch s {
		case "admin-token":
			return tokenFor(s, adminPrincipal)(ctx, s)
		case "user-token":
			return tokenFor(s, userPrincipal)(ctx, s)
		default:
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
	}

	services := &service.Services{
		AuthService: &mockAuthService{parseTokenFn: parse},
		SettingsService: &mockSettingsService{
			getFn: func(context.Context) (models.SettingsTree, error) {
				return models.SettingsTree{"theme": {"darkMode": models.BoolValue(true)}}, nil
			},
			updateFn: func(context.Context, models.SettingsTree) error { return nil },
		},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}

	return NewHandler(services, logger.Nop(), opts...).Init()
}

func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_Public(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Backend running...", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	rec = doRequest(router, http.MethodGet, "/api/version", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
}

func TestRoutes_SettingsAccessMatrix(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		token      string
		body       string
		wantStatus int
	}{
		{name: "get without token", method: http.MethodGet, wantStatus: http.StatusUnauthorized},
		{name: "get with bad token", method: http.MethodGet, token: "forged", wantStatus: http.StatusUnauthorized},
		{name: "get as user", method: http.MethodGet, token: "user-token", wantStatus: http.StatusForbidden},
		{name: "get as admin", method: http.MethodGet, token: "admin-token", wantStatus: http.StatusOK},
		{name: "put without token", method: http.MethodPut, body: `{}`, wantStatus: http.StatusUnauthorized},
		{name: "put as user", method: http.MethodPut, token: "user-token", body: `{}`, wantStatus: http.StatusForbidden},
		{name: "put as admin", method: http.MethodPut, token: "admin-token", body: `{"theme":{"darkMode":false}}`, wantStatus: http.StatusOK},
		{name: "put malformed as admin", method: http.MethodPut, token: "admin-token", body: `{"theme":1}`, wantStatus: http.StatusBadRequest},
	}

	router := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(router, tt.method, "/api/settings", tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestRoutes_UnknownRoute(t *testing.T) {
	rec := doRequest(newTestRouter(t), http.MethodGet, "/api/products", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, kindNotFound, decodeErrorBody(t, rec).Kind)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	rec := doRequest(newTestRouter(t), http.MethodDelete, "/api/settings", "admin-token", "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PUT", rec.Header().Get("Allow"))
	decodeErrorBody(t, rec)
}

func TestRoutes_RequestTimeoutSetsDeadline(t *testing.T) {
	var hasDeadline bool
	services := &service.Services{AppInfoService: &mockAppInfoService{version: "v"}}
	h := NewHandler(services, logger.Nop(), WithRequestTimeout(time.Minute))
	router := h.Init()
	router.Get("/probe", func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	})

	doRequest(router, http.MethodGet, "/probe", "", "")

	assert.True(t, hasDeadline)
}
