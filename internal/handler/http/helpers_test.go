// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/internal/utils"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	seedAdminFn   func(ctx context.Context, setupSecret string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) SeedAdmin(ctx context.Context, setupSecret string) (models.User, error) {
	return m.seedAdminFn(ctx, setupSecret)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed-token"}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockSettingsService struct {
	getFn    func(ctx context.Context) (models.SettingsTree, error)
	updateFn func(ctx context.Context, tree models.SettingsTree) error
}

func (m *mockSettingsService) GetSettings(ctx context.Context) (models.SettingsTree, error) {
	return m.getFn(ctx)
}

func (m *mockSettingsService) UpdateSettings(ctx context.Context, tree models.SettingsTree) error {
	return m.updateFn(ctx, tree)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, logger.Nop())
}

// tokenFor returns a ParseToken stub that accepts exactly token and yields
// the given principal.
func tokenFor(token string, principal models.Principal) func(context.Context, string) (models.Token, error) {
	return func(_ context.Context, s string) (models.Token, error) {
		if s != token {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{Claims: models.Claims{ID: principal.ID, Email: principal.Email, Role: principal.Role}, SignedString: s}, nil
	}
}

func withPrincipal(r *http.Request, principal models.Principal) *http.Request {
	return r.WithContext(utils.WithPrincipal(r.Context(), principal))
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	require.False(t, body.Success)
	return body
}
