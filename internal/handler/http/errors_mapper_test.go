// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/internal/utils"
	"github.com/MKhiriev/go-shop-admin/internal/validators"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   string
		wantStatus int
	}{
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidFormat), wantKind: kindValidation, wantStatus: http.StatusBadRequest},
		{name: "conflict", err: service.ErrEmailAlreadyExists, wantKind: kindConflict, wantStatus: http.StatusBadRequest},
		{name: "not found", err: service.ErrUserNotFound, wantKind: kindNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid credentials", err: service.ErrWrongPassword, wantKind: kindInvalidCredentials, wantStatus: http.StatusBadRequest},
		{name: "expired token", err: fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, utils.ErrTokenExpired), wantKind: kindAuthentication, wantStatus: http.StatusUnauthorized},
		{name: "authorization", err: ErrAdminPrivilegesRequired, wantKind: kindAuthorization, wantStatus: http.StatusForbidden},
		{name: "missing principal", err: ErrNoPrincipal, wantKind: kindInternal, wantStatus: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), wantKind: kindInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseFromError(tt.err)
			assert.Equal(t, tt.wantKind, resp.kind)
			assert.Equal(t, tt.wantStatus, resp.status)
			assert.NotEmpty(t, resp.message)
		})
	}
}

func TestResponseFromError_SpecificBeforeGeneric(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrMissingRequiredFields)

	assert.Equal(t, messageRequiredFields, responseFromError(err).message)
}

func TestWriteError_Body(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), fmt.Errorf("%w: secret detail", service.ErrSettingsNotSaved))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, models.ErrorResponse{Success: false, Kind: kindInternal, Message: messageSettingsNotSave}, decodeErrorBody(t, rec))
	assert.NotContains(t, rec.Body.String(), "secret detail")
}
