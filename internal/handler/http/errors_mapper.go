// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/internal/utils"
	"github.com/MKhiriev/go-shop-admin/internal/validators"
	"github.com/MKhiriev/go-shop-admin/models"
)

// Error kinds reported in the "kind" field of every error body.
const (
	kindValidation         = "validation"
	kindConflict           = "conflict"
	kindNotFound           = "not_found"
	kindInvalidCredentials = "invalid_credentials"
	kindAuthentication     = "authentication"
	kindAuthorization      = "authorization"
	kindInternal           = "internal"
)

const (
	messageNoToken         = "Access denied. No token provided."
	messageInvalidToken    = "Invalid or expired token."
	messageAdminRequired   = "Access denied. Admin privileges required."
	messageInternalError   = "Internal server error"
	messageRequiredFields  = "Please fill all required fields."
	messageSettingsNotSave = "Failed to update settings. The stored state is unknown, re-read before retrying."
)

type errorResponse struct {
	kind    string
	status  int
	message string
}

// errorResponseMap is consulted top to bottom; the first target matched by
// [errors.Is] wins, so more specific errors come first.
var errorResponseMap = []struct {
	target   error
	response errorResponse
}{
	{validators.ErrMissingRequiredFields, errorResponse{kindValidation, http.StatusBadRequest, messageRequiredFields}},
	{models.ErrSettingsGroupNotObject, errorResponse{kindValidation, http.StatusBadRequest, "Settings groups must be JSON objects"}},
	{service.ErrInvalidSettings, errorResponse{kindValidation, http.StatusBadRequest, "Invalid settings payload"}},
	{service.ErrInvalidDataProvided, errorResponse{kindValidation, http.StatusBadRequest, "Invalid input data"}},
	{ErrInvalidJSON, errorResponse{kindValidation, http.StatusBadRequest, "Invalid JSON was passed"}},

	{service.ErrEmailAlreadyExists, errorResponse{kindConflict, http.StatusBadRequest, "Email already exists"}},
	{service.ErrAdminAlreadyExists, errorResponse{kindConflict, http.StatusBadRequest, "Admin user already exists"}},

	{service.ErrUserNotFound, errorResponse{kindNotFound, http.StatusNotFound, "User not found"}},
	{ErrRouteNotFound, errorResponse{kindNotFound, http.StatusNotFound, "Route not found"}},
	{ErrMethodNotAllowed, errorResponse{kindNotFound, http.StatusMethodNotAllowed, "Method not allowed"}},

	{service.ErrWrongPassword, errorResponse{kindInvalidCredentials, http.StatusBadRequest, "Invalid password"}},

	{ErrEmptyAuthorizationHeader, errorResponse{kindAuthentication, http.StatusUnauthorized, messageNoToken}},
	{ErrEmptyToken, errorResponse{kindAuthentication, http.StatusUnauthorized, messageNoToken}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{kindAuthentication, http.StatusUnauthorized, messageInvalidToken}},
	{service.ErrInvalidSetupSecret, errorResponse{kindAuthentication, http.StatusUnauthorized, "Invalid setup secret"}},

	{ErrAdminPrivilegesRequired, errorResponse{kindAuthorization, http.StatusForbidden, messageAdminRequired}},
	{service.ErrSetupDisabled, errorResponse{kindAuthorization, http.StatusForbidden, "Admin setup is disabled"}},

	{service.ErrSettingsNotSaved, errorResponse{kindInternal, http.StatusInternalServerError, messageSettingsNotSave}},
	{service.ErrSettingsNotLoaded, errorResponse{kindInternal, http.StatusInternalServerError, "Failed to retrieve settings"}},
}

var internalErrorResponse = errorResponse{kindInternal, http.StatusInternalServerError, messageInternalError}

func responseFromError(err error) errorResponse {
	for _, entry := range errorResponseMap {
		if errors.Is(err, entry.target) {
			return entry.response
		}
	}
	return internalErrorResponse
}

// writeError logs err and writes the matching error body. The raw error
// text never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Str("kind", resp.kind).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Kind:    resp.kind,
		Message: resp.message,
	}, resp.status)
}
