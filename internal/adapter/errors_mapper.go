// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/go-resty/resty/v2"
)

var errorsByKind = map[string]error{
	"validation":          ErrValidation,
	"conflict":            ErrConflict,
	"not_found":           ErrNotFound,
	"invalid_credentials": ErrInvalidCredentials,
	"authentication":      ErrUnauthorized,
	"authorization":       ErrForbidden,
	"internal":            ErrInternalServerError,
}

// mapHTTPError turns a non-2xx response into a sentinel error carrying the
// server's message. The body kind takes precedence over the status code.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	if body, ok := resp.Error().(*models.ErrorResponse); ok && body.Message != "" {
		message = body.Message
		if target, ok := errorsByKind[body.Kind]; ok {
			return fmt.Errorf("%w: %s", target, message)
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), message)
	}
}
