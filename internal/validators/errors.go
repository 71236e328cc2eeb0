// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingRequiredFields is returned when a mandatory field is blank.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrInvalidFormat is returned when every mandatory field is present but
	// at least one value is malformed (bad email, short password, unknown gender).
	ErrInvalidFormat = errors.New("invalid field format")

	// ErrInvalidSettingsName is returned for blank or oversized settings
	// group and key names.
	ErrInvalidSettingsName = errors.New("invalid settings group or key name")
)
