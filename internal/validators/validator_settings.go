// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-admin/models"
	validation "github.com/go-ozzo/ozzo-validation"
)

// maxSettingsNameLength matches the width of the group_name and
// setting_key columns.
const maxSettingsNameLength = 255

var settingsNameRules = []validation.Rule{
	validation.Required,
	validation.Length(1, maxSettingsNameLength),
}

// SettingsValidator checks the names in a [models.SettingsTree]. Values are
// not inspected: any JSON-representable leaf is accepted.
type SettingsValidator struct{}

// NewSettingsValidator returns a ready-to-use SettingsValidator.
func NewSettingsValidator() *SettingsValidator {
	return &SettingsValidator{}
}

// Validate implements [Validator] for [models.SettingsTree]. Field scoping
// is not supported.
func (v *SettingsValidator) Validate(ctx context.Context, value any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := value.(type) {
	case models.SettingsTree:
		return v.validateTree(value)
	case *models.SettingsTree:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTree(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *SettingsValidator) validateTree(tree models.SettingsTree) error {
	for group, values := range tree {
		if err := validation.Validate(group, settingsNameRules...); err != nil {
			return fmt.Errorf("%w: group %q: %w", ErrInvalidSettingsName, group, err)
		}
		for key := range values {
			if err := validation.Validate(key, settingsNameRules...); err != nil {
				return fmt.Errorf("%w: key %q in group %q: %w", ErrInvalidSettingsName, key, group, err)
			}
		}
	}

	return nil
}
