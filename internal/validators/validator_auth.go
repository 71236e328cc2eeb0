// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-admin/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldGender   = "gender"
)

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 6

	// maxPasswordLength is bcrypt's input limit in bytes.
	maxPasswordLength = 72

	maxNameLength  = 255
	maxEmailLength = 255
)

// AuthValidator validates the register and login payloads.
//
// Validation runs in two passes: presence first, then format. A blank
// mandatory field yields [ErrMissingRequiredFields]; a malformed value
// yields [ErrInvalidFormat]. Both wrap the ozzo-validation error map,
// keyed by the JSON field name.
type AuthValidator struct{}

// NewAuthValidator returns a ready-to-use AuthValidator.
func NewAuthValidator() *AuthValidator {
	return &AuthValidator{}
}

// Validate implements [Validator] for [models.RegisterRequest] and
// [models.LoginRequest] (values or pointers). fields restricts the check to
// a subset of FieldName, FieldEmail, FieldPassword and FieldGender.
func (v *AuthValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value := value.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateRegisterRequest(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldGender}
	}

	required := make([]*validation.FieldRules, 0, len(fields))
	format := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldName:
			required = append(required, validation.Field(&r.Name, validation.Required))
			format = append(format, validation.Field(&r.Name, validation.Length(1, maxNameLength)))
		case FieldEmail:
			required = append(required, validation.Field(&r.Email, validation.Required))
			format = append(format, validation.Field(&r.Email, validation.Length(3, maxEmailLength), is.Email))
		case FieldPassword:
			required = append(required, validation.Field(&r.Password, validation.Required))
			format = append(format, validation.Field(&r.Password, validation.Length(MinPasswordLength, maxPasswordLength)))
		case FieldGender:
			format = append(format, validation.Field(&r.Gender, validation.In(models.GenderMale, models.GenderFemale, models.GenderOther)))
		default:
			return ErrUnknownField
		}
	}

	if err := validation.ValidateStruct(&r, required...); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingRequiredFields, err)
	}
	if err := validation.ValidateStruct(&r, format...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return nil
}

func (v *AuthValidator) validateLoginRequest(r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	required := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldEmail:
			required = append(required, validation.Field(&r.Email, validation.Required))
		case FieldPassword:
			required = append(required, validation.Field(&r.Password, validation.Required))
		default:
			return ErrUnknownField
		}
	}

	if err := validation.ValidateStruct(&r, required...); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingRequiredFields, err)
	}

	return nil
}
