// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/stretchr/testify/assert"
)

func TestSettingsValidator_Validate(t *testing.T) {
	v := NewSettingsValidator()
	long := strings.Repeat("k", maxSettingsNameLength+1)

	tests := []struct {
		name    string
		tree    models.SettingsTree
		wantErr error
	}{
		{name: "empty tree", tree: models.SettingsTree{}},
		{
			name: "valid",
			tree: models.SettingsTree{"theme": {"headerColor": models.StringValue("#ffffff")}},
		},
		{name: "empty group", tree: models.SettingsTree{"": {"k": models.NullValue()}}, wantErr: ErrInvalidSettingsName},
		{name: "empty key", tree: models.SettingsTree{"theme": {"": models.NullValue()}}, wantErr: ErrInvalidSettingsName},
		{name: "long key", tree: models.SettingsTree{"theme": {long: models.NullValue()}}, wantErr: ErrInvalidSettingsName},
		{name: "long group", tree: models.SettingsTree{long: {}}, wantErr: ErrInvalidSettingsName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.tree)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettingsValidator_Pointer(t *testing.T) {
	tree := models.SettingsTree{"theme": {"": models.NullValue()}}

	assert.ErrorIs(t, NewSettingsValidator().Validate(context.Background(), &tree), ErrInvalidSettingsName)
}

func TestSettingsValidator_UnsupportedInput(t *testing.T) {
	v := NewSettingsValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), map[string]string{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.SettingsTree{}, "group"), ErrUnknownField)
}
