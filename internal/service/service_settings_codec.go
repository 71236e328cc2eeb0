// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-shop-admin/models"
)

// encodeSettingValue renders v as the string stored in the settings table.
//
// Strings are stored verbatim unless their text is itself valid JSON, in
// which case they are JSON-quoted so that "5" reads back as a string.
func encodeSettingValue(v models.SettingValue) (string, error) {
	switch v.Kind() {
	case models.KindNull:
		return "null", nil
	case models.KindBool:
		b, _ := v.Bool()
		if b {
			return "true", nil
		}
		return "false", nil
	case models.KindNumber:
		n, _ := v.Number()
		if !isNumberLiteral(n.String()) {
			return "", fmt.Errorf("invalid number literal %q", n.String())
		}
		return n.String(), nil
	case models.KindString:
		s, _ := v.Str()
		if !json.Valid([]byte(s)) {
			return s, nil
		}
		quoted, err := json.Marshal(s)
		if err != nil {
			return "", err
		}
		return string(quoted), nil
	case models.KindObject, models.KindArray:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	default:
		return "", fmt.Errorf("unsupported setting value kind %s", v.Kind())
	}
}

// decodeSettingValue parses a stored string. Text that is not valid JSON is
// returned as a plain string.
func decodeSettingValue(raw string) models.SettingValue {
	if !json.Valid([]byte(raw)) {
		return models.StringValue(raw)
	}

	var v models.SettingValue
	if err := v.UnmarshalJSON([]byte(raw)); err != nil {
		return models.StringValue(raw)
	}
	return v
}

func isNumberLiteral(s string) bool {
	if s == "" || !(s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

// flattenSettings turns tree into rows ordered by group then key.
func flattenSettings(tree models.SettingsTree) ([]models.SettingEntry, error) {
	entries := make([]models.SettingEntry, 0, len(tree))
	for group, values := range tree {
		for key, value := range values {
			encoded, err := encodeSettingValue(value)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", group, key, err)
			}
			entries = append(entries, models.SettingEntry{Group: group, Key: key, Value: encoded})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Group != entries[j].Group {
			return entries[i].Group < entries[j].Group
		}
		return entries[i].Key < entries[j].Key
	})
	return entries, nil
}

// unflattenSettings folds rows back into a tree. A later duplicate of the
// same (group, key) overwrites an earlier one.
func unflattenSettings(entries []models.SettingEntry) models.SettingsTree {
	tree := make(models.SettingsTree)
	for _, entry := range entries {
		group, ok := tree[entry.Group]
		if !ok {
			group = make(map[string]models.SettingValue)
			tree[entry.Group] = group
		}
		group[entry.Key] = decodeSettingValue(entry.Value)
	}
	return tree
}
