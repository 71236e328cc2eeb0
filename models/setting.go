// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SettingEntry is a persisted settings row. Rows are identified by the
// composite (Group, Key) pair; Value is always string-encoded.
type SettingEntry struct {
	Group string
	Key   string
	Value string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the name of the database table
// associated with the SettingEntry model.
func (s SettingEntry) TableName() string {
	return "settings"
}

// SettingsTree is the structured view of all settings: group name → key → value.
type SettingsTree map[string]map[string]SettingValue

// ValueKind enumerates the variants of [SettingValue].
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// String returns a human-readable kind name.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// SettingValue is a JSON-representable settings leaf modelled as a tagged
// union. The zero value is null.
//
// Numbers keep their original decimal text so that a value survives a
// write/read cycle without float rounding.
type SettingValue struct {
	kind    ValueKind
	text    string
	boolean bool
	object  map[string]SettingValue
	array   []SettingValue
}

// NullValue returns the JSON null value.
func NullValue() SettingValue {
	return SettingValue{kind: KindNull}
}

// StringValue wraps s.
func StringValue(s string) SettingValue {
	return SettingValue{kind: KindString, text: s}
}

// NumberValue wraps a JSON number literal.
func NumberValue(n json.Number) SettingValue {
	return SettingValue{kind: KindNumber, text: n.String()}
}

// BoolValue wraps b.
func BoolValue(b bool) SettingValue {
	return SettingValue{kind: KindBool, boolean: b}
}

// ObjectValue wraps a string-keyed map of values. A nil map is treated as empty.
func ObjectValue(fields map[string]SettingValue) SettingValue {
	if fields == nil {
		fields = map[string]SettingValue{}
	}
	return SettingValue{kind: KindObject, object: fields}
}

// ArrayValue wraps an ordered list of values.
func ArrayValue(items ...SettingValue) SettingValue {
	if items == nil {
		items = []SettingValue{}
	}
	return SettingValue{kind: KindArray, array: items}
}

// Kind returns the variant tag.
func (v SettingValue) Kind() ValueKind {
	return v.kind
}

// Str returns the string payload when v is a string.
func (v SettingValue) Str() (string, bool) {
	return v.text, v.kind == KindString
}

// Number returns the number literal when v is a number.
func (v SettingValue) Number() (json.Number, bool) {
	return json.Number(v.text), v.kind == KindNumber
}

// Bool returns the boolean payload when v is a bool.
func (v SettingValue) Bool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// Object returns the fields when v is an object.
func (v SettingValue) Object() (map[string]SettingValue, bool) {
	return v.object, v.kind == KindObject
}

// Array returns the items when v is an array.
func (v SettingValue) Array() ([]SettingValue, bool) {
	return v.array, v.kind == KindArray
}

// MarshalJSON implements [json.Marshaler].
func (v SettingValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.text)
	case KindNumber:
		return []byte(v.text), nil
	case KindBool:
		if v.boolean {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case KindObject:
		return json.Marshal(v.object)
	case KindArray:
		return json.Marshal(v.array)
	default:
		return nil, fmt.Errorf("unknown setting value kind %d", v.kind)
	}
}

// UnmarshalJSON implements [json.Unmarshaler]. Numbers are decoded with
// [json.Decoder.UseNumber] so their literal text is preserved.
func (v *SettingValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("error decoding setting value: %w", err)
	}

	parsed, err := settingValueFromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func settingValueFromAny(raw any) (SettingValue, error) {
	switch value := raw.(type) {
	case nil:
		return NullValue(), nil
	case string:
		return StringValue(value), nil
	case json.Number:
		return NumberValue(value), nil
	case bool:
		return BoolValue(value), nil
	case map[string]any:
		fields := make(map[string]SettingValue, len(value))
		for key, item := range value {
			parsed, err := settingValueFromAny(item)
			if err != nil {
				return SettingValue{}, err
			}
			fields[key] = parsed
		}
		return ObjectValue(fields), nil
	case []any:
		items := make([]SettingValue, 0, len(value))
		for _, item := range value {
			parsed, err := settingValueFromAny(item)
			if err != nil {
				return SettingValue{}, err
			}
			items = append(items, parsed)
		}
		return ArrayValue(items...), nil
	default:
		return SettingValue{}, fmt.Errorf("unsupported setting value type %T", raw)
	}
}

// ErrSettingsGroupNotObject is returned when a top-level group of a settings
// document is not a JSON object.
var ErrSettingsGroupNotObject = errors.New("settings group is not an object")

// UnmarshalJSON implements [json.Unmarshaler]. Every top-level value must be
// an object; anything else fails with [ErrSettingsGroupNotObject].
func (t *SettingsTree) UnmarshalJSON(data []byte) error {
	var groups map[string]SettingValue
	if err := json.Unmarshal(data, &groups); err != nil {
		return err
	}
	if groups == nil {
		*t = nil
		return nil
	}

	tree := make(SettingsTree, len(groups))
	for name, group := range groups {
		fields, ok := group.Object()
		if !ok {
			return fmt.Errorf("%w: %q is %s", ErrSettingsGroupNotObject, name, group.Kind())
		}
		tree[name] = fields
	}
	*t = tree
	return nil
}
