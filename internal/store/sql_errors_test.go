// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique violation", err: fmt.Errorf("%w: %w", ErrExecutingQuery, pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: SerializationFailure},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: SerializationFailure},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Transient},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Transient},
		{name: "not null violation", err: pgError(pgerrcode.NotNullViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "unknown code", err: pgError("XX999"), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: UniqueViolation},
		{name: "primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, want: UniqueViolation},
		{name: "check", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: SerializationFailure},
		{name: "wrapped locked", err: fmt.Errorf("wrap: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), want: SerializationFailure},
		{name: "io error", err: sqlite3.Error{Code: sqlite3.ErrIoErr}, want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "unique_violation", UniqueViolation.String())
	assert.Equal(t, "serialization_failure", SerializationFailure.String())
	assert.Equal(t, "transient", Transient.String())
	assert.Equal(t, "non_retryable", NonRetryable.String())
	assert.Equal(t, "unclassified", Unclassified.String())
}
