// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrPasswordMismatch = errors.New("password does not match hash")
	ErrEmptyPassword    = errors.New("password must not be empty")
)
