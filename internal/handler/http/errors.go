// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised inside the transport layer. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when nothing is left of the "Authorization"
	// header once the optional "Bearer " prefix is removed.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoPrincipal means adminOnly ran on a route that auth did not guard.
	ErrNoPrincipal = errors.New("no authenticated principal in request context")

	ErrAdminPrivilegesRequired = errors.New("admin privileges required")

	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
