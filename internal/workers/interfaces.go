// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers bounds how many CPU-heavy jobs run at the same time.
// Password hashing is the main consumer: every register, login and
// seed request funnels its bcrypt work through one shared Pool so a burst
// of requests cannot saturate every core.
package workers

import "context"

// Runner executes fn once a slot is available.
//
// Implementations must return ctx.Err() without running fn when ctx is
// cancelled while waiting for a slot.
type Runner interface {
	Do(ctx context.Context, fn func() error) error
}
