// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the shop admin command-line application.
//
// It parses subcommands (login, register, seed-admin, settings, version),
// drives the server through an [adapter.AdminClient] and prints results.
package client
