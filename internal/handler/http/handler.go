// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/internal/utils"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	traceIDs       *utils.TraceIDGenerator

	logger *logger.Logger
}

// HandlerOption customises a Handler at construction time.
type HandlerOption func(*Handler)

// WithRequestTimeout cancels the context of any request running longer than d.
// Zero disables the timeout.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...HandlerOption) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services: services,
		traceIDs: utils.NewTraceIDGenerator(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}
