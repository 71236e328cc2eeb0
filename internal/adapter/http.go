// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/go-resty/resty/v2"
)

const setupSecretHeader = "X-Setup-Secret"

type httpAdminClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdminClient constructs an [AdminClient] talking to
// adapterCfg.HTTPAddress. A missing scheme defaults to http.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPAdminClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (AdminClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetError(&models.ErrorResponse{})
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpAdminClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdminClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdminClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [AdminClient]. It POSTs to /api/auth/register.
func (h *httpAdminClient) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

// Login implements [AdminClient]. It POSTs to /api/auth/login.
func (h *httpAdminClient) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Int64("id", result.User.ID).Msg("logged in")
	return result, nil
}

// SeedAdmin implements [AdminClient]. It POSTs to /api/auth/seed-admin with
// the secret in the X-Setup-Secret header.
func (h *httpAdminClient) SeedAdmin(ctx context.Context, setupSecret string) (models.SeedAdminResponse, error) {
	var result models.SeedAdminResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(setupSecretHeader, setupSecret).
		SetResult(&result).
		Post("/api/auth/seed-admin")
	if err != nil {
		return models.SeedAdminResponse{}, fmt.Errorf("seed admin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SeedAdminResponse{}, err
	}

	return result, nil
}

func (h *httpAdminClient) GetSettings(ctx context.Context) (models.SettingsTree, error) {
	var tree models.SettingsTree

	resp, err := h.authedRequest(ctx).
		SetResult(&tree).
		Get("/api/settings")
	if err != nil {
		return nil, fmt.Errorf("get settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if tree == nil {
		tree = models.SettingsTree{}
	}
	return tree, nil
}

func (h *httpAdminClient) PutSettings(ctx context.Context, tree models.SettingsTree) error {
	resp, err := h.authedRequest(ctx).
		SetBody(tree).
		Put("/api/settings")
	if err != nil {
		return fmt.Errorf("put settings request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAdminClient) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAdminClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
