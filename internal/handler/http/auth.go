// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/utils"
	"github.com/MKhiriev/go-shop-admin/models"
)

const setupSecretHeader = "X-Setup-Secret"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "User registered successfully!",
		Token:   token.SignedString,
		User:    registeredUser.Public(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token.SignedString,
		User:    foundUser.Public(),
	}, http.StatusOK)
}

// seedAdmin bootstraps the first administrator. The caller proves it is
// trusted by presenting the configured setup secret in X-Setup-Secret.
func (h *Handler) seedAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.services.AuthService.SeedAdmin(r.Context(), r.Header.Get(setupSecretHeader))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SeedAdminResponse{
		Success: true,
		Message: "Admin user created successfully",
		User: models.SeededAdmin{
			ID:    admin.ID,
			Name:  admin.Name,
			Email: admin.Email,
			Role:  admin.Role,
		},
	}, http.StatusCreated)
}
