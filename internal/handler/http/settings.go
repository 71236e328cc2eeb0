// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-shop-admin/internal/utils"
	"github.com/MKhiriev/go-shop-admin/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	tree, err := h.services.SettingsService.GetSettings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tree, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var tree models.SettingsTree
	if err := json.NewDecoder(r.Body).Decode(&tree); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.SettingsService.UpdateSettings(r.Context(), tree); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Settings updated successfully"}, http.StatusOK)
}
