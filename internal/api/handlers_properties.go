// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/homestead/internal/database"
	"github.com/tomtom215/homestead/internal/logging"
	"github.com/tomtom215/homestead/internal/models"
	"github.com/tomtom215/homestead/internal/validation"
)

// ListProperties handles GET /api/properties.
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePropertyFilter(r.URL.Query())
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	filter.Limit, filter.Offset = database.ListWindow(filter.Limit, filter.Offset)

	items, total, err := h.store.ListProperties(r.Context(), filter)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to list properties", err)
		return
	}

	respondJSON(w, http.StatusOK, models.PropertyPage{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetProperty handles GET /api/properties/{id}.
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetProperty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondStoreError(w, r, "Failed to load property", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// CreateProperty handles POST /api/properties.
func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	input, ok := readPropertyInput(w, r)
	if !ok {
		return
	}

	created, err := h.store.CreateProperty(r.Context(), input.ToProperty())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to create property", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("property_id", created.ID).
		Str("city", created.City).
		Msg("Property created")

	w.Header().Set("Location", "/api/properties/"+created.ID)
	respondJSON(w, http.StatusCreated, created)
}

// UpdateProperty handles PUT /api/properties/{id}. Every editable field is
// replaced.
func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	input, ok := readPropertyInput(w, r)
	if !ok {
		return
	}

	updated, err := h.store.UpdateProperty(r.Context(), chi.URLParam(r, "id"), input.ToProperty())
	if err != nil {
		h.respondStoreError(w, r, "Failed to update property", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteProperty handles DELETE /api/properties/{id}.
func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteProperty(r.Context(), id); err != nil {
		h.respondStoreError(w, r, "Failed to delete property", err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("property_id", id).Msg("Property deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondStoreError(w http.ResponseWriter, r *http.Request, message string, err error) {
	if errors.Is(err, database.ErrPropertyNotFound) {
		respondJSON(w, http.StatusNotFound, ErrorResponse{Message: "Property not found"})
		return
	}
	respondError(w, r, http.StatusInternalServerError, message, err)
}

func readPropertyInput(w http.ResponseWriter, r *http.Request) (models.PropertyInput, bool) {
	var input models.PropertyInput
	if err := decodeJSONBody(w, r, &input); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid JSON body"})
		return input, false
	}
	if verr := validation.ValidateStruct(&input); verr != nil {
		respondValidationError(w, verr)
		return input, false
	}
	return input, true
}
