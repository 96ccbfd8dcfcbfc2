package handlers

import (
	"net/http"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListAirplaneTypes handles GET /api/airplane-types
func (h *Handler) ListAirplaneTypes(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	types, count, err := h.service.ListAirplaneTypes(r.Context(), page)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, r, types, count, page)
}

// GetAirplaneType handles GET /api/airplane-types/{id}
func (h *Handler) GetAirplaneType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	airplaneType, err := h.service.GetAirplaneType(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airplaneType)
}

// CreateAirplaneType handles POST /api/airplane-types
func (h *Handler) CreateAirplaneType(w http.ResponseWriter, r *http.Request) {
	var req models.AirplaneTypeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	airplaneType, err := h.service.CreateAirplaneType(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, airplaneType)
}

// UpdateAirplaneType handles PUT and PATCH /api/airplane-types/{id}. PATCH
// fills omitted fields from the stored record before validation.
func (h *Handler) UpdateAirplaneType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.AirplaneTypeRequest
	if r.Method == http.MethodPatch {
		current, err := h.service.GetAirplaneType(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		req = models.AirplaneTypeRequest{
			Name:    current.Name,
			Code:    current.Code,
			Purpose: current.Purpose,
		}
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	airplaneType, err := h.service.UpdateAirplaneType(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airplaneType)
}

// DeleteAirplaneType handles DELETE /api/airplane-types/{id}
func (h *Handler) DeleteAirplaneType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAirplaneType(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
