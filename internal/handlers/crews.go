package handlers

import (
	"net/http"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListCrew handles GET /api/crew
func (h *Handler) ListCrew(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	crew, count, err := h.service.ListCrew(r.Context(), page)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, r, crew, count, page)
}

// GetCrew handles GET /api/crew/{id}
func (h *Handler) GetCrew(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	member, err := h.service.GetCrew(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// CreateCrew handles POST /api/crew
func (h *Handler) CreateCrew(w http.ResponseWriter, r *http.Request) {
	var req models.CrewRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	member, err := h.service.CreateCrew(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, member)
}

// UpdateCrew handles PUT and PATCH /api/crew/{id}. PATCH fills omitted fields
// from the stored record before validation.
func (h *Handler) UpdateCrew(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.CrewRequest
	if r.Method == http.MethodPatch {
		current, err := h.service.GetCrew(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		req = models.CrewRequest{
			FirstName: current.FirstName,
			LastName:  current.LastName,
			CrewType:  current.CrewType,
			Position:  current.Position,
		}
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	member, err := h.service.UpdateCrew(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// DeleteCrew handles DELETE /api/crew/{id}
func (h *Handler) DeleteCrew(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCrew(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
