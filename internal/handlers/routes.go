package handlers

import (
	"net/http"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListRoutes handles GET /api/routes
func (h *Handler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	routes, count, err := h.service.ListRoutes(r.Context(), page)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, r, routes, count, page)
}

// GetRoute handles GET /api/routes/{id}
func (h *Handler) GetRoute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	route, err := h.service.GetRoute(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, route)
}

// CreateRoute handles POST /api/routes
func (h *Handler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req models.RouteRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	route, err := h.service.CreateRoute(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, route)
}

// UpdateRoute handles PUT and PATCH /api/routes/{id}. PATCH fills omitted
// fields from the stored record before validation.
func (h *Handler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.RouteRequest
	if r.Method == http.MethodPatch {
		current, err := h.service.GetRoute(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		req = models.RouteRequest{
			Source:      current.Source.ID,
			Destination: current.Destination.ID,
			Distance:    current.Distance,
		}
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	route, err := h.service.UpdateRoute(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, route)
}

// DeleteRoute handles DELETE /api/routes/{id}
func (h *Handler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteRoute(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
