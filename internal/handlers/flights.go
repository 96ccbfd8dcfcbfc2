package handlers

import (
	"net/http"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListFlights handles GET /api/flights
func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	flights, count, err := h.service.ListFlights(r.Context(), page)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, r, flights, count, page)
}

// GetFlight handles GET /api/flights/{id}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	flight, err := h.service.GetFlight(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// CreateFlight handles POST /api/flights
func (h *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req models.FlightRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	flight, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, flight)
}

// UpdateFlight handles PUT and PATCH /api/flights/{id}. PATCH fills omitted
// fields from the stored record before validation. A payload without a crew
// key keeps the current roster either way.
func (h *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.FlightRequest
	if r.Method == http.MethodPatch {
		current, err := h.service.GetFlight(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		req = models.FlightRequest{
			Route:         current.Route.ID,
			Airplane:      current.Airplane.ID,
			DepartureTime: current.DepartureTime,
			ArrivalTime:   current.ArrivalTime,
		}
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	flight, err := h.service.UpdateFlight(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// DeleteFlight handles DELETE /api/flights/{id}
func (h *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteFlight(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
