package handlers

import (
	"net/http"

	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListAirports handles GET /api/airports
func (h *Handler) ListAirports(w http.ResponseWriter, r *http.Request) {
	filter := database.AirportFilter{
		Cities: splitParam(r.URL.Query().Get("city")),
		Years:  splitIntParam(r.URL.Query().Get("open_year")),
	}
	page := parsePage(r)

	airports, count, err := h.service.ListAirports(r.Context(), filter, page)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, r, airports, count, page)
}

// GetAirport handles GET /api/airports/{id}
func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	airport, err := h.service.GetAirport(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airport)
}

// CreateAirport handles POST /api/airports
func (h *Handler) CreateAirport(w http.ResponseWriter, r *http.Request) {
	var req models.AirportRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	airport, err := h.service.CreateAirport(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, airport)
}

// UpdateAirport handles PUT and PATCH /api/airports/{id}. PATCH fills omitted
// fields from the stored record before validation.
func (h *Handler) UpdateAirport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.AirportRequest
	if r.Method == http.MethodPatch {
		current, err := h.service.GetAirport(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		req = models.AirportRequest{
			Name:     current.Name,
			City:     current.City,
			OpenYear: current.OpenYear,
		}
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	airport, err := h.service.UpdateAirport(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airport)
}

// UploadAirportImage handles POST /api/airports/{id}/upload-image
func (h *Handler) UploadAirportImage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"image": "No file was submitted."})
		return
	}
	defer file.Close()

	airport, err := h.service.UploadAirportImage(r.Context(), id, header.Filename, file)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airport)
}

// DeleteAirport handles DELETE /api/airports/{id}
func (h *Handler) DeleteAirport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAirport(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
