package handlers

import (
	"net/http"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListManufacturers handles GET /api/manufacturers
func (h *Handler) ListManufacturers(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	manufacturers, count, err := h.service.ListManufacturers(r.Context(), page)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, r, manufacturers, count, page)
}

// GetManufacturer handles GET /api/manufacturers/{id}
func (h *Handler) GetManufacturer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	manufacturer, err := h.service.GetManufacturer(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, manufacturer)
}

// CreateManufacturer handles POST /api/manufacturers
func (h *Handler) CreateManufacturer(w http.ResponseWriter, r *http.Request) {
	var req models.ManufacturerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	manufacturer, err := h.service.CreateManufacturer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, manufacturer)
}

// UpdateManufacturer handles PUT and PATCH /api/manufacturers/{id}. PATCH
// fills omitted fields from the stored record before validation.
func (h *Handler) UpdateManufacturer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.ManufacturerRequest
	if r.Method == http.MethodPatch {
		current, err := h.service.GetManufacturer(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		req = models.ManufacturerRequest{
			Name:        current.Name,
			Country:     current.Country,
			FoundedYear: current.FoundedYear,
			Website:     current.Website,
		}
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	manufacturer, err := h.service.UpdateManufacturer(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, manufacturer)
}

// UploadManufacturerLogo handles POST /api/manufacturers/{id}/upload-logo
func (h *Handler) UploadManufacturerLogo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"logo": "No file was submitted."})
		return
	}
	defer file.Close()

	manufacturer, err := h.service.UploadManufacturerLogo(r.Context(), id, header.Filename, file)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, manufacturer)
}
