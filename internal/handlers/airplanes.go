package handlers

import (
	"net/http"

	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListAirplanes handles GET /api/airplanes
func (h *Handler) ListAirplanes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := database.AirplaneFilter{
		Name:         query.Get("name"),
		Years:        splitIntParam(query.Get("year_of_manufacture")),
		Manufacturer: query.Get("manufacturer"),
		Type:         query.Get("type"),
	}
	page := parsePage(r)

	airplanes, count, err := h.service.ListAirplanes(r.Context(), filter, page)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, r, airplanes, count, page)
}

// GetAirplane handles GET /api/airplanes/{id}
func (h *Handler) GetAirplane(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	airplane, err := h.service.GetAirplane(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airplane)
}

// CreateAirplane handles POST /api/airplanes
func (h *Handler) CreateAirplane(w http.ResponseWriter, r *http.Request) {
	var req models.AirplaneRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	airplane, err := h.service.CreateAirplane(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, airplane)
}

// UpdateAirplane handles PUT and PATCH /api/airplanes/{id}. PATCH fills
// omitted fields from the stored record before validation.
func (h *Handler) UpdateAirplane(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.AirplaneRequest
	if r.Method == http.MethodPatch {
		current, err := h.service.GetAirplaneRecord(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		req = models.AirplaneRequest{
			Name:              current.Name,
			Type:              current.TypeID,
			Manufacturer:      current.ManufacturerID,
			Rows:              current.Rows,
			SeatsInRow:        current.SeatsInRow,
			PilotsCapacity:    current.PilotsCapacity,
			PersonalCapacity:  current.PersonalCapacity,
			YearOfManufacture: current.YearOfManufacture,
			FuelCapacityL:     current.FuelCapacityL,
			CargoCapacityKg:   current.CargoCapacityKg,
			MaxSpeedKmh:       current.MaxSpeedKmh,
			MaxDistanceKm:     current.MaxDistanceKm,
		}
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	airplane, err := h.service.UpdateAirplane(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airplane)
}

// UploadAirplaneImage handles POST /api/airplanes/{id}/upload-image
func (h *Handler) UploadAirplaneImage(w http.ResponseWriter, r *http.Request) {
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

	airplane, err := h.service.UploadAirplaneImage(r.Context(), id, header.Filename, file)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airplane)
}

// DeleteAirplane handles DELETE /api/airplanes/{id}
func (h *Handler) DeleteAirplane(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAirplane(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
