package handlers

import (
	"fmt"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/partnersinbahamas/airport-api/internal/models"
	"github.com/partnersinbahamas/airport-api/internal/pdf"
)

// CreateOrder handles POST /api/orders
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	var req models.CreateOrderRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.service.CreateOrder(r.Context(), identity, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /api/orders
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}
	page := parsePage(r)

	orders, count, err := h.service.ListOrders(r.Context(), identity, page)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPage(w, r, orders, count, page)
}

// GetOrder handles GET /api/orders/{id}
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	order, err := h.service.GetOrder(r.Context(), identity, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// GetOrderPDF handles GET /api/orders/{id}/pdf
func (h *Handler) GetOrderPDF(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	order, err := h.service.GetOrder(r.Context(), identity, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	document, err := pdf.OrderItinerary(order)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="order-%s.pdf"`, order.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

// GetTicket handles GET /api/tickets/{id}
func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	ticket, err := h.service.GetTicket(r.Context(), identity, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ticket)
}

// GetTicketQR handles GET /api/tickets/{id}/qrcode. The code encodes the ticket
// id with its flight and seat, enough for gate-side lookup.
func (h *Handler) GetTicketQR(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	ticket, err := h.service.GetTicket(r.Context(), identity, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	payload := fmt.Sprintf("ticket:%s|flight:%s|row:%d|seat:%d", ticket.ID, ticket.Flight.ID, ticket.Row, ticket.Seat)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
