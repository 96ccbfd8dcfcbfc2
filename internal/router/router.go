// Package router wires the HTTP routes to their handlers and middleware.
package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/partnersinbahamas/airport-api/internal/auth"
	"github.com/partnersinbahamas/airport-api/internal/handlers"
	"github.com/partnersinbahamas/airport-api/internal/middleware"
	"github.com/partnersinbahamas/airport-api/internal/ws"
)

// Options carries the router's dependencies.
type Options struct {
	Handler            *handlers.Handler
	Hub                *ws.Hub
	Tokens             *auth.Manager
	MediaDir           string
	MediaURL           string
	RateLimitPerSecond int
}

// SetupRouter creates and configures the HTTP router. Reference data is
// readable by anyone and writable by staff; orders and tickets require an
// authenticated user.
func SetupRouter(opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.CORS)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(opts.RateLimitPerSecond))
	r.Use(middleware.Authenticate(opts.Tokens))

	h := opts.Handler
	api := r.PathPrefix("/api").Subrouter()

	mutate := []string{http.MethodPut, http.MethodPatch, http.MethodOptions}

	// Airports
	api.HandleFunc("/airports", h.ListAirports).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/airports", middleware.RequireStaff(h.CreateAirport)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/airports/{id}", h.GetAirport).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/airports/{id}", middleware.RequireStaff(h.UpdateAirport)).Methods(mutate...)
	api.HandleFunc("/airports/{id}", middleware.RequireStaff(h.DeleteAirport)).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/airports/{id}/upload-image", middleware.RequireStaff(h.UploadAirportImage)).Methods(http.MethodPost, http.MethodOptions)

	// Routes
	api.HandleFunc("/routes", h.ListRoutes).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/routes", middleware.RequireStaff(h.CreateRoute)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/routes/{id}", h.GetRoute).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/routes/{id}", middleware.RequireStaff(h.UpdateRoute)).Methods(mutate...)
	api.HandleFunc("/routes/{id}", middleware.RequireStaff(h.DeleteRoute)).Methods(http.MethodDelete, http.MethodOptions)

	// Manufacturers
	api.HandleFunc("/manufacturers", h.ListManufacturers).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/manufacturers", middleware.RequireStaff(h.CreateManufacturer)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/manufacturers/{id}", h.GetManufacturer).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/manufacturers/{id}", middleware.RequireStaff(h.UpdateManufacturer)).Methods(mutate...)
	api.HandleFunc("/manufacturers/{id}/upload-logo", middleware.RequireStaff(h.UploadManufacturerLogo)).Methods(http.MethodPost, http.MethodOptions)

	// Airplane types
	api.HandleFunc("/airplane-types", h.ListAirplaneTypes).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/airplane-types", middleware.RequireStaff(h.CreateAirplaneType)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/airplane-types/{id}", h.GetAirplaneType).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/airplane-types/{id}", middleware.RequireStaff(h.UpdateAirplaneType)).Methods(mutate...)
	api.HandleFunc("/airplane-types/{id}", middleware.RequireStaff(h.DeleteAirplaneType)).Methods(http.MethodDelete, http.MethodOptions)

	// Airplanes
	api.HandleFunc("/airplanes", h.ListAirplanes).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/airplanes", middleware.RequireStaff(h.CreateAirplane)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/airplanes/{id}", h.GetAirplane).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/airplanes/{id}", middleware.RequireStaff(h.UpdateAirplane)).Methods(mutate...)
	api.HandleFunc("/airplanes/{id}", middleware.RequireStaff(h.DeleteAirplane)).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/airplanes/{id}/upload-image", middleware.RequireStaff(h.UploadAirplaneImage)).Methods(http.MethodPost, http.MethodOptions)

	// Crew
	api.HandleFunc("/crew", h.ListCrew).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/crew", middleware.RequireStaff(h.CreateCrew)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/crew/{id}", h.GetCrew).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/crew/{id}", middleware.RequireStaff(h.UpdateCrew)).Methods(mutate...)
	api.HandleFunc("/crew/{id}", middleware.RequireStaff(h.DeleteCrew)).Methods(http.MethodDelete, http.MethodOptions)

	// Flights
	api.HandleFunc("/flights", h.ListFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights", middleware.RequireStaff(h.CreateFlight)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}", middleware.RequireStaff(h.UpdateFlight)).Methods(mutate...)
	api.HandleFunc("/flights/{id}", middleware.RequireStaff(h.DeleteFlight)).Methods(http.MethodDelete, http.MethodOptions)

	// WebSocket booking feed
	api.HandleFunc("/flights/{id}/ws", opts.Hub.ServeFlight)

	// Orders and tickets
	api.HandleFunc("/orders", middleware.RequireAuth(h.CreateOrder)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/orders", middleware.RequireAuth(h.ListOrders)).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/orders/{id}", middleware.RequireAuth(h.GetOrder)).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/orders/{id}/pdf", middleware.RequireAuth(h.GetOrderPDF)).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/tickets/{id}", middleware.RequireAuth(h.GetTicket)).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/tickets/{id}/qrcode", middleware.RequireAuth(h.GetTicketQR)).Methods(http.MethodGet, http.MethodOptions)

	// Users
	api.HandleFunc("/users/register", h.Register).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/users/login", h.Login).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/users/token", h.Refresh).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/users/me", middleware.RequireAuth(h.Me)).Methods(http.MethodGet, http.MethodOptions)

	// Uploaded media
	r.PathPrefix(opts.MediaURL + "/").Handler(
		http.StripPrefix(opts.MediaURL+"/", http.FileServer(http.Dir(opts.MediaDir))),
	)

	// Health check
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
