package models

import (
	"time"

	"github.com/google/uuid"
)

// AirportRequest is the create/update payload for an airport.
type AirportRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	City     string `json:"city" validate:"required,max=55"`
	OpenYear int    `json:"open_year" validate:"required,min=1"`
}

// RouteRequest is the create/update payload for a route.
type RouteRequest struct {
	Source      uuid.UUID `json:"source" validate:"required"`
	Destination uuid.UUID `json:"destination" validate:"required"`
	Distance    int       `json:"distance" validate:"required,min=1"`
}

// ManufacturerRequest is the create/update payload for a manufacturer.
type ManufacturerRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Country     string  `json:"country" validate:"required,max=50"`
	FoundedYear *int    `json:"founded_year" validate:"omitempty,min=1"`
	Website     *string `json:"website" validate:"omitempty,url"`
}

// AirplaneTypeRequest is the create/update payload for an airplane type.
type AirplaneTypeRequest struct {
	Name    string `json:"name" validate:"required,max=50"`
	Code    string `json:"code" validate:"required,len=3"`
	Purpose string `json:"purpose" validate:"required,max=100"`
}

// AirplaneRequest is the create/update payload for an airplane.
type AirplaneRequest struct {
	Name              string    `json:"name" validate:"required,max=50"`
	Type              uuid.UUID `json:"type" validate:"required"`
	Manufacturer      uuid.UUID `json:"manufacturer" validate:"required"`
	Rows              *int      `json:"rows" validate:"omitempty,min=1"`
	SeatsInRow        *int      `json:"seats_in_row" validate:"omitempty,min=1"`
	PilotsCapacity    int       `json:"pilots_capacity" validate:"required,min=1,max=5"`
	PersonalCapacity  int       `json:"personal_capacity" validate:"min=0"`
	YearOfManufacture int       `json:"year_of_manufacture" validate:"required,min=1"`
	FuelCapacityL     int       `json:"fuel_capacity_l" validate:"min=0"`
	CargoCapacityKg   int       `json:"cargo_capacity_kg" validate:"min=0"`
	MaxSpeedKmh       int       `json:"max_speed_kmh" validate:"min=0"`
	MaxDistanceKm     int       `json:"max_distance_km" validate:"min=0"`
}

// CrewRequest is the create/update payload for a crew member.
type CrewRequest struct {
	FirstName string       `json:"first_name" validate:"required,max=50"`
	LastName  string       `json:"last_name" validate:"required,max=50"`
	CrewType  CrewType     `json:"crew_type" validate:"required"`
	Position  CrewPosition `json:"position" validate:"required"`
}

// FlightRequest is the create/update payload for a flight. Crew is a pointer
// so a partial update can omit the roster entirely.
type FlightRequest struct {
	Route         uuid.UUID    `json:"route" validate:"required"`
	Airplane      uuid.UUID    `json:"airplane" validate:"required"`
	DepartureTime time.Time    `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time    `json:"arrival_time" validate:"required"`
	Crew          *[]uuid.UUID `json:"crew"`
}

// TicketRequest is one seat reservation inside an order submission.
type TicketRequest struct {
	Row    int       `json:"row" validate:"required,min=1"`
	Seat   int       `json:"seat" validate:"required,min=1"`
	Flight uuid.UUID `json:"flight" validate:"required"`
}

// CreateOrderRequest is the order submission payload.
type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=5"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

// LoginRequest obtains a token pair.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// TokenPair is the login response.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
