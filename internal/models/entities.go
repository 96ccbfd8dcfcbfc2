package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxPilotCapacity bounds the number of cockpit seats an airplane can have.
const MaxPilotCapacity = 5

// User is an API account. Staff users may mutate reference data.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

// Airport represents an airport in the reference data
type Airport struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Image     *string   `json:"image"`
	OpenYear  int       `json:"open_year"`
	CreatedAt time.Time `json:"created_at"`
}

// Route connects a source airport to a destination airport
type Route struct {
	ID            uuid.UUID `json:"id"`
	SourceID      uuid.UUID `json:"source"`
	DestinationID uuid.UUID `json:"destination"`
	Distance      int       `json:"distance"`
}

// RouteList is the list representation of a route, with airport names
// in place of ids.
type RouteList struct {
	ID          uuid.UUID `json:"id"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Distance    int       `json:"distance"`
}

// RouteDetail is the retrieve representation with nested airports.
type RouteDetail struct {
	ID          uuid.UUID `json:"id"`
	Source      Airport   `json:"source"`
	Destination Airport   `json:"destination"`
	Distance    int       `json:"distance"`
}

// Manufacturer represents an airplane manufacturer
type Manufacturer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	FoundedYear *int      `json:"founded_year"`
	Website     *string   `json:"website"`
	Logo        *string   `json:"logo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ManufacturerList adds the airplane count shown in list responses.
type ManufacturerList struct {
	Manufacturer
	AirplanesCount int `json:"airplanes_count"`
}

// ManufacturerDetail is the retrieve representation with the manufacturer's
// airplanes nested.
type ManufacturerDetail struct {
	Manufacturer
	Airplanes []AirplaneList `json:"airplanes"`
}

// AirplaneType represents a model family, identified by a 3-letter code
type AirplaneType struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Code    string    `json:"code"`
	Purpose string    `json:"purpose"`
}

// Airplane represents an aircraft in the fleet. Rows and SeatsInRow are nil
// when the airplane has no passenger seating configured.
type Airplane struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	TypeID            uuid.UUID `json:"type"`
	ManufacturerID    uuid.UUID `json:"manufacturer"`
	Rows              *int      `json:"rows"`
	SeatsInRow        *int      `json:"seats_in_row"`
	PilotsCapacity    int       `json:"pilots_capacity"`
	PersonalCapacity  int       `json:"personal_capacity"`
	YearOfManufacture int       `json:"year_of_manufacture"`
	FuelCapacityL     int       `json:"fuel_capacity_l"`
	CargoCapacityKg   int       `json:"cargo_capacity_kg"`
	MaxSpeedKmh       int       `json:"max_speed_kmh"`
	MaxDistanceKm     int       `json:"max_distance_km"`
	Image             *string   `json:"image"`
}

// CrewCapacity is the total number of crew seats on board.
func (a *Airplane) CrewCapacity() int {
	return a.PersonalCapacity + a.PilotsCapacity
}

// PassengerSeatsTotal is rows × seats per row, or 0 when the airplane has no
// passenger seating configured.
func (a *Airplane) PassengerSeatsTotal() int {
	if a.Rows == nil || a.SeatsInRow == nil {
		return 0
	}
	return *a.Rows * *a.SeatsInRow
}

// SeatsTotal is the passenger seat count plus the crew seat count.
func (a *Airplane) SeatsTotal() int {
	return a.PassengerSeatsTotal() + a.CrewCapacity()
}

// AirplaneList is the list representation with resolved names and derived
// capacity figures.
type AirplaneList struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Manufacturer      string    `json:"manufacturer"`
	CrewCapacity      int       `json:"crew_capacity"`
	SeatsTotal        int       `json:"seats_total"`
	PilotsCapacity    int       `json:"pilots_capacity"`
	YearOfManufacture int       `json:"year_of_manufacture"`
	FuelCapacityL     int       `json:"fuel_capacity_l"`
	CargoCapacityKg   int       `json:"cargo_capacity_kg"`
	MaxSpeedKmh       int       `json:"max_speed_kmh"`
	MaxDistanceKm     int       `json:"max_distance_km"`
	Flights           int       `json:"flights"`
	Image             *string   `json:"image"`
}

// AirplaneFlight is a flight summary nested under an airplane detail.
type AirplaneFlight struct {
	ID            uuid.UUID   `json:"id"`
	Route         RouteDetail `json:"route"`
	DepartureTime time.Time   `json:"departure_time"`
	ArrivalTime   time.Time   `json:"arrival_time"`
}

// AirplaneDetail is the retrieve representation with nested manufacturer,
// seating layout and flight history.
type AirplaneDetail struct {
	AirplaneList
	Manufacturer        Manufacturer     `json:"manufacturer_detail"`
	PassengerSeatsTotal int              `json:"passenger_seats_total"`
	Rows                *int             `json:"rows"`
	SeatsInRow          *int             `json:"seats_in_row"`
	FlightList          []AirplaneFlight `json:"flight_list"`
}

// Crew represents a crew member
type Crew struct {
	ID        uuid.UUID    `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	CrewType  CrewType     `json:"crew_type"`
	Position  CrewPosition `json:"position"`
}

// Flight represents a scheduled flight
type Flight struct {
	ID            uuid.UUID   `json:"id"`
	RouteID       uuid.UUID   `json:"route"`
	AirplaneID    uuid.UUID   `json:"airplane"`
	DepartureTime time.Time   `json:"departure_time"`
	ArrivalTime   time.Time   `json:"arrival_time"`
	CrewIDs       []uuid.UUID `json:"crew"`
}

// FlightCrew is a crew member rendered with display labels.
type FlightCrew struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CrewType  string    `json:"crew_type"`
	Position  string    `json:"position"`
}

// FlightAirplane is the airplane summary nested under a flight detail.
type FlightAirplane struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Manufacturer     string    `json:"manufacturer"`
	PilotsCapacity   int       `json:"pilots_capacity"`
	PersonalCapacity int       `json:"personal_capacity"`
	PassengerSeats   int       `json:"passenger_seats"`
	Image            *string   `json:"image"`
}

// FlightDetail is the read representation with nested route, airplane
// and crew.
type FlightDetail struct {
	ID            uuid.UUID      `json:"id"`
	Route         RouteDetail    `json:"route"`
	Airplane      FlightAirplane `json:"airplane"`
	Crew          []FlightCrew   `json:"crew"`
	DepartureTime time.Time      `json:"departure_time"`
	ArrivalTime   time.Time      `json:"arrival_time"`
}

// Order groups the tickets a user booked in one submission.
type Order struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Ticket reserves one seat on one flight.
type Ticket struct {
	ID       uuid.UUID `json:"id"`
	Row      int       `json:"row"`
	Seat     int       `json:"seat"`
	OrderID  uuid.UUID `json:"order"`
	FlightID uuid.UUID `json:"flight"`
	BookedAt time.Time `json:"booked_at"`
}

// TicketFlight is the flight summary nested under a ticket.
type TicketFlight struct {
	ID            uuid.UUID `json:"id"`
	Route         string    `json:"route"`
	Airplane      string    `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

// TicketDetail is the read representation of a ticket.
type TicketDetail struct {
	ID       uuid.UUID    `json:"id"`
	Row      int          `json:"row"`
	Seat     int          `json:"seat"`
	Flight   TicketFlight `json:"flight"`
	BookedAt time.Time    `json:"booked_at"`
}

// OrderDetail is an order with its tickets attached, in booking order.
type OrderDetail struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user"`
	Tickets   []TicketDetail `json:"tickets"`
	CreatedAt time.Time      `json:"created_at"`
}
