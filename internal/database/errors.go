package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrSeatTaken = errors.New("this seat is already booked for this flight")
)

// ConflictError is a unique-constraint violation, surfaced with the
// constraint that was hit so the handler can name it in the response.
type ConflictError struct {
	Constraint string
	Message    string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ProtectedError is a delete refused because dependent records still
// reference the row.
type ProtectedError struct {
	Message string
}

func (e *ProtectedError) Error() string {
	return e.Message
}

// ReferenceError is an insert or update that named a related record which
// does not exist, surfaced with the request field that carried the bad id.
type ReferenceError struct {
	Field   string
	Message string
}

func (e *ReferenceError) Error() string {
	return e.Message
}

// conflictMessages maps schema constraint names to API-facing messages.
var conflictMessages = map[string]string{
	"unique_user_email":         "A user with this email already exists.",
	"unique_airport_name":       "An airport with this name already exists.",
	"unique_route":              "A route between these airports already exists.",
	"unique_manufacturer_name":  "A manufacturer with this name already exists.",
	"unique_airplane_type_name": "An airplane type with this name already exists.",
	"unique_airplane_type_code": "An airplane type with this code already exists.",
}

// referenceFields maps foreign-key constraint names to the request field that
// carried the missing id.
var referenceFields = map[string]ReferenceError{
	"fk_route_source":          {Field: "source", Message: "Airport does not exist."},
	"fk_route_destination":     {Field: "destination", Message: "Airport does not exist."},
	"fk_airplane_type":         {Field: "type", Message: "Airplane type does not exist."},
	"fk_airplane_manufacturer": {Field: "manufacturer", Message: "Manufacturer does not exist."},
	"fk_flight_route":          {Field: "route", Message: "Route does not exist."},
	"fk_flight_airplane":       {Field: "airplane", Message: "Airplane does not exist."},
	"fk_flight_crew_member":    {Field: "crew", Message: "Crew member does not exist."},
	"fk_ticket_flight":         {Field: "flight", Message: "Flight does not exist."},
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateWriteError converts driver errors raised by inserts and updates.
// A foreign-key violation here means the payload referenced a record that
// does not exist, not that the row is protected from deletion.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		if ref, ok := referenceFields[pgErr.ConstraintName]; ok {
			return &ref
		}
		return &ReferenceError{Field: "detail", Message: "Related record does not exist."}
	}
	return translateError(err)
}

// translateError converts driver errors into the store's error taxonomy.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == "unique_flight_ticket" {
			return ErrSeatTaken
		}
		message, ok := conflictMessages[pgErr.ConstraintName]
		if !ok {
			message = fmt.Sprintf("Duplicate value violates constraint %s.", pgErr.ConstraintName)
		}
		return &ConflictError{Constraint: pgErr.ConstraintName, Message: message}
	case pgForeignKeyViolation:
		return &ProtectedError{
			Message: fmt.Sprintf("This record cannot be deleted or changed because it is referenced by %s.", pgErr.TableName),
		}
	case pgCheckViolation:
		return &ConflictError{
			Constraint: pgErr.ConstraintName,
			Message:    fmt.Sprintf("Value violates constraint %s.", pgErr.ConstraintName),
		}
	}

	return err
}
