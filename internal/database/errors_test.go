package database

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError_SeatTaken(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "unique_flight_ticket"})
	assert.ErrorIs(t, err, ErrSeatTaken)
}

func TestTranslateError_NamedConflicts(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"unique_airport_name", "An airport with this name already exists."},
		{"unique_route", "A route between these airports already exists."},
		{"unique_manufacturer_name", "A manufacturer with this name already exists."},
		{"unique_airplane_type_code", "An airplane type with this code already exists."},
		{"unique_user_email", "A user with this email already exists."},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			err := translateError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: tt.constraint})

			var conflict *ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, tt.constraint, conflict.Constraint)
			assert.Equal(t, tt.want, conflict.Message)
		})
	}
}

func TestTranslateError_ForeignKeyBecomesProtected(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: pgForeignKeyViolation, TableName: "flights"})

	var protected *ProtectedError
	require.ErrorAs(t, err, &protected)
	assert.Contains(t, protected.Message, "flights")
}

func TestTranslateWriteError_ForeignKeyNamesField(t *testing.T) {
	tests := []struct {
		constraint string
		field      string
		want       string
	}{
		{"fk_route_source", "source", "Airport does not exist."},
		{"fk_flight_airplane", "airplane", "Airplane does not exist."},
		{"fk_ticket_flight", "flight", "Flight does not exist."},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			err := translateWriteError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: tt.constraint})

			var ref *ReferenceError
			require.ErrorAs(t, err, &ref)
			assert.Equal(t, tt.field, ref.Field)
			assert.Equal(t, tt.want, ref.Message)
		})
	}
}

func TestTranslateWriteError_UniqueStillConflicts(t *testing.T) {
	err := translateWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "unique_flight_ticket"})
	assert.ErrorIs(t, err, ErrSeatTaken)
}

func TestTranslateError_PassesThroughOtherErrors(t *testing.T) {
	cause := errors.New("connection refused")
	assert.Equal(t, cause, translateError(cause))
}

func TestPageDefaults(t *testing.T) {
	assert.Equal(t, DefaultPageSize, Page{}.limit())
	assert.Equal(t, 0, Page{}.offset())
	assert.Equal(t, 0, Page{Number: 1, Size: 10}.offset())
	assert.Equal(t, 20, Page{Number: 3, Size: 10}.offset())
	assert.Equal(t, 10, Page{Number: 3}.offset())
}
