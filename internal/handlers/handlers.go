// Package handlers contains the HTTP handlers for the API.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/partnersinbahamas/airport-api/internal/auth"
	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/middleware"
	"github.com/partnersinbahamas/airport-api/internal/rules"
	"github.com/partnersinbahamas/airport-api/internal/service"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	service  service.Service
	validate *validator.Validate
}

// NewHandler creates a new Handler instance
func NewHandler(svc service.Service) *Handler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{service: svc, validate: validate}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"detail": message})
}

// respondServiceError maps domain errors to HTTP responses. Rule violations
// come back keyed by the offending field, the way field validation failures
// do.
func respondServiceError(w http.ResponseWriter, err error) {
	var vErr *rules.ValidationError
	if errors.As(err, &vErr) {
		respondJSON(w, http.StatusBadRequest, map[string]string{vErr.Field: vErr.Message})
		return
	}

	var rErr *database.ReferenceError
	if errors.As(err, &rErr) {
		respondJSON(w, http.StatusBadRequest, map[string]string{rErr.Field: rErr.Message})
		return
	}

	var cErr *database.ConflictError
	var pErr *database.ProtectedError
	switch {
	case errors.Is(err, database.ErrSeatTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &cErr):
		respondError(w, http.StatusConflict, cErr.Message)
	case errors.As(err, &pErr):
		respondError(w, http.StatusConflict, pErr.Message)
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrWrongTokenType):
		respondError(w, http.StatusUnauthorized, "Token is invalid or expired.")
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error.")
	}
}

// decodeAndValidate parses the JSON body into dst and runs field validation.
// On failure it writes the error response and returns false.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			respondJSON(w, http.StatusBadRequest, validationMessages(fieldErrs))
			return false
		}
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}

	return true
}

func validationMessages(fieldErrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = validationMessage(fe)
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "min":
		if fe.Kind() == reflect.Slice {
			return "This list may not be empty."
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "len":
		return fmt.Sprintf("Ensure this field has exactly %s characters.", fe.Param())
	default:
		return "This value is not valid."
	}
}

// parseID extracts the UUID path parameter. A malformed id is treated the
// same as a missing record.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Not found.")
		return uuid.Nil, false
	}
	return id, true
}

func parsePage(r *http.Request) database.Page {
	var page database.Page
	if number, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page.Number = number
	}
	if size, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil {
		page.Size = size
	}
	return page
}

// pageEnvelope is the paginated list response shape.
type pageEnvelope struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// respondPage writes a paginated list. Results is never null: an empty page
// serializes as an empty array.
func respondPage(w http.ResponseWriter, r *http.Request, results interface{}, count int, page database.Page) {
	size := page.Size
	if size <= 0 {
		size = database.DefaultPageSize
	}
	number := page.Number
	if number <= 1 {
		number = 1
	}

	envelope := pageEnvelope{Count: count, Results: results}
	if v := reflect.ValueOf(results); v.Kind() == reflect.Slice && v.IsNil() {
		envelope.Results = []interface{}{}
	}

	if number*size < count {
		envelope.Next = pageURL(r.URL, number+1)
	}
	if number > 1 {
		envelope.Previous = pageURL(r.URL, number-1)
	}

	respondJSON(w, http.StatusOK, envelope)
}

func pageURL(u *url.URL, number int) *string {
	copied := *u
	query := copied.Query()
	query.Set("page", strconv.Itoa(number))
	copied.RawQuery = query.Encode()
	s := copied.String()
	return &s
}

// identityFrom reads the authenticated identity the auth middleware stored on
// the request context.
func identityFrom(r *http.Request) (service.Identity, bool) {
	return middleware.IdentityFrom(r.Context())
}

// splitParam parses a comma-separated query parameter.
func splitParam(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitIntParam(value string) []int {
	var out []int
	for _, part := range splitParam(value) {
		if n, err := strconv.Atoi(part); err == nil {
			out = append(out, n)
		}
	}
	return out
}
