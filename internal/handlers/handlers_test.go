package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/partnersinbahamas/airport-api/internal/auth"
	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/middleware"
	"github.com/partnersinbahamas/airport-api/internal/models"
	"github.com/partnersinbahamas/airport-api/internal/rules"
	"github.com/partnersinbahamas/airport-api/internal/service"
	"github.com/partnersinbahamas/airport-api/internal/service/mocks"
)

func newRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	return httptest.NewRequest(method, target, &buf)
}

func withPathID(r *http.Request, id uuid.UUID) *http.Request {
	return mux.SetURLVars(r, map[string]string{"id": id.String()})
}

func withIdentity(r *http.Request, identity service.Identity) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), identity))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListAirportsEnvelope(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	airports := []models.Airport{{ID: uuid.New(), Name: "Heathrow", City: "London", OpenYear: 1946}}
	svc.On("ListAirports", mock.Anything, mock.Anything, mock.Anything).Return(airports, 12, nil)

	rec := httptest.NewRecorder()
	h.ListAirports(rec, newRequest(t, http.MethodGet, "/api/airports?page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(12), body["count"])
	assert.NotNil(t, body["next"])
	assert.NotNil(t, body["previous"])
	assert.Len(t, body["results"], 1)
}

func TestListAirportsEmptyPageSerializesArray(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	svc.On("ListAirports", mock.Anything, mock.Anything, mock.Anything).Return(nil, 0, nil)

	rec := httptest.NewRecorder()
	h.ListAirports(rec, newRequest(t, http.MethodGet, "/api/airports", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results":[]`)
}

func TestGetAirportNotFound(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	id := uuid.New()
	svc.On("GetAirport", mock.Anything, id).Return(nil, database.ErrNotFound)

	rec := httptest.NewRecorder()
	h.GetAirport(rec, withPathID(newRequest(t, http.MethodGet, "/api/airports/"+id.String(), nil), id))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found.", decodeBody(t, rec)["detail"])
}

func TestCreateAirportValidation(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	rec := httptest.NewRecorder()
	h.CreateAirport(rec, newRequest(t, http.MethodPost, "/api/airports", map[string]interface{}{"city": "Berlin"}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "This field is required.", body["name"])
	assert.Equal(t, "This field is required.", body["open_year"])
	svc.AssertNotCalled(t, "CreateAirport", mock.Anything, mock.Anything)
}

func TestCreateRouteSameAirports(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	svc.On("CreateRoute", mock.Anything, mock.Anything).Return(nil, &rules.ValidationError{
		Field:   "detail",
		Message: "Source and destination cannot be the same.",
	})

	airportID := uuid.New()
	rec := httptest.NewRecorder()
	h.CreateRoute(rec, newRequest(t, http.MethodPost, "/api/routes", map[string]interface{}{
		"source":      airportID,
		"destination": airportID,
		"distance":    100,
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Source and destination cannot be the same.", decodeBody(t, rec)["detail"])
}

func TestCreateOrderRequiresIdentity(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	rec := httptest.NewRecorder()
	h.CreateOrder(rec, newRequest(t, http.MethodPost, "/api/orders", map[string]interface{}{}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderEmptyTicketList(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	identity := service.Identity{UserID: uuid.New()}
	rec := httptest.NewRecorder()
	req := withIdentity(newRequest(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"tickets": []interface{}{},
	}), identity)
	h.CreateOrder(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "This list may not be empty.", decodeBody(t, rec)["tickets"])
}

func TestCreateOrderSeatTaken(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	identity := service.Identity{UserID: uuid.New()}
	svc.On("CreateOrder", mock.Anything, identity, mock.Anything).Return(nil, database.ErrSeatTaken)

	rec := httptest.NewRecorder()
	req := withIdentity(newRequest(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"tickets": []map[string]interface{}{{"row": 1, "seat": 1, "flight": uuid.New()}},
	}), identity)
	h.CreateOrder(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "this seat is already booked for this flight", decodeBody(t, rec)["detail"])
}

func TestCreateOrderCreated(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	identity := service.Identity{UserID: uuid.New()}
	order := &models.OrderDetail{ID: uuid.New(), UserID: identity.UserID, Tickets: []models.TicketDetail{}}
	svc.On("CreateOrder", mock.Anything, identity, mock.Anything).Return(order, nil)

	rec := httptest.NewRecorder()
	req := withIdentity(newRequest(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"tickets": []map[string]interface{}{{"row": 1, "seat": 1, "flight": uuid.New()}},
	}), identity)
	h.CreateOrder(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, order.ID.String(), decodeBody(t, rec)["id"])
}

func TestGetOrderForbidden(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	identity := service.Identity{UserID: uuid.New()}
	orderID := uuid.New()
	svc.On("GetOrder", mock.Anything, identity, orderID).Return(nil, service.ErrForbidden)

	rec := httptest.NewRecorder()
	req := withIdentity(withPathID(newRequest(t, http.MethodGet, "/api/orders/"+orderID.String(), nil), orderID), identity)
	h.GetOrder(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteAirplaneProtected(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	id := uuid.New()
	svc.On("DeleteAirplane", mock.Anything, id).Return(&database.ProtectedError{
		Message: "cannot delete: referenced by records in flights",
	})

	rec := httptest.NewRecorder()
	h.DeleteAirplane(rec, withPathID(newRequest(t, http.MethodDelete, "/api/airplanes/"+id.String(), nil), id))

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	svc.On("Login", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidCredentials)

	rec := httptest.NewRecorder()
	h.Login(rec, newRequest(t, http.MethodPost, "/api/users/token", map[string]interface{}{
		"email":    "user@example.com",
		"password": "wrong",
	}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "no active account found with the given credentials", decodeBody(t, rec)["detail"])
}

func TestRefreshExpiredTokenUnauthorized(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	expired := auth.NewManager("test-secret", -time.Minute, -time.Minute)
	_, refresh, err := expired.IssuePair(uuid.New(), "user@example.com", false)
	require.NoError(t, err)
	_, refreshErr := expired.RefreshAccess(refresh)
	require.Error(t, refreshErr)

	svc.On("Refresh", mock.Anything).Return(nil, refreshErr)

	rec := httptest.NewRecorder()
	h.Refresh(rec, newRequest(t, http.MethodPost, "/api/users/token", map[string]interface{}{
		"refresh": refresh,
	}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token is invalid or expired.", decodeBody(t, rec)["detail"])
}

func TestPatchAirportMergesStoredFields(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	id := uuid.New()
	current := &models.Airport{ID: id, Name: "Heathrow", City: "London", OpenYear: 1946}
	svc.On("GetAirport", mock.Anything, id).Return(current, nil)
	svc.On("UpdateAirport", mock.Anything, id, mock.MatchedBy(func(req *models.AirportRequest) bool {
		return req.Name == "Heathrow" && req.City == "Berlin" && req.OpenYear == 1946
	})).Return(current, nil)

	rec := httptest.NewRecorder()
	req := withPathID(newRequest(t, http.MethodPatch, "/api/airports/"+id.String(), map[string]interface{}{
		"city": "Berlin",
	}), id)
	h.UpdateAirport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestPutAirportRequiresFullPayload(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	id := uuid.New()
	rec := httptest.NewRecorder()
	req := withPathID(newRequest(t, http.MethodPut, "/api/airports/"+id.String(), map[string]interface{}{
		"city": "Berlin",
	}), id)
	h.UpdateAirport(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "This field is required.", body["name"])
	assert.Equal(t, "This field is required.", body["open_year"])
	svc.AssertNotCalled(t, "UpdateAirport", mock.Anything, mock.Anything, mock.Anything)
}

func TestPatchFlightCrewOnly(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	id := uuid.New()
	routeID := uuid.New()
	airplaneID := uuid.New()
	crew := []uuid.UUID{uuid.New(), uuid.New()}

	detail := &models.FlightDetail{
		ID:            id,
		Route:         models.RouteDetail{ID: routeID},
		Airplane:      models.FlightAirplane{ID: airplaneID},
		DepartureTime: time.Now().Add(24 * time.Hour),
		ArrivalTime:   time.Now().Add(26 * time.Hour),
	}
	svc.On("GetFlight", mock.Anything, id).Return(detail, nil)
	svc.On("UpdateFlight", mock.Anything, id, mock.MatchedBy(func(req *models.FlightRequest) bool {
		return req.Route == routeID && req.Airplane == airplaneID &&
			req.Crew != nil && len(*req.Crew) == 2
	})).Return(detail, nil)

	rec := httptest.NewRecorder()
	req := withPathID(newRequest(t, http.MethodPatch, "/api/flights/"+id.String(), map[string]interface{}{
		"crew": crew,
	}), id)
	h.UpdateFlight(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateRouteUnknownAirport(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	svc.On("CreateRoute", mock.Anything, mock.Anything).Return(nil, &database.ReferenceError{
		Field:   "source",
		Message: "Airport does not exist.",
	})

	rec := httptest.NewRecorder()
	h.CreateRoute(rec, newRequest(t, http.MethodPost, "/api/routes", map[string]interface{}{
		"source":      uuid.New(),
		"destination": uuid.New(),
		"distance":    100,
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Airport does not exist.", decodeBody(t, rec)["source"])
}

func TestGetTicketQRReturnsPNG(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	identity := service.Identity{UserID: uuid.New()}
	ticketID := uuid.New()
	svc.On("GetTicket", mock.Anything, identity, ticketID).Return(&models.TicketDetail{
		ID: ticketID, Row: 1, Seat: 2, Flight: models.TicketFlight{ID: uuid.New()},
	}, nil)

	rec := httptest.NewRecorder()
	req := withIdentity(withPathID(newRequest(t, http.MethodGet, "/api/tickets/"+ticketID.String()+"/qr", nil), ticketID), identity)
	h.GetTicketQR(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestParseIDRejectsGarbage(t *testing.T) {
	svc := new(mocks.MockService)
	h := NewHandler(svc)

	req := mux.SetURLVars(newRequest(t, http.MethodGet, "/api/airports/not-a-uuid", nil), map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.GetAirport(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNotCalled(t, "GetAirport", mock.Anything, mock.Anything)
}
