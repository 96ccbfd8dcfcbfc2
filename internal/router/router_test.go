package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/partnersinbahamas/airport-api/internal/auth"
	"github.com/partnersinbahamas/airport-api/internal/handlers"
	"github.com/partnersinbahamas/airport-api/internal/models"
	"github.com/partnersinbahamas/airport-api/internal/service/mocks"
	"github.com/partnersinbahamas/airport-api/internal/ws"
)

func testRouter(svc *mocks.MockService, tokens *auth.Manager) http.Handler {
	return SetupRouter(Options{
		Handler:            handlers.NewHandler(svc),
		Hub:                ws.NewHub(),
		Tokens:             tokens,
		MediaDir:           "media",
		MediaURL:           "/media",
		RateLimitPerSecond: 100,
	})
}

func TestHealthCheck(t *testing.T) {
	r := testRouter(new(mocks.MockService), auth.NewManager("secret", time.Minute, time.Hour))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestReferenceReadsArePublic(t *testing.T) {
	svc := new(mocks.MockService)
	svc.On("ListAirports", mock.Anything, mock.Anything, mock.Anything).Return([]models.Airport{}, 0, nil)

	r := testRouter(svc, auth.NewManager("secret", time.Minute, time.Hour))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/airports", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReferenceWritesRequireStaff(t *testing.T) {
	tokens := auth.NewManager("secret", time.Minute, time.Hour)
	svc := new(mocks.MockService)
	r := testRouter(svc, tokens)

	body := `{"name":"Heathrow","city":"London","open_year":1946}`

	// Anonymous
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/airports", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated but not staff
	access, _, err := tokens.IssuePair(uuid.New(), "user@example.com", false)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/airports", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+access)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Staff
	svc.On("CreateAirport", mock.Anything, mock.Anything).Return(&models.Airport{ID: uuid.New()}, nil)
	staffAccess, _, err := tokens.IssuePair(uuid.New(), "admin@example.com", true)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/api/airports", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+staffAccess)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrdersRequireAuth(t *testing.T) {
	r := testRouter(new(mocks.MockService), auth.NewManager("secret", time.Minute, time.Hour))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPatchAliasesPut(t *testing.T) {
	tokens := auth.NewManager("secret", time.Minute, time.Hour)
	svc := new(mocks.MockService)
	id := uuid.New()
	svc.On("GetAirport", mock.Anything, id).Return(&models.Airport{ID: id, Name: "Heathrow", City: "London", OpenYear: 1946}, nil)
	svc.On("UpdateAirport", mock.Anything, id, mock.Anything).Return(&models.Airport{ID: id}, nil).Twice()

	r := testRouter(svc, tokens)
	access, _, err := tokens.IssuePair(uuid.New(), "admin@example.com", true)
	require.NoError(t, err)

	body := `{"name":"Heathrow","city":"London","open_year":1946}`
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		req := httptest.NewRequest(method, "/api/airports/"+id.String(), strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, method)
	}
}
