package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnersinbahamas/airport-api/internal/auth"
	"github.com/partnersinbahamas/airport-api/internal/service"
)

func okHandler() (http.HandlerFunc, *bool) {
	called := false
	return func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}, &called
}

func TestAuthenticateStoresIdentity(t *testing.T) {
	tokens := auth.NewManager("secret", time.Minute, time.Hour)
	userID := uuid.New()
	access, _, err := tokens.IssuePair(userID, "user@example.com", true)
	require.NoError(t, err)

	var identity service.Identity
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, found = IdentityFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	Authenticate(tokens)(next).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, found)
	assert.Equal(t, userID, identity.UserID)
	assert.True(t, identity.IsStaff)
}

func TestAuthenticateAnonymousPassesThrough(t *testing.T) {
	tokens := auth.NewManager("secret", time.Minute, time.Hour)

	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = IdentityFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	Authenticate(tokens)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, found)
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	tokens := auth.NewManager("secret", time.Minute, time.Hour)

	next, called := okHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	Authenticate(tokens)(http.Handler(next)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	tokens := auth.NewManager("secret", time.Minute, time.Hour)
	_, refresh, err := tokens.IssuePair(uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	next, called := okHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()
	Authenticate(tokens)(http.Handler(next)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestRequireAuth(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()
	RequireAuth(next)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), service.Identity{UserID: uuid.New()}))
	rec = httptest.NewRecorder()
	RequireAuth(next)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRequireStaff(t *testing.T) {
	next, called := okHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), service.Identity{UserID: uuid.New()}))
	rec := httptest.NewRecorder()
	RequireStaff(next)(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), service.Identity{UserID: uuid.New(), IsStaff: true}))
	rec = httptest.NewRecorder()
	RequireStaff(next)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRateLimit(t *testing.T) {
	next, _ := okHandler()
	limited := RateLimit(1)(http.Handler(next))

	first := httptest.NewRecorder()
	limited.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	limited.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	third := httptest.NewRecorder()
	limited.ServeHTTP(third, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTooManyRequests, third.Code)
}
