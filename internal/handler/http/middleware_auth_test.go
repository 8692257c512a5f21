package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/painel-produtividade/internal/service"
	"github.com/MKhiriev/painel-produtividade/internal/utils"
	"github.com/MKhiriev/painel-produtividade/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware_MissingHeaderIs401(t *testing.T) {
	h := newTestHandler(&service.Services{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not run")
	})

	rr := executeAuth(h, "", next)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "missing_token", decodeErrorBody(t, rr).Error)
}

func TestAuthMiddleware_MalformedHeaderIs401(t *testing.T) {
	h := newTestHandler(&service.Services{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not run")
	})

	rr := executeAuth(h, "Bearer", next)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "missing_token", decodeErrorBody(t, rr).Error)
}

func TestAuthMiddleware_RejectedTokenIs403(t *testing.T) {
	auth := &fakeAuthService{
		parseTokenFn: func(context.Context, string) (models.Identity, error) {
			return models.Identity{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not run")
	})

	rr := executeAuth(h, "Bearer bad-token", next)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "invalid_token", decodeErrorBody(t, rr).Error)
}

func TestAuthMiddleware_IdentityReachesContext(t *testing.T) {
	want := models.Identity{ID: 7, Name: "Maria", Email: "maria@agencia.com", UserType: models.RoleManager}
	auth := &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Identity, error) {
			assert.Equal(t, "good-token", tokenString)
			return want, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	var got models.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		got = identity
	})

	rr := executeAuth(h, "Bearer good-token", next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, want, got)
}
