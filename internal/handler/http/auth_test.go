package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/painel-produtividade/internal/service"
	"github.com/MKhiriev/painel-produtividade/internal/store"
	"github.com/MKhiriev/painel-produtividade/internal/utils"
	"github.com/MKhiriev/painel-produtividade/models"
)

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestRegister_Success(t *testing.T) {
	auth := &fakeAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{ID: 1, Name: req.Name, Email: req.Email, UserType: models.RoleMember}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-token"}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := postJSON(t, h.register, "/api/auth/register",
		`{"name":"Maria","email":"maria@agencia.com","password":"senha123"}`)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "maria@agencia.com", resp.User.Email)
	// the password hash must never serialize
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestRegister_ValidationFailure(t *testing.T) {
	h := newTestHandler(&service.Services{})

	// short password, missing name
	rr := postJSON(t, h.register, "/api/auth/register",
		`{"email":"maria@agencia.com","password":"123"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "validation_failed", decodeErrorBody(t, rr).Error)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rr := postJSON(t, h.register, "/api/auth/register", `{not-json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid_json", decodeErrorBody(t, rr).Error)
}

func TestRegister_DuplicateEmailIs409(t *testing.T) {
	auth := &fakeAuthService{
		registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := postJSON(t, h.register, "/api/auth/register",
		`{"name":"Maria","email":"maria@agencia.com","password":"senha123"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "email_in_use", decodeErrorBody(t, rr).Error)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	for name, err := range map[string]error{
		"unknown email":  store.ErrNoUserWasFound,
		"wrong password": service.ErrWrongPassword,
	} {
		t.Run(name, func(t *testing.T) {
			failing := err
			auth := &fakeAuthService{
				loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
					return models.User{}, failing
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			rr := postJSON(t, h.login, "/api/auth/login",
				`{"email":"maria@agencia.com","password":"senha123"}`)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			body := decodeErrorBody(t, rr)
			assert.Equal(t, "invalid_credentials", body.Error)
			assert.Equal(t, "invalid email or password", body.Message)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
			return models.User{ID: 7, Email: "maria@agencia.com"}, nil
		},
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-token"}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := postJSON(t, h.login, "/api/auth/login",
		`{"email":"maria@agencia.com","password":"senha123"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, int64(7), resp.User.ID)
}

func TestMe_ReturnsFreshRecord(t *testing.T) {
	auth := &fakeAuthService{
		getMeFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			return models.User{ID: 7, Name: "Maria Silva", UserType: models.RoleManager}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = injectNopLogger(req)
	ctx := context.WithValue(req.Context(), utils.IdentityCtxKey, models.Identity{ID: 7, UserType: models.RoleMember})
	rr := httptest.NewRecorder()
	h.me(rr, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rr.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "Maria Silva", user.Name)
	assert.Equal(t, models.RoleManager, user.UserType)
}

func TestUpdateProfile_WrongCurrentPasswordIs401(t *testing.T) {
	auth := &fakeAuthService{
		updateProfileFn: func(context.Context, int64, models.ProfileUpdateRequest) (models.User, error) {
			return models.User{}, service.ErrWrongCurrentPassword
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile",
		strings.NewReader(`{"newPassword":"nova","currentPassword":"errada"}`))
	req = injectNopLogger(req)
	ctx := context.WithValue(req.Context(), utils.IdentityCtxKey, models.Identity{ID: 7})
	rr := httptest.NewRecorder()
	h.updateProfile(rr, req.WithContext(ctx))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "wrong_current_password", decodeErrorBody(t, rr).Error)
}
