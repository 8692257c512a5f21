package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/service"
	"github.com/MKhiriev/painel-produtividade/internal/store"
	"github.com/MKhiriev/painel-produtividade/internal/utils"
	"github.com/MKhiriev/painel-produtividade/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		// An unknown email and a wrong password are indistinguishable to the
		// caller.
		if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword) {
			log.Debug().Err(err).Msg("login rejected")
			utils.WriteError(w, "invalid_credentials", "invalid email or password", http.StatusUnauthorized)
			return
		}
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user logged in")
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, http.StatusOK) //nolint:errcheck
}

// me returns the fresh account record of the authenticated user, not the
// token snapshot, so a renamed or re-typed user sees current data.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		utils.WriteError(w, "missing_token", ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetMe(r.Context(), ident.ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		utils.WriteError(w, "missing_token", ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	var req models.ProfileUpdateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), ident.ID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK) //nolint:errcheck
}
