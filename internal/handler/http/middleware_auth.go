// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, tracing, logging, and CORS concerns are
// handled at this layer before requests reach the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/utils"
)

// auth enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via the auth service, and stores the verified identity in the request
// context under [utils.IdentityCtxKey] before delegating to the next handler.
//
// A missing or malformed header is 401: the caller presented no credential.
// A credential that fails verification (bad signature, wrong issuer,
// expired) is 403: the caller presented one and it was rejected.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, "missing_token", ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, "missing_token", ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		// Store the verified identity in the context so downstream handlers
		// can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
