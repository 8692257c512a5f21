package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/service"
	"github.com/MKhiriev/painel-produtividade/internal/utils"
	"github.com/MKhiriev/painel-produtividade/models"
)

// Pinger reports whether the backing store is reachable. Satisfied by
// [store.DB]; the health endpoint is the only consumer.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	validate *validator.Validate
	db       Pinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, db Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		db:       db,
		logger:   logger,
	}
}

// decodeJSON decodes the request body into dst and runs the struct
// validation tags over it.
func (h *Handler) decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return nil
}

// idParam parses the {id} path segment.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidIDParam
	}
	return id, nil
}

// identity returns the verified identity the auth middleware attached to the
// request. Routes behind the middleware always have one; a missing identity
// means the route was wired outside the auth group.
func identity(r *http.Request) (models.Identity, bool) {
	return utils.GetIdentityFromContext(r.Context())
}
