package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/service"
	"github.com/MKhiriev/painel-produtividade/internal/store"
	"github.com/MKhiriev/painel-produtividade/internal/utils"
)

// errorMapping binds one sentinel error to the HTTP status and the stable
// machine-readable code the frontend switches on. First match wins, so more
// specific sentinels come first.
type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, "invalid_json"},
	{ErrValidationFailed, http.StatusBadRequest, "validation_failed"},
	{ErrInvalidIDParam, http.StatusBadRequest, "invalid_id"},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid_payload"},
	{service.ErrInvalidCategory, http.StatusBadRequest, "invalid_category"},
	{service.ErrInvalidStatus, http.StatusBadRequest, "invalid_status"},
	{service.ErrInvalidRole, http.StatusBadRequest, "invalid_role"},
	{service.ErrNoFieldsToUpdate, http.StatusBadRequest, "empty_update"},
	{service.ErrCannotDeleteSelf, http.StatusBadRequest, "cannot_delete_self"},
	{service.ErrWrongPassword, http.StatusUnauthorized, "invalid_credentials"},
	{service.ErrWrongCurrentPassword, http.StatusUnauthorized, "wrong_current_password"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden, "invalid_token"},
	{service.ErrAccessDenied, http.StatusForbidden, "access_denied"},

	{store.ErrEmailAlreadyExists, http.StatusConflict, "email_in_use"},
	{store.ErrSupremeAdminExists, http.StatusForbidden, "supreme_admin_exists"},
	{store.ErrNoUserWasFound, http.StatusNotFound, "user_not_found"},
	{store.ErrDemandaNotFound, http.StatusNotFound, "demanda_not_found"},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, "internal_error"},
	{store.ErrExecutingQuery, http.StatusInternalServerError, "internal_error"},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, "internal_error"},
	{store.ErrCommittingTransaction, http.StatusInternalServerError, "internal_error"},
	{store.ErrExecutingStatement, http.StatusInternalServerError, "internal_error"},
	{store.ErrScanningRow, http.StatusInternalServerError, "internal_error"},
	{store.ErrScanningRows, http.StatusInternalServerError, "internal_error"},
}

func classifyError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "internal_error"
}

// respondError maps a service or store error onto the uniform JSON error
// body. Server-side failures log at error level and hide the cause from the
// client; client errors echo the sentinel message.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, code := classifyError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		utils.WriteError(w, code, http.StatusText(status), status)
		return
	}

	message := err.Error()
	if errors.Is(err, service.ErrInvalidCategory) {
		message += ". Categorias válidas: " + strings.Join(h.services.DemandaService.Categories(), ", ")
	}

	log.Debug().Err(err).Msg("request rejected")
	utils.WriteError(w, code, message, status)
}
