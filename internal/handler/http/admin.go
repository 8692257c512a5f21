package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/utils"
	"github.com/MKhiriev/painel-produtividade/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		utils.WriteError(w, "missing_token", ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	users, err := h.services.AdminService.ListUsers(r.Context(), ident)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK) //nolint:errcheck
}

// listAllDemandas is the unscoped listing for managers and the supreme
// admin; members get access denied from the service.
func (h *Handler) listAllDemandas(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		utils.WriteError(w, "missing_token", ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	filter := models.DemandaFilter{
		Categoria: r.URL.Query().Get("categoria"),
		Status:    r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			h.respondError(w, r, ErrInvalidIDParam)
			return
		}
		filter.UserID = userID
	}

	demandas, err := h.services.AdminService.ListAllDemandas(r.Context(), ident, filter)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, demandas, http.StatusOK) //nolint:errcheck
}

func (h *Handler) setUserType(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		utils.WriteError(w, "missing_token", ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req models.SetUserTypeRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	user, err := h.services.AdminService.SetUserRole(r.Context(), ident, id, req.UserType)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		utils.WriteError(w, "missing_token", ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.services.AdminService.DeleteUser(r.Context(), ident, id); err != nil {
		h.respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", id).Msg("user deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: "Usuário deletado"}, http.StatusOK) //nolint:errcheck
}
