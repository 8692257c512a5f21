package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/painel-produtividade/internal/utils"
	"github.com/MKhiriev/painel-produtividade/models"
)

func (h *Handler) createDemanda(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		utils.WriteError(w, "missing_token", ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	var req models.CreateDemandaRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	demanda, err := h.services.DemandaService.Create(r.Context(), ident.ID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, demanda, http.StatusCreated) //nolint:errcheck
}

// listDemandas returns the demandas visible to the requester, newest first.
// Filters come from query parameters; a userId filter only takes effect for
// requesters allowed to see everyone's rows.
func (h *Handler) listDemandas(w http.ResponseWriter, r *http.Request) {
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

	demandas, err := h.services.DemandaService.List(r.Context(), ident, filter)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, demandas, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getDemanda(w http.ResponseWriter, r *http.Request) {
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

	demanda, err := h.services.DemandaService.GetByID(r.Context(), id, ident.ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, demanda, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateDemanda(w http.ResponseWriter, r *http.Request) {
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

	var patch models.DemandaPatch
	if err := h.decodeJSON(r, &patch); err != nil {
		h.respondError(w, r, err)
		return
	}

	demanda, err := h.services.DemandaService.Update(r.Context(), id, ident.ID, patch)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, demanda, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteDemanda(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.DemandaService.Delete(r.Context(), id, ident.ID); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Demanda deletada"}, http.StatusOK) //nolint:errcheck
}
