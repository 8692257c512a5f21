package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/painel-produtividade/internal/utils"
)

// dashboardStats returns the per-user dashboard aggregate. A user with no
// demandas gets an all-zero payload.
func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(r)
	if !ok {
		utils.WriteError(w, "missing_token", ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	stats, err := h.services.StatsService.DashboardStats(r.Context(), ident.ID, time.Now())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK) //nolint:errcheck
}
