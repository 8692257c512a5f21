package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/painel-produtividade/internal/utils"
)

// ranking returns the leaderboard for the requested period ("semana", "mês",
// "ano"); anything else falls back to the weekly span. The frontend sends
// "period"; "periodo" is accepted as an alias.
func (h *Handler) ranking(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(r); !ok {
		utils.WriteError(w, "missing_token", ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = r.URL.Query().Get("periodo")
	}

	entries, err := h.services.StatsService.Leaderboard(r.Context(), period, time.Now())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK) //nolint:errcheck
}
