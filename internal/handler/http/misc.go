package http

import (
	"net/http"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/utils"
	"github.com/MKhiriev/painel-produtividade/models"
)

// categorias exposes the current valid-category set so the frontend form
// never hardcodes it.
func (h *Handler) categorias(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.DemandaService.Categories(), http.StatusOK) //nolint:errcheck
}

// health reports process liveness plus store reachability. An unreachable
// store is 503 so load balancers stop routing here.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	resp := models.HealthResponse{Status: "ok", DB: true}

	if err := h.db.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check: store unreachable")
		status = http.StatusServiceUnavailable
		resp = models.HealthResponse{Status: "degraded", DB: false}
	}

	utils.WriteJSON(w, resp, status) //nolint:errcheck
}
