package workers

import (
	"github.com/MKhiriev/painel-produtividade/internal/config"
	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the server. Currently that
// is the session audit purger.
func NewWorkers(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionPurgeWorker(
				storages.SessionRepository,
				cfg.Workers.SessionPurgeInterval,
				cfg.Auth.TokenDuration,
				logger,
			),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
