package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/store"
)

// sessionPurgeWorker periodically deletes session audit rows older than the
// token lifetime. A row that old can no longer correspond to a valid token,
// so it carries no audit value worth the disk space.
type sessionPurgeWorker struct {
	sessions store.SessionRepository
	interval time.Duration
	maxAge   time.Duration
	logger   *logger.Logger

	stop chan struct{}
	done chan struct{}
}

func newSessionPurgeWorker(sessions store.SessionRepository, interval, maxAge time.Duration, logger *logger.Logger) *sessionPurgeWorker {
	return &sessionPurgeWorker{
		sessions: sessions,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (w *sessionPurgeWorker) Run() {
	w.logger.Info().Dur("interval", w.interval).Msg("session purge worker started")

	go func() {
		defer close(w.done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.purge()
			case <-w.stop:
				return
			}
		}
	}()
}

func (w *sessionPurgeWorker) Stop() {
	close(w.stop)
	<-w.done
	w.logger.Info().Msg("session purge worker stopped")
}

func (w *sessionPurgeWorker) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-w.maxAge)
	purged, err := w.sessions.PurgeSessionsBefore(ctx, cutoff)
	if err != nil {
		w.logger.Err(err).Msg("error purging sessions")
		return
	}

	if purged > 0 {
		w.logger.Info().Int64("purged", purged).Msg("old sessions purged")
	}
}
