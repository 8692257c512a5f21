package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
)

// sessionRepository records issued tokens in the sessions table for auditing.
// The auth gate never reads this table; tokens stay self-contained.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession appends an audit row for a freshly issued token.
func (r *sessionRepository) CreateSession(ctx context.Context, userID int64, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createSession, userID, token); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// PurgeSessionsBefore deletes audit rows created before the cutoff and
// returns how many were removed. Called periodically by the purge worker
// with cutoff = now - token lifetime, when the recorded tokens are expired
// anyway.
func (r *sessionRepository) PurgeSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, purgeSessionsBefore, cutoff.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return purged, nil
}
