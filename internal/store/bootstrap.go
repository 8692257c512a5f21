package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/models"
)

// EnsureCanonicalAdmin is the idempotent startup migration that pins the
// supreme role to one configured identity. It runs once, before the server
// accepts traffic, inside a single transaction:
//
//  1. every supreme admin whose email differs from the canonical one is
//     demoted to member;
//  2. the canonical identity is promoted when it already exists, or created
//     with the supplied (already bcrypt-hashed) password when it does not.
//
// Re-running against an already-correct database changes nothing.
func EnsureCanonicalAdmin(ctx context.Context, db *DB, name, email, passwordHash string) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, demoteStrayAdmins, models.RoleMember, models.RoleSupremeAdmin, email); err != nil {
		log.Err(err).Str("func", "EnsureCanonicalAdmin").Msg("error demoting stray admins")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var id int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ?;`, email).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (name, email, password, user_type) VALUES (?, ?, ?, ?);`,
			name, email, passwordHash, models.RoleSupremeAdmin); err != nil {
			log.Err(err).Str("func", "EnsureCanonicalAdmin").Msg("error creating canonical admin")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		log.Info().Str("email", email).Msg("canonical admin created")
	case err != nil:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	default:
		if _, err := tx.ExecContext(ctx, promoteUserByEmail, models.RoleSupremeAdmin, email); err != nil {
			log.Err(err).Str("func", "EnsureCanonicalAdmin").Msg("error promoting canonical admin")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}
