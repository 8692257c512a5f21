package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/models"
)

// demandaRepository is the sqlite-backed implementation of
// [DemandaRepository]. Listing and partial updates go through squirrel
// builders; everything else is a fixed parameterized statement.
type demandaRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDemandaRepository constructs a [DemandaRepository] backed by the
// provided database connection and logger.
func NewDemandaRepository(db *DB, logger *logger.Logger) DemandaRepository {
	logger.Debug().Msg("creating demanda repository")
	return &demandaRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDemanda persists a new demanda and returns the record with
// server-assigned fields (ID, Data). Category membership is validated by the
// service before the row reaches the repository; the repository stores
// whatever it is handed so historic rows with retired categories keep
// working.
func (r *demandaRepository) CreateDemanda(ctx context.Context, demanda models.Demanda) (models.Demanda, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDemanda,
		demanda.UserID, demanda.Categoria, demanda.Cliente, demanda.Descricao, demanda.Tempo, demanda.Status)

	var created models.Demanda
	if err := scanDemanda(row, &created); err != nil {
		log.Err(err).Str("func", "*demandaRepository.CreateDemanda").Msg("error: creating demanda failed")
		return models.Demanda{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListDemandas returns demandas matching the filter, newest first.
// The ownership scoping rule (members see only their rows) is applied by the
// service before the filter reaches this method.
func (r *demandaRepository) ListDemandas(ctx context.Context, filter models.DemandaFilter) ([]models.Demanda, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDemandasQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*demandaRepository.ListDemandas").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*demandaRepository.ListDemandas").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	demandas := make([]models.Demanda, 0)
	for rows.Next() {
		var demanda models.Demanda
		if err := scanDemanda(rows, &demanda); err != nil {
			log.Err(err).Str("func", "*demandaRepository.ListDemandas").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		demandas = append(demandas, demanda)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return demandas, nil
}

// GetDemanda returns the demanda by id regardless of who owns it. The write
// path uses it so a foreign row can be denied instead of hidden.
func (r *demandaRepository) GetDemanda(ctx context.Context, id int64) (models.Demanda, error) {
	log := logger.FromContext(ctx)

	var demanda models.Demanda
	row := r.db.QueryRowContext(ctx, getDemanda, id)
	if err := scanDemanda(row, &demanda); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Demanda{}, ErrDemandaNotFound
		}

		log.Err(err).Str("func", "*demandaRepository.GetDemanda").Msg("error: scanning error")
		return models.Demanda{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return demanda, nil
}

// GetDemandaForOwner returns the demanda only when it exists and belongs to
// ownerID. A missing row and a row owned by someone else are both
// [ErrDemandaNotFound], so callers cannot probe for existence of other
// users' records.
func (r *demandaRepository) GetDemandaForOwner(ctx context.Context, id, ownerID int64) (models.Demanda, error) {
	log := logger.FromContext(ctx)

	var demanda models.Demanda
	row := r.db.QueryRowContext(ctx, getDemandaForOwner, id, ownerID)
	if err := scanDemanda(row, &demanda); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Demanda{}, ErrDemandaNotFound
		}

		log.Err(err).Str("func", "*demandaRepository.GetDemandaForOwner").Msg("error: scanning error")
		return models.Demanda{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return demanda, nil
}

// UpdateDemanda applies the given column→value map to the demanda row and
// returns the updated record. Ownership is checked by the service via
// [GetDemandaForOwner] before this method runs.
func (r *demandaRepository) UpdateDemanda(ctx context.Context, id int64, fields map[string]any) (models.Demanda, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery("demandas", fields, id, demandaColumns)
	if err != nil {
		log.Err(err).Str("func", "*demandaRepository.UpdateDemanda").Msg("error building update query")
		return models.Demanda{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Demanda
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanDemanda(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Demanda{}, ErrDemandaNotFound
		}

		log.Err(err).Str("func", "*demandaRepository.UpdateDemanda").Msg("error: scanning error")
		return models.Demanda{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteDemanda removes the demanda row. Demanda deletion never touches any
// other table.
func (r *demandaRepository) DeleteDemanda(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDemanda, id)
	if err != nil {
		log.Err(err).Str("func", "*demandaRepository.DeleteDemanda").Msg("error deleting demanda")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDemandaNotFound
	}

	return nil
}

func scanDemanda(row rowScanner, demanda *models.Demanda) error {
	return row.Scan(&demanda.ID, &demanda.UserID, &demanda.Categoria, &demanda.Cliente,
		&demanda.Descricao, &demanda.Tempo, &demanda.Status, &demanda.Data)
}
