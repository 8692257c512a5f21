package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/models"
)

// statsRepository runs the aggregation queries behind the dashboard and
// ranking screens. All bucketing is by calendar day: DATE(data) against
// YYYY-MM-DD arguments, so time-of-day never leaks into the windows.
//
// Empty result sets are legitimate (a fresh install has no demandas) and
// produce zero values rather than errors.
type statsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStatsRepository constructs a [StatsRepository] backed by the provided
// database connection and logger.
func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// SumMinutesOnDay returns the total minutes the user logged on the given
// calendar day.
func (r *statsRepository) SumMinutesOnDay(ctx context.Context, userID int64, day string) (int64, error) {
	return r.sumMinutes(ctx, sumMinutesOnDay, userID, day)
}

// SumMinutesSince returns the total minutes the user logged on sinceDay or
// later (inclusive, calendar-day granularity).
func (r *statsRepository) SumMinutesSince(ctx context.Context, userID int64, sinceDay string) (int64, error) {
	return r.sumMinutes(ctx, sumMinutesSince, userID, sinceDay)
}

func (r *statsRepository) sumMinutes(ctx context.Context, query string, userID int64, day string) (int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, userID, day).Scan(&total); err != nil {
		log.Err(err).Str("func", "*statsRepository.sumMinutes").Msg("error executing sum query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// MinutesPerDaySince returns, for each calendar day in the window with at
// least one demanda, the total minutes the user logged that day, ordered by
// day ascending.
func (r *statsRepository) MinutesPerDaySince(ctx context.Context, userID int64, sinceDay string) ([]DayMinutes, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, minutesPerDaySince, userID, sinceDay)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.MinutesPerDaySince").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	buckets := make([]DayMinutes, 0, 7)
	for rows.Next() {
		var bucket DayMinutes
		if err := rows.Scan(&bucket.Day, &bucket.Minutes); err != nil {
			log.Err(err).Str("func", "*statsRepository.MinutesPerDaySince").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		buckets = append(buckets, bucket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return buckets, nil
}

// MinutesByCategory returns category → total minutes over all of the user's
// demandas, not time-windowed. Categories retired from the valid set still
// appear under their stored value.
func (r *statsRepository) MinutesByCategory(ctx context.Context, userID int64) (map[string]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, minutesByCategory, userID)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.MinutesByCategory").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	totals := make(map[string]int64)
	for rows.Next() {
		var categoria string
		var minutes int64
		if err := rows.Scan(&categoria, &minutes); err != nil {
			log.Err(err).Str("func", "*statsRepository.MinutesByCategory").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		totals[categoria] = minutes
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return totals, nil
}

// GlobalAverageMinutes returns the average minutes per demanda across all
// demandas of all users, 0 when the table is empty.
func (r *statsRepository) GlobalAverageMinutes(ctx context.Context) (float64, error) {
	log := logger.FromContext(ctx)

	var avg float64
	if err := r.db.QueryRowContext(ctx, globalAverageMinutes).Scan(&avg); err != nil {
		log.Err(err).Str("func", "*statsRepository.GlobalAverageMinutes").Msg("error executing query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return avg, nil
}

// Leaderboard groups demandas created on sinceDay or later by owner, sums
// minutes, and returns rows joined with the owner's public profile, ordered
// by total descending. Ties break by ascending user id so the order is
// deterministic.
func (r *statsRepository) Leaderboard(ctx context.Context, sinceDay string) ([]models.RankingEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, leaderboard, sinceDay)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.Leaderboard").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.RankingEntry, 0)
	for rows.Next() {
		var entry models.RankingEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Email, &entry.Avatar, &entry.TotalTempo); err != nil {
			log.Err(err).Str("func", "*statsRepository.Leaderboard").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
