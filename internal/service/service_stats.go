package service

import (
	"context"
	"math"
	"time"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/store"
	"github.com/MKhiriev/painel-produtividade/models"
)

const (
	dateLayout = "2006-01-02"

	// dailyGoalMinutes is the 8-hour workday the productivity percentage is
	// measured against.
	dailyGoalMinutes = 480
)

// weekdayLabels is indexed by time.Weekday, so Sunday carries the "Seg"
// label. The frontend chart indexes the same array with getDay(); changing
// the mapping here would desynchronize the two.
var weekdayLabels = [7]string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sab", "Dom"}

// periodDays maps the ranking period parameter to a day span. Unknown values
// fall back to the weekly span.
var periodDays = map[string]int{
	"semana": 7,
	"mês":    30,
	"mes":    30,
	"ano":    365,
}

type statsService struct {
	stats  store.StatsRepository
	logger *logger.Logger
}

func NewStatsService(stats store.StatsRepository, logger *logger.Logger) StatsService {
	return &statsService{stats: stats, logger: logger}
}

// DashboardStats assembles the aggregate dashboard payload for one user.
// Calendar days are bucketed in UTC. A user with no demandas gets an
// all-zero payload, never an error.
func (s *statsService) DashboardStats(ctx context.Context, userID int64, now time.Time) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	today := now.UTC().Format(dateLayout)
	weekAgo := now.UTC().AddDate(0, 0, -7).Format(dateLayout)

	totalToday, err := s.stats.SumMinutesOnDay(ctx, userID, today)
	if err != nil {
		return models.DashboardStats{}, err
	}

	totalWeek, err := s.stats.SumMinutesSince(ctx, userID, weekAgo)
	if err != nil {
		return models.DashboardStats{}, err
	}

	days, err := s.stats.MinutesPerDaySince(ctx, userID, weekAgo)
	if err != nil {
		return models.DashboardStats{}, err
	}

	weekly := make([]models.WeeklyBucket, 0, len(days))
	for _, d := range days {
		day, err := time.Parse(dateLayout, d.Day)
		if err != nil {
			log.Err(err).Str("day", d.Day).Msg("skipping unparseable day bucket")
			continue
		}
		weekly = append(weekly, models.WeeklyBucket{
			Day:   weekdayLabels[int(day.Weekday())],
			Hours: int(math.Round(float64(d.Minutes) / 60)),
		})
	}

	byCategory, err := s.stats.MinutesByCategory(ctx, userID)
	if err != nil {
		return models.DashboardStats{}, err
	}

	average, err := s.stats.GlobalAverageMinutes(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	board, err := s.stats.Leaderboard(ctx, weekAgo)
	if err != nil {
		return models.DashboardStats{}, err
	}

	ranking := 0
	for i, entry := range board {
		if entry.ID == userID {
			ranking = i + 1
			break
		}
	}

	return models.DashboardStats{
		TotalToday:          totalToday,
		TotalWeek:           totalWeek,
		Productivity:        int(math.Round(float64(totalToday) / dailyGoalMinutes * 100)),
		AverageProductivity: int(math.Round(average)),
		Ranking:             ranking,
		WeeklyData:          weekly,
		ByCategory:          byCategory,
	}, nil
}

// Leaderboard returns users ordered by minutes logged within the requested
// period. Users with no demandas in the period do not appear at all.
func (s *statsService) Leaderboard(ctx context.Context, period string, now time.Time) ([]models.RankingEntry, error) {
	days, ok := periodDays[period]
	if !ok {
		days = periodDays["semana"]
	}

	since := now.UTC().AddDate(0, 0, -days).Format(dateLayout)
	return s.stats.Leaderboard(ctx, since)
}
