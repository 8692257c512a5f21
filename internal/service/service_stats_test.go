package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/store"
	"github.com/MKhiriev/painel-produtividade/models"
)

func TestDashboardStats_Formulas(t *testing.T) {
	stats := &fakeStatsRepo{
		minutesOnDay: 240,
		minutesSince: 900,
		perDay: []store.DayMinutes{
			{Day: "2026-08-31", Minutes: 120}, // Monday
			{Day: "2026-09-01", Minutes: 100}, // Tuesday
		},
		byCategory:    map[string]int64{"Design": 500, "Copy": 400},
		globalAverage: 72.4,
		board: []models.RankingEntry{
			{ID: 3, Name: "Ana", TotalTempo: 1200},
			{ID: 1, Name: "Maria", TotalTempo: 900},
			{ID: 2, Name: "Bruno", TotalTempo: 300},
		},
	}
	svc := NewStatsService(stats, logger.Nop())

	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
	got, err := svc.DashboardStats(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TotalToday != 240 {
		t.Errorf("TotalToday = %d, want 240", got.TotalToday)
	}
	if got.TotalWeek != 900 {
		t.Errorf("TotalWeek = %d, want 900", got.TotalWeek)
	}
	// 240/480*100 = 50
	if got.Productivity != 50 {
		t.Errorf("Productivity = %d, want 50", got.Productivity)
	}
	// round(72.4) = 72
	if got.AverageProductivity != 72 {
		t.Errorf("AverageProductivity = %d, want 72", got.AverageProductivity)
	}
	// user 1 is second on the board
	if got.Ranking != 2 {
		t.Errorf("Ranking = %d, want 2", got.Ranking)
	}
	if len(got.WeeklyData) != 2 {
		t.Fatalf("expected 2 weekly buckets, got %d", len(got.WeeklyData))
	}
	// Monday maps to index 1 of the label array
	if got.WeeklyData[0].Day != "Ter" {
		t.Errorf("Monday label = %s, want Ter", got.WeeklyData[0].Day)
	}
	// round(120/60) = 2
	if got.WeeklyData[0].Hours != 2 {
		t.Errorf("Monday hours = %d, want 2", got.WeeklyData[0].Hours)
	}
	if got.ByCategory["Design"] != 500 {
		t.Errorf("ByCategory[Design] = %d, want 500", got.ByCategory["Design"])
	}
}

func TestDashboardStats_SundayGetsMondayLabel(t *testing.T) {
	stats := &fakeStatsRepo{
		perDay:     []store.DayMinutes{{Day: "2026-08-30", Minutes: 60}}, // Sunday
		byCategory: map[string]int64{},
	}
	svc := NewStatsService(stats, logger.Nop())

	got, err := svc.DashboardStats(context.Background(), 1, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.WeeklyData) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(got.WeeklyData))
	}
	// index 0 of the label array is "Seg", so Sunday carries the Monday
	// label; the frontend chart indexes the same array with getDay()
	if got.WeeklyData[0].Day != "Seg" {
		t.Errorf("Sunday label = %s, want Seg", got.WeeklyData[0].Day)
	}
}

func TestDashboardStats_EmptyUser(t *testing.T) {
	stats := &fakeStatsRepo{byCategory: map[string]int64{}}
	svc := NewStatsService(stats, logger.Nop())

	got, err := svc.DashboardStats(context.Background(), 42, time.Now())
	if err != nil {
		t.Fatalf("expected zero payload, got error: %v", err)
	}
	if got.TotalToday != 0 || got.TotalWeek != 0 || got.Productivity != 0 || got.Ranking != 0 {
		t.Errorf("expected all-zero stats, got %+v", got)
	}
	if len(got.WeeklyData) != 0 {
		t.Errorf("expected no weekly buckets, got %+v", got.WeeklyData)
	}
}

func TestLeaderboard_PeriodMapping(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period    string
		wantSince string
	}{
		{"semana", "2026-08-25"},
		{"mês", "2026-08-02"},
		{"ano", "2025-09-01"},
		{"", "2026-08-25"},
		{"trimestre", "2026-08-25"},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			stats := &fakeStatsRepo{}
			svc := NewStatsService(stats, logger.Nop())

			if _, err := svc.Leaderboard(context.Background(), tt.period, now); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stats.lastSinceDay != tt.wantSince {
				t.Errorf("period %q: since = %s, want %s", tt.period, stats.lastSinceDay, tt.wantSince)
			}
		})
	}
}
