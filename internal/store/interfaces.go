package store

import (
	"context"
	"time"

	"github.com/MKhiriev/painel-produtividade/models"
)

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateProfile(ctx context.Context, id int64, fields map[string]any) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// SetUserType changes the role of the target user. Promotions to the
	// supreme role run the existence check and the write in one transaction
	// and fail with [ErrSupremeAdminExists] when a different user holds it.
	SetUserType(ctx context.Context, targetID int64, role models.Role) (models.User, error)

	// DeleteUser removes the user and all of their demandas in one transaction.
	DeleteUser(ctx context.Context, targetID int64) error
}

// DemandaRepository is the data-access contract for the demandas table.
type DemandaRepository interface {
	CreateDemanda(ctx context.Context, demanda models.Demanda) (models.Demanda, error)
	ListDemandas(ctx context.Context, filter models.DemandaFilter) ([]models.Demanda, error)

	// GetDemanda returns the demanda regardless of ownership, or
	// [ErrDemandaNotFound]. Callers enforcing ownership compare UserID.
	GetDemanda(ctx context.Context, id int64) (models.Demanda, error)

	// GetDemandaForOwner returns the demanda only when it exists and belongs
	// to ownerID; otherwise [ErrDemandaNotFound]. Absence and foreign
	// ownership are indistinguishable to the caller.
	GetDemandaForOwner(ctx context.Context, id, ownerID int64) (models.Demanda, error)

	UpdateDemanda(ctx context.Context, id int64, fields map[string]any) (models.Demanda, error)
	DeleteDemanda(ctx context.Context, id int64) error
}

// StatsRepository runs the date-bucketed aggregation queries behind the
// dashboard and ranking screens. Date arguments are calendar-day strings
// (YYYY-MM-DD); missing data yields zero values, never an error.
type StatsRepository interface {
	SumMinutesOnDay(ctx context.Context, userID int64, day string) (int64, error)
	SumMinutesSince(ctx context.Context, userID int64, sinceDay string) (int64, error)
	MinutesPerDaySince(ctx context.Context, userID int64, sinceDay string) ([]DayMinutes, error)
	MinutesByCategory(ctx context.Context, userID int64) (map[string]int64, error)
	GlobalAverageMinutes(ctx context.Context) (float64, error)
	Leaderboard(ctx context.Context, sinceDay string) ([]models.RankingEntry, error)
}

// SessionRepository records issued tokens for auditing and prunes old rows.
// Authentication never consults this table; tokens are self-contained.
type SessionRepository interface {
	CreateSession(ctx context.Context, userID int64, token string) error
	PurgeSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// DayMinutes is one row of the weekly aggregation: a calendar day
// (YYYY-MM-DD) and the total minutes logged on it.
type DayMinutes struct {
	Day     string
	Minutes int64
}
