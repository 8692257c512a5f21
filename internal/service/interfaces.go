package service

import (
	"context"
	"time"

	"github.com/MKhiriev/painel-produtividade/models"
)

// AuthService handles registration, login, profile maintenance, and the JWT
// token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetMe(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies the bearer credential and returns the identity it
	// encodes. With role reverification enabled the role claim is replaced by
	// the role currently in storage.
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// DemandaService implements the ownership-scoped demanda operations.
type DemandaService interface {
	Create(ctx context.Context, ownerID int64, req models.CreateDemandaRequest) (models.Demanda, error)
	List(ctx context.Context, requester models.Identity, filter models.DemandaFilter) ([]models.Demanda, error)
	GetByID(ctx context.Context, id, requesterID int64) (models.Demanda, error)
	Update(ctx context.Context, id, requesterID int64, patch models.DemandaPatch) (models.Demanda, error)
	Delete(ctx context.Context, id, requesterID int64) error

	// Categories returns the current valid-category set.
	Categories() []string
}

// StatsService computes the dashboard aggregates and the leaderboard.
type StatsService interface {
	DashboardStats(ctx context.Context, userID int64, now time.Time) (models.DashboardStats, error)
	Leaderboard(ctx context.Context, period string, now time.Time) ([]models.RankingEntry, error)
}

// AdminService implements the role-gated user administration operations.
type AdminService interface {
	ListUsers(ctx context.Context, requester models.Identity) ([]models.User, error)
	ListAllDemandas(ctx context.Context, requester models.Identity, filter models.DemandaFilter) ([]models.Demanda, error)
	SetUserRole(ctx context.Context, requester models.Identity, targetID int64, newRole models.Role) (models.User, error)
	DeleteUser(ctx context.Context, requester models.Identity, targetID int64) error
}
