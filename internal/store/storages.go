package store

import (
	"github.com/MKhiriev/painel-produtividade/internal/logger"
)

// Storages aggregates all repositories behind one constructor so the service
// layer receives a single wired dependency.
type Storages struct {
	UserRepository    UserRepository
	DemandaRepository DemandaRepository
	StatsRepository   StatsRepository
	SessionRepository SessionRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		DemandaRepository: NewDemandaRepository(db, logger),
		StatsRepository:   NewStatsRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
	}
}
