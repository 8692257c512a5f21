package service

import (
	"github.com/MKhiriev/painel-produtividade/internal/config"
	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/store"
)

type Services struct {
	AuthService    AuthService
	DemandaService DemandaService
	StatsService   StatsService
	AdminService   AdminService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.Auth, logger),
		DemandaService: NewDemandaService(storages.DemandaRepository, cfg.App.Categories, logger),
		StatsService:   NewStatsService(storages.StatsRepository, logger),
		AdminService:   NewAdminService(storages.UserRepository, storages.DemandaRepository, logger),
	}
}
