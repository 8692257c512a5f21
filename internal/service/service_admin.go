package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/store"
	"github.com/MKhiriev/painel-produtividade/models"
)

type adminService struct {
	users    store.UserRepository
	demandas store.DemandaRepository
	logger   *logger.Logger
}

func NewAdminService(users store.UserRepository, demandas store.DemandaRepository, logger *logger.Logger) AdminService {
	return &adminService{users: users, demandas: demandas, logger: logger}
}

func (s *adminService) ListUsers(ctx context.Context, requester models.Identity) ([]models.User, error) {
	if !requester.UserType.Can(models.CapViewAllUsers) {
		return nil, ErrAccessDenied
	}
	return s.users.ListUsers(ctx)
}

func (s *adminService) ListAllDemandas(ctx context.Context, requester models.Identity, filter models.DemandaFilter) ([]models.Demanda, error) {
	if !requester.UserType.Can(models.CapViewAllDemandas) {
		return nil, ErrAccessDenied
	}
	return s.demandas.ListDemandas(ctx, filter)
}

// SetUserRole changes the target user's role. The one-supreme-admin invariant
// is enforced transactionally in the repository; a promotion attempt while a
// different user holds the supreme role fails with
// [store.ErrSupremeAdminExists].
func (s *adminService) SetUserRole(ctx context.Context, requester models.Identity, targetID int64, newRole models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	if !requester.UserType.Can(models.CapManageRoles) {
		return models.User{}, ErrAccessDenied
	}
	if !newRole.Valid() {
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidRole, newRole)
	}

	user, err := s.users.SetUserType(ctx, targetID, newRole)
	if err != nil {
		return models.User{}, err
	}

	log.Info().Int64("user_id", targetID).Str("user_type", string(newRole)).
		Int64("changed_by", requester.ID).Msg("user role changed")
	return user, nil
}

// DeleteUser removes the target account and all of its demandas.
// Self-deletion is rejected so the system never loses its supreme admin.
func (s *adminService) DeleteUser(ctx context.Context, requester models.Identity, targetID int64) error {
	log := logger.FromContext(ctx)

	if !requester.UserType.Can(models.CapDeleteUsers) {
		return ErrAccessDenied
	}
	if requester.ID == targetID {
		return ErrCannotDeleteSelf
	}

	if err := s.users.DeleteUser(ctx, targetID); err != nil {
		return err
	}

	log.Info().Int64("user_id", targetID).Int64("deleted_by", requester.ID).Msg("user deleted")
	return nil
}
