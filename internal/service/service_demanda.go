package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/store"
	"github.com/MKhiriev/painel-produtividade/models"
)

type demandaService struct {
	demandas   store.DemandaRepository
	categories []string
	logger     *logger.Logger
}

func NewDemandaService(demandas store.DemandaRepository, categories []string, logger *logger.Logger) DemandaService {
	return &demandaService{demandas: demandas, categories: categories, logger: logger}
}

func (s *demandaService) Categories() []string {
	return slices.Clone(s.categories)
}

func (s *demandaService) validCategory(categoria string) bool {
	return slices.Contains(s.categories, categoria)
}

// Create inserts a demanda owned by ownerID. Ownership comes from the
// verified identity, never from the payload. An omitted status defaults to
// pending.
func (s *demandaService) Create(ctx context.Context, ownerID int64, req models.CreateDemandaRequest) (models.Demanda, error) {
	log := logger.FromContext(ctx)

	if !s.validCategory(req.Categoria) {
		return models.Demanda{}, fmt.Errorf("%w: %s", ErrInvalidCategory, req.Categoria)
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return models.Demanda{}, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	demanda, err := s.demandas.CreateDemanda(ctx, models.Demanda{
		UserID:    ownerID,
		Categoria: req.Categoria,
		Cliente:   req.Cliente,
		Descricao: req.Descricao,
		Tempo:     req.Tempo,
		Status:    status,
	})
	if err != nil {
		return models.Demanda{}, err
	}

	log.Info().Int64("demanda_id", demanda.ID).Int64("user_id", ownerID).Msg("demanda created")
	return demanda, nil
}

// List returns demandas visible to the requester. Members are always pinned
// to their own rows; requesters with the view-all capability may pass any
// user filter or none at all.
func (s *demandaService) List(ctx context.Context, requester models.Identity, filter models.DemandaFilter) ([]models.Demanda, error) {
	if !requester.UserType.Can(models.CapViewAllDemandas) {
		filter.UserID = requester.ID
	}
	return s.demandas.ListDemandas(ctx, filter)
}

func (s *demandaService) GetByID(ctx context.Context, id, requesterID int64) (models.Demanda, error) {
	return s.demandas.GetDemandaForOwner(ctx, id, requesterID)
}

// Update applies a partial update to an owned demanda. Ownership is checked
// first so a foreign row yields access denied rather than not found.
func (s *demandaService) Update(ctx context.Context, id, requesterID int64, patch models.DemandaPatch) (models.Demanda, error) {
	if patch.Empty() {
		return models.Demanda{}, ErrNoFieldsToUpdate
	}

	fields := make(map[string]any)
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return models.Demanda{}, fmt.Errorf("%w: %s", ErrInvalidStatus, *patch.Status)
		}
		fields["status"] = *patch.Status
	}
	if patch.Categoria != nil {
		if !s.validCategory(*patch.Categoria) {
			return models.Demanda{}, fmt.Errorf("%w: %s", ErrInvalidCategory, *patch.Categoria)
		}
		fields["categoria"] = *patch.Categoria
	}
	if patch.Cliente != nil {
		fields["cliente"] = *patch.Cliente
	}
	if patch.Descricao != nil {
		fields["descricao"] = *patch.Descricao
	}
	if patch.Tempo != nil {
		if *patch.Tempo <= 0 {
			return models.Demanda{}, fmt.Errorf("%w: tempo must be positive", ErrInvalidDataProvided)
		}
		fields["tempo"] = *patch.Tempo
	}

	if err := s.checkOwnership(ctx, id, requesterID); err != nil {
		return models.Demanda{}, err
	}

	return s.demandas.UpdateDemanda(ctx, id, fields)
}

func (s *demandaService) Delete(ctx context.Context, id, requesterID int64) error {
	if err := s.checkOwnership(ctx, id, requesterID); err != nil {
		return err
	}
	return s.demandas.DeleteDemanda(ctx, id)
}

// checkOwnership distinguishes a missing row from a foreign one: writes to a
// row owned by someone else are denied, not hidden.
func (s *demandaService) checkOwnership(ctx context.Context, id, requesterID int64) error {
	demanda, err := s.demandas.GetDemanda(ctx, id)
	if err != nil {
		return err
	}
	if demanda.UserID != requesterID {
		return ErrAccessDenied
	}
	return nil
}
