// Package feestructure manages the lifecycle of fee structures.
package feestructure

import (
	"context"
	"fmt"
	"time"

	apperr "acquiring/internal/errors"
	"acquiring/internal/models"
	"acquiring/internal/repositories"
	"acquiring/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultCurrency = "USD"

type Service struct {
	store     Store
	merchants MerchantIndex
	cache     Invalidator
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(store Store, merchants MerchantIndex, cache Invalidator, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		merchants: merchants,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

// Validate runs the validator without persisting anything.
func (s *Service) Validate(in Input) validation.Result {
	return validation.ValidateFeeStructure(in.Draft())
}

// Create validates, normalizes and stores a new structure.
func (s *Service) Create(ctx context.Context, in Input) (*models.FeeStructure, error) {
	structure, err := s.prepare(in)
	if err != nil {
		return nil, err
	}

	structure.ID = uuid.NewString()
	structure.IsActive = true
	if in.IsActive != nil {
		structure.IsActive = *in.IsActive
	}
	now := s.now().UTC()
	structure.CreatedAt = now
	structure.UpdatedAt = now

	if err := s.store.Create(ctx, &structure); err != nil {
		return nil, fmt.Errorf("failed to create fee structure: %w", err)
	}

	s.logger.Info("fee structure created",
		zap.String("fee_structure_id", structure.ID),
		zap.String("name", structure.Name),
		zap.Int("rules", len(structure.Rules)))
	return &structure, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.FeeStructure, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter repositories.FeeStructureFilter, limit, offset int) (Page, error) {
	items, total, err := s.store.List(ctx, filter, limit, offset)
	if err != nil {
		return Page{}, fmt.Errorf("failed to list fee structures: %w", err)
	}
	if items == nil {
		items = []models.FeeStructure{}
	}
	return Page{Items: items, Total: total}, nil
}

// Update replaces the content of an existing structure. Merchants already
// assigned to it see the new rules on their next quote.
func (s *Service) Update(ctx context.Context, id string, in Input) (*models.FeeStructure, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	structure, err := s.prepare(in)
	if err != nil {
		return nil, err
	}
	structure.ID = existing.ID
	structure.CreatedAt = existing.CreatedAt
	structure.UpdatedAt = s.now().UTC()
	structure.IsActive = existing.IsActive
	if in.IsActive != nil {
		structure.IsActive = *in.IsActive
	}

	if err := s.store.Update(ctx, &structure); err != nil {
		return nil, fmt.Errorf("failed to update fee structure: %w", err)
	}
	s.invalidate(ctx, id)

	s.logger.Info("fee structure updated", zap.String("fee_structure_id", id))
	return &structure, nil
}

func (s *Service) Activate(ctx context.Context, id string) (*models.FeeStructure, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate blocks new assignments. Merchants already assigned keep the
// structure until they are reassigned.
func (s *Service) Deactivate(ctx context.Context, id string) (*models.FeeStructure, error) {
	return s.setActive(ctx, id, false)
}

func (s *Service) setActive(ctx context.Context, id string, active bool) (*models.FeeStructure, error) {
	if err := s.store.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	s.logger.Info("fee structure status changed",
		zap.String("fee_structure_id", id),
		zap.Bool("is_active", active))
	return s.store.GetByID(ctx, id)
}

func (s *Service) prepare(in Input) (models.FeeStructure, error) {
	draft := in.Draft()
	if res := validation.ValidateFeeStructure(draft); !res.Valid {
		return models.FeeStructure{}, apperr.NewValidationError(res.Errors)
	}
	if draft.Currency == "" {
		draft.Currency = DefaultCurrency
	}
	return draft.Normalized(), nil
}

func (s *Service) invalidate(ctx context.Context, structureID string) {
	ids, err := s.merchants.MerchantIDsByStructure(ctx, structureID)
	if err != nil {
		s.logger.Warn("failed to look up merchants for cache invalidation",
			zap.String("fee_structure_id", structureID),
			zap.Error(err))
		return
	}
	if len(ids) == 0 {
		return
	}
	if err := s.cache.InvalidateMerchants(ctx, ids...); err != nil {
		s.logger.Warn("failed to invalidate effective structure cache",
			zap.String("fee_structure_id", structureID),
			zap.Int("merchants", len(ids)),
			zap.Error(err))
	}
}
