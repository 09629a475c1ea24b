// Package assignment links merchants to fee structures and resolves the
// structure that currently applies to a merchant.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperr "acquiring/internal/errors"
	"acquiring/internal/events"
	"acquiring/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	structures  StructureReader
	assignments Store
	cache       Cache
	publisher   events.Publisher
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	structures StructureReader,
	assignments Store,
	cache Cache,
	publisher events.Publisher,
	logger *zap.Logger,
) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{
		structures:  structures,
		assignments: assignments,
		cache:       cache,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// Assign records a new assignment of structureID to merchantID. Earlier
// assignments are kept as history.
func (s *Service) Assign(ctx context.Context, structureID, merchantID, assignedBy string) (*models.MerchantFeeAssignment, error) {
	merchantID = strings.TrimSpace(merchantID)
	if merchantID == "" {
		return nil, apperr.ErrMerchantRequired
	}

	structure, err := s.structures.GetByID(ctx, structureID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrStructureNotFound, structureID)
		}
		return nil, fmt.Errorf("failed to load fee structure: %w", err)
	}
	if !structure.IsActive {
		return nil, fmt.Errorf("%w: %s", apperr.ErrStructureInactive, structureID)
	}

	assignment := &models.MerchantFeeAssignment{
		ID:             uuid.NewString(),
		MerchantID:     merchantID,
		FeeStructureID: structure.ID,
		AssignedBy:     assignedBy,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	if err := s.cache.InvalidateMerchants(ctx, merchantID); err != nil {
		s.logger.Warn("failed to invalidate effective structure cache",
			zap.String("merchant_id", merchantID),
			zap.Error(err))
	}

	event := &events.AssignmentEvent{
		AssignmentID:   assignment.ID,
		MerchantID:     assignment.MerchantID,
		FeeStructureID: assignment.FeeStructureID,
		AssignedBy:     assignment.AssignedBy,
		AssignedAt:     assignment.CreatedAt,
	}
	if err := s.publisher.PublishAssignment(ctx, event); err != nil {
		s.logger.Warn("failed to publish assignment event",
			zap.String("merchant_id", merchantID),
			zap.Error(err))
	}

	s.logger.Info("fee structure assigned",
		zap.String("merchant_id", merchantID),
		zap.String("fee_structure_id", structure.ID),
		zap.String("assigned_by", assignedBy))

	return assignment, nil
}

// EffectiveStructure returns the structure currently applying to the
// merchant, or ErrNoAssignment.
func (s *Service) EffectiveStructure(ctx context.Context, merchantID string) (*models.FeeStructure, error) {
	cached, err := s.cache.GetEffectiveStructure(ctx, merchantID)
	if err != nil {
		s.logger.Warn("effective structure cache read failed",
			zap.String("merchant_id", merchantID),
			zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	// Read before the history so a write committed after this point leaves
	// the entry below under a stale generation.
	generation, genErr := s.cache.EffectiveGeneration(ctx, merchantID)
	if genErr != nil {
		s.logger.Warn("effective structure cache generation read failed",
			zap.String("merchant_id", merchantID),
			zap.Error(genErr))
	}

	history, err := s.assignments.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	effective, ok := ResolveEffective(merchantID, history)
	if !ok {
		return nil, apperr.ErrNoAssignment
	}

	structure, err := s.structures.GetByID(ctx, effective.FeeStructureID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrStructureNotFound, effective.FeeStructureID)
		}
		return nil, fmt.Errorf("failed to load fee structure: %w", err)
	}

	if genErr != nil {
		return structure, nil
	}
	if err := s.cache.CacheEffectiveStructure(ctx, merchantID, generation, structure); err != nil {
		s.logger.Warn("failed to cache effective structure",
			zap.String("merchant_id", merchantID),
			zap.Error(err))
	}
	return structure, nil
}

// History lists every assignment of the merchant, oldest first.
func (s *Service) History(ctx context.Context, merchantID string) ([]models.MerchantFeeAssignment, error) {
	history, err := s.assignments.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	if history == nil {
		history = []models.MerchantFeeAssignment{}
	}
	return history, nil
}
