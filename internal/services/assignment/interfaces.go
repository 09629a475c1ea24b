package assignment

import (
	"context"

	"acquiring/internal/models"
)

// StructureReader looks up fee structures by id.
type StructureReader interface {
	GetByID(ctx context.Context, id string) (*models.FeeStructure, error)
}

// Store persists the append-only assignment history.
type Store interface {
	Create(ctx context.Context, a *models.MerchantFeeAssignment) error
	ListByMerchant(ctx context.Context, merchantID string) ([]models.MerchantFeeAssignment, error)
}

// Cache holds the resolved effective structure per merchant. Every
// invalidation bumps the merchant's generation; an entry stored under an
// older generation is never returned.
type Cache interface {
	EffectiveGeneration(ctx context.Context, merchantID string) (int64, error)
	GetEffectiveStructure(ctx context.Context, merchantID string) (*models.FeeStructure, error)
	CacheEffectiveStructure(ctx context.Context, merchantID string, generation int64, structure *models.FeeStructure) error
	InvalidateMerchants(ctx context.Context, merchantIDs ...string) error
}
