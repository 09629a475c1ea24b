package feestructure

import (
	"context"

	"acquiring/internal/models"
	"acquiring/internal/repositories"
)

// Store is the subset of the fee structure repository the service uses.
type Store interface {
	Create(ctx context.Context, s *models.FeeStructure) error
	GetByID(ctx context.Context, id string) (*models.FeeStructure, error)
	List(ctx context.Context, filter repositories.FeeStructureFilter, limit, offset int) ([]models.FeeStructure, int64, error)
	Update(ctx context.Context, s *models.FeeStructure) error
	SetActive(ctx context.Context, id string, active bool) error
}

// MerchantIndex finds merchants that were ever assigned a structure.
type MerchantIndex interface {
	MerchantIDsByStructure(ctx context.Context, structureID string) ([]string, error)
}

// Invalidator drops cached effective structures.
type Invalidator interface {
	InvalidateMerchants(ctx context.Context, merchantIDs ...string) error
}
