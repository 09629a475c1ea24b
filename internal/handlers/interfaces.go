package handlers

import (
	"context"

	"acquiring/internal/models"
	"acquiring/internal/repositories"
	"acquiring/internal/services/feestructure"
	"acquiring/internal/services/quote"
	"acquiring/internal/validation"
)

type FeeStructureService interface {
	Validate(in feestructure.Input) validation.Result
	Create(ctx context.Context, in feestructure.Input) (*models.FeeStructure, error)
	Get(ctx context.Context, id string) (*models.FeeStructure, error)
	List(ctx context.Context, filter repositories.FeeStructureFilter, limit, offset int) (feestructure.Page, error)
	Update(ctx context.Context, id string, in feestructure.Input) (*models.FeeStructure, error)
	Activate(ctx context.Context, id string) (*models.FeeStructure, error)
	Deactivate(ctx context.Context, id string) (*models.FeeStructure, error)
}

type AssignmentService interface {
	Assign(ctx context.Context, structureID, merchantID, assignedBy string) (*models.MerchantFeeAssignment, error)
	EffectiveStructure(ctx context.Context, merchantID string) (*models.FeeStructure, error)
	History(ctx context.Context, merchantID string) ([]models.MerchantFeeAssignment, error)
}

type PricingService interface {
	Upsert(ctx context.Context, in validation.PricingPlanInput) (*models.PricingPlan, error)
	Get(ctx context.Context, merchantID string) (*models.PricingPlan, error)
}

type QuoteService interface {
	Quote(ctx context.Context, req quote.Request) (*models.FeeQuote, error)
	List(ctx context.Context, merchantID string, limit, offset int) ([]models.FeeQuote, int64, error)
}
