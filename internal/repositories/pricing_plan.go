package repositories

import (
	"context"

	"acquiring/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PricingPlanRepository interface {
	// Upsert replaces the merchant's current plan, including its id.
	Upsert(ctx context.Context, plan *models.PricingPlan) error
	GetByMerchant(ctx context.Context, merchantID string) (*models.PricingPlan, error)
}

type pricingPlanRepository struct {
	db *gorm.DB
}

func NewPricingPlanRepository(db *gorm.DB) PricingPlanRepository {
	return &pricingPlanRepository{db: db}
}

func (r *pricingPlanRepository) Upsert(ctx context.Context, plan *models.PricingPlan) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "merchant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"id", "mdr", "fixed_fee", "currencies", "effective_start_date", "created_at", "updated_at",
		}),
	}).Create(plan).Error
}

func (r *pricingPlanRepository) GetByMerchant(ctx context.Context, merchantID string) (*models.PricingPlan, error) {
	var plan models.PricingPlan
	if err := r.db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&plan).Error; err != nil {
		return nil, notFound(err)
	}
	return &plan, nil
}
