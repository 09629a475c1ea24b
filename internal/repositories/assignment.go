package repositories

import (
	"context"

	"acquiring/internal/models"

	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(ctx context.Context, a *models.MerchantFeeAssignment) error
	// ListByMerchant returns the merchant's assignment history, oldest first.
	ListByMerchant(ctx context.Context, merchantID string) ([]models.MerchantFeeAssignment, error)
	MerchantIDsByStructure(ctx context.Context, structureID string) ([]string, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, a *models.MerchantFeeAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assignmentRepository) ListByMerchant(ctx context.Context, merchantID string) ([]models.MerchantFeeAssignment, error) {
	var out []models.MerchantFeeAssignment
	err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *assignmentRepository) MerchantIDsByStructure(ctx context.Context, structureID string) ([]string, error) {
	if checkID(structureID) != nil {
		return nil, nil
	}
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.MerchantFeeAssignment{}).
		Where("fee_structure_id = ?", structureID).
		Distinct().
		Pluck("merchant_id", &ids).Error
	return ids, err
}
