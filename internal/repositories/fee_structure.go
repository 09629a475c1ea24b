package repositories

import (
	"context"
	"fmt"

	apperr "acquiring/internal/errors"
	"acquiring/internal/models"

	"gorm.io/gorm"
)

// FeeStructureFilter narrows List results. A nil Active lists everything.
type FeeStructureFilter struct {
	Active *bool
}

type FeeStructureRepository interface {
	Create(ctx context.Context, s *models.FeeStructure) error
	GetByID(ctx context.Context, id string) (*models.FeeStructure, error)
	GetByName(ctx context.Context, name string) (*models.FeeStructure, error)
	List(ctx context.Context, filter FeeStructureFilter, limit, offset int) ([]models.FeeStructure, int64, error)
	Update(ctx context.Context, s *models.FeeStructure) error
	SetActive(ctx context.Context, id string, active bool) error
}

type feeStructureRepository struct {
	db *gorm.DB
}

func NewFeeStructureRepository(db *gorm.DB) FeeStructureRepository {
	return &feeStructureRepository{db: db}
}

func (r *feeStructureRepository) Create(ctx context.Context, s *models.FeeStructure) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *feeStructureRepository) GetByID(ctx context.Context, id string) (*models.FeeStructure, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var s models.FeeStructure
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *feeStructureRepository) GetByName(ctx context.Context, name string) (*models.FeeStructure, error) {
	var s models.FeeStructure
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *feeStructureRepository) List(ctx context.Context, filter FeeStructureFilter, limit, offset int) ([]models.FeeStructure, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.FeeStructure{})
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []models.FeeStructure
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *feeStructureRepository) Update(ctx context.Context, s *models.FeeStructure) error {
	if s.ID == "" {
		return fmt.Errorf("cannot update fee structure without id")
	}
	if err := checkID(s.ID); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.FeeStructure{}).Where("id = ?", s.ID).
		Select("name", "description", "currency", "is_active", "is_volume_based", "rules", "volume_tiers", "updated_at").
		Updates(s)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *feeStructureRepository) SetActive(ctx context.Context, id string, active bool) error {
	if err := checkID(id); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.FeeStructure{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
