package repositories

import (
	"errors"
	"fmt"

	"dealership-backend/apperrors"
	"dealership-backend/db/models"

	"gorm.io/gorm"
)

type CostingRepository interface {
	CreateCosting(costing *models.InternalCosting) (*models.InternalCosting, error)
	GetCostingByID(id string) (*models.InternalCosting, error)
	GetCostingByLeadID(leadID string) (*models.InternalCosting, error)
	UpdateCosting(costing *models.InternalCosting) (*models.InternalCosting, error)
}

type costingRepository struct {
	db *gorm.DB
}

func NewCostingRepository(db *gorm.DB) CostingRepository {
	return &costingRepository{db: db}
}

func (r *costingRepository) CreateCosting(costing *models.InternalCosting) (*models.InternalCosting, error) {
	// One costing sheet per lead; a second create is a conflict, the
	// client should PUT the existing record instead.
	var count int64
	if err := r.db.Model(&models.InternalCosting{}).
		Where("lead_id = ?", costing.LeadID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check for existing costing: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("costing already exists for lead %s: %w", costing.LeadID, apperrors.ErrConflict)
	}

	if err := r.db.Create(costing).Error; err != nil {
		return nil, fmt.Errorf("failed to create costing: %w", err)
	}
	return costing, nil
}

func (r *costingRepository) GetCostingByID(id string) (*models.InternalCosting, error) {
	var costing models.InternalCosting
	err := r.db.Where("id = ?", id).First(&costing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("costing %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &costing, nil
}

func (r *costingRepository) GetCostingByLeadID(leadID string) (*models.InternalCosting, error) {
	var costing models.InternalCosting
	err := r.db.Where("lead_id = ?", leadID).First(&costing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("costing for lead %s: %w", leadID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &costing, nil
}

func (r *costingRepository) UpdateCosting(costing *models.InternalCosting) (*models.InternalCosting, error) {
	if err := r.db.Save(costing).Error; err != nil {
		return nil, fmt.Errorf("failed to update costing: %w", err)
	}
	return costing, nil
}
