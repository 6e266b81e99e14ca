package repositories

import (
	"errors"
	"fmt"

	"dealership-backend/apperrors"
	"dealership-backend/db/models"

	"gorm.io/gorm"
)

type QuotationRepository interface {
	CreateQuotation(quotation *models.Quotation) (*models.Quotation, error)
	GetQuotationByID(id string) (*models.Quotation, error)
	GetLatestQuotationByLeadID(leadID string) (*models.Quotation, error)
	ListQuotationsByLeadID(leadID string) ([]models.Quotation, error)
	UpdateQuotation(quotation *models.Quotation) (*models.Quotation, error)
}

type quotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) CreateQuotation(quotation *models.Quotation) (*models.Quotation, error) {
	if err := r.db.Create(quotation).Error; err != nil {
		return nil, fmt.Errorf("failed to create quotation: %w", err)
	}
	return quotation, nil
}

func (r *quotationRepository) GetQuotationByID(id string) (*models.Quotation, error) {
	var quotation models.Quotation
	err := r.db.Preload("Lead").Where("id = ?", id).First(&quotation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("quotation %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

// GetLatestQuotationByLeadID returns the most recent quotation for a
// lead. Reporting treats this one as authoritative when a lead has
// several.
func (r *quotationRepository) GetLatestQuotationByLeadID(leadID string) (*models.Quotation, error) {
	var quotation models.Quotation
	err := r.db.Where("lead_id = ?", leadID).
		Order("created_at DESC").
		First(&quotation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("quotation for lead %s: %w", leadID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *quotationRepository) ListQuotationsByLeadID(leadID string) ([]models.Quotation, error) {
	var quotations []models.Quotation
	err := r.db.Where("lead_id = ?", leadID).
		Order("created_at DESC").
		Find(&quotations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations for lead %s: %w", leadID, err)
	}
	return quotations, nil
}

func (r *quotationRepository) UpdateQuotation(quotation *models.Quotation) (*models.Quotation, error) {
	if err := r.db.Save(quotation).Error; err != nil {
		return nil, fmt.Errorf("failed to update quotation: %w", err)
	}
	return quotation, nil
}
