package repositories

import (
	"errors"
	"fmt"

	"dealership-backend/apperrors"
	"dealership-backend/db/models"

	"gorm.io/gorm"
)

// EnquiryRepository persists the legacy enquiry surface. Old clients
// still submit and list these; promotion into the lead pipeline goes
// through the lead lifecycle.
type EnquiryRepository interface {
	CreateEnquiry(enquiry *models.Enquiry) (*models.Enquiry, error)
	GetEnquiryByID(id string) (*models.Enquiry, error)
	GetEnquiriesByStatus(status models.LegacyStatus) ([]models.Enquiry, error)
	UpdateEnquiry(enquiry *models.Enquiry) (*models.Enquiry, error)
}

type enquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (r *enquiryRepository) CreateEnquiry(enquiry *models.Enquiry) (*models.Enquiry, error) {
	if err := r.db.Create(enquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}
	return enquiry, nil
}

func (r *enquiryRepository) GetEnquiryByID(id string) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := r.db.Where("id = ?", id).First(&enquiry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("enquiry %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

func (r *enquiryRepository) GetEnquiriesByStatus(status models.LegacyStatus) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&enquiries).Error
	return enquiries, err
}

func (r *enquiryRepository) UpdateEnquiry(enquiry *models.Enquiry) (*models.Enquiry, error) {
	if err := r.db.Save(enquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to update enquiry: %w", err)
	}
	return enquiry, nil
}
