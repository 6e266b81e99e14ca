package repositories

import (
	"errors"
	"fmt"

	"dealership-backend/apperrors"
	"dealership-backend/db/models"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	CreateDocument(doc *models.MediaDocument) (*models.MediaDocument, error)
	GetDocumentByID(id string) (*models.MediaDocument, error)
	GetDocumentsByOwner(ownerType models.OwnerEntity, ownerID string) ([]models.MediaDocument, error)
	DeleteDocument(id string) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) CreateDocument(doc *models.MediaDocument) (*models.MediaDocument, error) {
	if err := r.db.Create(doc).Error; err != nil {
		return nil, fmt.Errorf("failed to create document record: %w", err)
	}
	return doc, nil
}

func (r *documentRepository) GetDocumentByID(id string) (*models.MediaDocument, error) {
	var doc models.MediaDocument
	err := r.db.Where("id = ?", id).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("document %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) GetDocumentsByOwner(ownerType models.OwnerEntity, ownerID string) ([]models.MediaDocument, error) {
	var docs []models.MediaDocument
	err := r.db.Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for %s %s: %w", ownerType, ownerID, err)
	}
	return docs, nil
}

func (r *documentRepository) DeleteDocument(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.MediaDocument{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("document %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
