package repositories

import (
	"errors"
	"fmt"
	"strings"

	"dealership-backend/apperrors"
	"dealership-backend/db/models"

	"gorm.io/gorm"
)

type LeadRepository interface {
	CreateLead(lead *models.Lead) (*models.Lead, error)
	GetLeadByID(id string) (*models.Lead, error)
	UpdateLead(lead *models.Lead) (*models.Lead, error)
	GetFilteredLeads(pageSize int, offset int, filters map[string]string) ([]models.Lead, int64, error)
	GetAllLeadsFiltered(filters map[string]string) ([]models.Lead, error)
	CountByStage() (map[models.LeadStage]int64, error)
	// LeadIDsStuckAtC2 returns leads still at C2 that already have a
	// costing record: the reconciliation sweep's worklist.
	LeadIDsStuckAtC2() ([]string, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) CreateLead(lead *models.Lead) (*models.Lead, error) {
	if err := r.db.Create(lead).Error; err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

func (r *leadRepository) GetLeadByID(id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.Preload("Product").Where("id = ?", id).First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lead %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) UpdateLead(lead *models.Lead) (*models.Lead, error) {
	if err := r.db.Save(lead).Error; err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return lead, nil
}

func applyLeadFilters(query *gorm.DB, filters map[string]string) *gorm.DB {
	if status, ok := filters["status"]; ok && status != "" {
		query = query.Where("status = ?", status)
	}
	if assignee, ok := filters["assignee_id"]; ok && assignee != "" {
		query = query.Where("assignee_id = ?", assignee)
	}
	if model, ok := filters["model_name"]; ok && model != "" {
		query = query.Where("LOWER(model_name) = ?", strings.ToLower(model))
	}
	if phone, ok := filters["phone"]; ok && phone != "" {
		query = query.Where("phone = ?", phone)
	}
	if q, ok := filters["q"]; ok && q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(customer_name) LIKE ? OR phone LIKE ?", like, like)
	}
	return query
}

func (r *leadRepository) GetFilteredLeads(pageSize int, offset int, filters map[string]string) ([]models.Lead, int64, error) {
	query := applyLeadFilters(r.db.Model(&models.Lead{}), filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []models.Lead
	err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&leads).Error
	return leads, total, err
}

// GetAllLeadsFiltered is the export path: same filters, no paging.
func (r *leadRepository) GetAllLeadsFiltered(filters map[string]string) ([]models.Lead, error) {
	var leads []models.Lead
	err := applyLeadFilters(r.db.Model(&models.Lead{}), filters).
		Order("created_at DESC").Find(&leads).Error
	return leads, err
}

func (r *leadRepository) CountByStage() (map[models.LeadStage]int64, error) {
	type row struct {
		Status models.LeadStage
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Lead{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.LeadStage]int64, len(rows))
	for _, rr := range rows {
		counts[rr.Status] = rr.Count
	}
	return counts, nil
}

func (r *leadRepository) LeadIDsStuckAtC2() ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Lead{}).
		Joins("JOIN internal_costings ON internal_costings.lead_id = leads.id AND internal_costings.deleted_at IS NULL").
		Where("leads.status = ?", models.StageC2).
		Pluck("leads.id", &ids).Error
	return ids, err
}
