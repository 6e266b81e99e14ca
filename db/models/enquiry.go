package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LegacyStatus is the status enumeration used by the older enquiry
// representation. It is not a second source of truth: C0-C3 is the
// canonical pipeline, and legacy rows are mapped at import time via
// LegacyStatusToStage. The Enquiry model itself is read-only
// compatibility surface for consumers that still list old enquiries.
type LegacyStatus string

const (
	LegacyPending  LegacyStatus = "pending"
	LegacyApproved LegacyStatus = "approved"
	LegacyRejected LegacyStatus = "rejected"
)

// LegacyStatusToStage maps the old triple onto the pipeline. Rejected
// enquiries have no pipeline position; callers get ok=false and should
// skip them.
func LegacyStatusToStage(s LegacyStatus) (LeadStage, bool) {
	switch s {
	case LegacyPending:
		return StageC0, true
	case LegacyApproved:
		return StageC1, true
	default:
		return "", false
	}
}

// Enquiry is the pre-pipeline lead representation.
type Enquiry struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;" json:"id"`
	CustomerName string       `gorm:"not null" json:"customer_name"`
	Phone        string       `gorm:"index" json:"phone"`
	ModelName    string       `gorm:"type:varchar(120)" json:"model_name"`
	Message      *string      `gorm:"type:text" json:"message"`
	Status       LegacyStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Enquiry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
