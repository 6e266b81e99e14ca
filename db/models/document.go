package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaKind string

const (
	MediaKYC      MediaKind = "kyc"
	MediaPhoto    MediaKind = "photo"
	MediaBrochure MediaKind = "brochure"
)

// OwnerEntity names the record type a media document is attached to.
type OwnerEntity string

const (
	OwnerLead    OwnerEntity = "lead"
	OwnerProduct OwnerEntity = "product"
	OwnerBooking OwnerEntity = "booking"
	OwnerUser    OwnerEntity = "user"
)

// MediaDocument is uploaded file metadata. The stored path is whatever
// the file store returned, kept verbatim.
type MediaDocument struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	OwnerType OwnerEntity `gorm:"type:varchar(20);not null;index:idx_media_owner" json:"owner_type"`
	OwnerID   uuid.UUID   `gorm:"type:uuid;not null;index:idx_media_owner" json:"owner_id"`

	Kind        MediaKind `gorm:"type:varchar(20);not null" json:"kind"`
	FileName    string    `gorm:"not null" json:"file_name"`
	FilePath    string    `gorm:"not null" json:"file_path"`
	FileSize    int64     `json:"file_size"`
	ContentType string    `gorm:"type:varchar(100)" json:"content_type"`

	// Audit fields
	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *MediaDocument) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
