package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelCNG      FuelType = "cng"
	FuelElectric FuelType = "electric"
)

// Product is a catalog vehicle the dealership sells.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ModelName string    `gorm:"not null;index" json:"model_name"`
	Variant   *string   `gorm:"type:varchar(120)" json:"variant"`
	FuelType  FuelType  `gorm:"type:varchar(20)" json:"fuel_type"`
	Seating   int       `json:"seating"`

	ExShowroomPrice Amount `json:"ex_showroom_price"`

	Description *string                      `gorm:"type:text" json:"description"`
	ImageURLs   datatypes.JSONSlice[string]  `json:"image_urls"`
	BrochureURL *string                      `json:"brochure_url"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	// Audit fields
	CreatedBy string         `json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
