package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingRequested BookingStatus = "requested"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type ServiceType string

const (
	ServicePeriodic   ServiceType = "periodic"
	ServiceRepair     ServiceType = "repair"
	ServiceBodywork   ServiceType = "bodywork"
	ServiceInspection ServiceType = "inspection"
)

// ServiceBooking is a workshop appointment request.
type ServiceBooking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	CustomerName string  `gorm:"not null" json:"customer_name"`
	Phone        string  `gorm:"not null;index" json:"phone"`
	Email        *string `json:"email"`

	VehicleRegNo string      `gorm:"type:varchar(20);not null;index" json:"vehicle_reg_no"`
	ModelName    string      `gorm:"type:varchar(120)" json:"model_name"`
	ServiceType  ServiceType `gorm:"type:varchar(20);not null" json:"service_type"`
	Notes        *string     `gorm:"type:text" json:"notes"`

	PreferredDate time.Time `gorm:"not null;index" json:"preferred_date"`
	PreferredSlot string    `gorm:"type:varchar(20)" json:"preferred_slot"`

	Status BookingStatus `gorm:"type:varchar(20);default:'requested';index" json:"status"`

	// Audit fields
	CreatedBy string         `json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *ServiceBooking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
