package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quotation is a customer-facing price breakdown for a lead. A lead can
// accumulate several quotations; reporting uses the latest by creation
// time. Totals are supplied by the creator and are NOT recomputed
// server-side.
type Quotation struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	LeadID uuid.UUID `gorm:"type:uuid;not null;index" json:"lead_id"`

	// Customer / vehicle identity
	CustomerName string  `gorm:"not null" json:"customer_name"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email"`
	ModelName    string  `gorm:"type:varchar(120)" json:"model_name"`
	Variant      *string `gorm:"type:varchar(120)" json:"variant"`
	Color        *string `gorm:"type:varchar(60)" json:"color"`

	// Price breakdown
	ExShowroomPrice  Amount `json:"ex_showroom_price"`
	RoadTax          Amount `json:"road_tax"`
	TCSAmount        Amount `json:"tcs_amount"`
	Insurance        Amount `json:"insurance"`
	Accessories      Amount `json:"accessories"`
	ExtendedWarranty Amount `json:"extended_warranty"`
	HandlingCharges  Amount `json:"handling_charges"`

	// Discounts
	ConsumerOffer      Amount `json:"consumer_offer"`
	ExchangeBonus      Amount `json:"exchange_bonus"`
	CorporateDiscount  Amount `json:"corporate_discount"`
	AdditionalDiscount Amount `json:"additional_discount"`
	TotalDiscount      Amount `json:"total_discount"`

	TotalOnRoadPrice Amount `json:"total_on_road_price"`
	NetSellingPrice  Amount `json:"net_selling_price"`

	// Finance terms (optional; a zero loan amount means cash purchase)
	LoanAmount   Amount `json:"loan_amount"`
	DownPayment  Amount `json:"down_payment"`
	InterestRate Amount `json:"interest_rate"`
	TenureMonths int    `json:"tenure_months"`
	EMI          Amount `json:"emi"`

	ValidUntil *time.Time `json:"valid_until"`

	Lead *Lead `gorm:"foreignKey:LeadID" json:"lead,omitempty"`

	// Audit fields
	CreatedBy string         `json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
