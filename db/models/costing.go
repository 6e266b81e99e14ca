package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InternalCosting is the dealer-internal profit/loss sheet for a lead.
// At most one costing record exists per lead.
//
// The five "cost adder" fields increase what the vehicle costs the
// dealer; the nine "earnings/support" fields are OEM and ancillary
// income that offsets it. All derived fields are recomputed server-side
// on every create and update; values supplied by the client for them
// are ignored.
type InternalCosting struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	LeadID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"lead_id"`

	// Base price
	ExShowroomOemTp Amount `json:"ex_showroom_oem_tp"`

	// Cost adders
	RtoRegistrationCost   Amount `json:"rto_registration_cost"`
	InsuranceCost         Amount `json:"insurance_cost"`
	AccessoriesCost       Amount `json:"accessories_cost"`
	HandlingLogisticsCost Amount `json:"handling_logistics_cost"`
	ExtendedWarrantyCost  Amount `json:"extended_warranty_cost"`

	// Earnings / support
	DealerMargin             Amount `json:"dealer_margin"`
	OemSchemeSupport         Amount `json:"oem_scheme_support"`
	ExchangeLoyaltySupport   Amount `json:"exchange_loyalty_support"`
	CorporateDiscountSupport Amount `json:"corporate_discount_support"`
	InsurancePayout          Amount `json:"insurance_payout"`
	FinancePayout            Amount `json:"finance_payout"`
	AccessoriesMargin        Amount `json:"accessories_margin"`
	VolumeIncentive          Amount `json:"volume_incentive"`
	WarrantyMargin           Amount `json:"warranty_margin"`

	CustomerQuotedPrice Amount `json:"customer_quoted_price"`

	// Derived fields, never trusted from client input
	AddersSubtotal         Amount `json:"adders_subtotal"`
	EarningsSubtotal       Amount `json:"earnings_subtotal"`
	BaseVehicleCost        Amount `json:"base_vehicle_cost"`
	NetDealerCost          Amount `json:"net_dealer_cost"`
	DealerProfitPerVehicle Amount `json:"dealer_profit_per_vehicle"`

	Lead *Lead `gorm:"foreignKey:LeadID" json:"lead,omitempty"`

	// Audit fields
	CreatedBy string         `json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *InternalCosting) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
