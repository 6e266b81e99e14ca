package requests

import (
	"dealership-backend/db/models"
)

// CostingRequest is the client payload for creating or updating an
// internal costing sheet. Every money field is a pointer so a partial
// update can be told apart from an explicit zero: nil means "leave the
// persisted value alone", a present value (including junk, which Amount
// decodes as zero) overwrites it.
type CostingRequest struct {
	LeadID string `json:"lead_id"`

	ExShowroomOemTp *models.Amount `json:"ex_showroom_oem_tp"`

	RtoRegistrationCost   *models.Amount `json:"rto_registration_cost"`
	InsuranceCost         *models.Amount `json:"insurance_cost"`
	AccessoriesCost       *models.Amount `json:"accessories_cost"`
	HandlingLogisticsCost *models.Amount `json:"handling_logistics_cost"`
	ExtendedWarrantyCost  *models.Amount `json:"extended_warranty_cost"`

	DealerMargin             *models.Amount `json:"dealer_margin"`
	OemSchemeSupport         *models.Amount `json:"oem_scheme_support"`
	ExchangeLoyaltySupport   *models.Amount `json:"exchange_loyalty_support"`
	CorporateDiscountSupport *models.Amount `json:"corporate_discount_support"`
	InsurancePayout          *models.Amount `json:"insurance_payout"`
	FinancePayout            *models.Amount `json:"finance_payout"`
	AccessoriesMargin        *models.Amount `json:"accessories_margin"`
	VolumeIncentive          *models.Amount `json:"volume_incentive"`
	WarrantyMargin           *models.Amount `json:"warranty_margin"`

	CustomerQuotedPrice *models.Amount `json:"customer_quoted_price"`
}

// ApplyTo merges the supplied fields over an existing record. The
// caller recomputes derived fields afterwards.
func (r *CostingRequest) ApplyTo(c *models.InternalCosting) {
	set := func(dst *models.Amount, src *models.Amount) {
		if src != nil {
			*dst = *src
		}
	}

	set(&c.ExShowroomOemTp, r.ExShowroomOemTp)

	set(&c.RtoRegistrationCost, r.RtoRegistrationCost)
	set(&c.InsuranceCost, r.InsuranceCost)
	set(&c.AccessoriesCost, r.AccessoriesCost)
	set(&c.HandlingLogisticsCost, r.HandlingLogisticsCost)
	set(&c.ExtendedWarrantyCost, r.ExtendedWarrantyCost)

	set(&c.DealerMargin, r.DealerMargin)
	set(&c.OemSchemeSupport, r.OemSchemeSupport)
	set(&c.ExchangeLoyaltySupport, r.ExchangeLoyaltySupport)
	set(&c.CorporateDiscountSupport, r.CorporateDiscountSupport)
	set(&c.InsurancePayout, r.InsurancePayout)
	set(&c.FinancePayout, r.FinancePayout)
	set(&c.AccessoriesMargin, r.AccessoriesMargin)
	set(&c.VolumeIncentive, r.VolumeIncentive)
	set(&c.WarrantyMargin, r.WarrantyMargin)

	set(&c.CustomerQuotedPrice, r.CustomerQuotedPrice)
}
