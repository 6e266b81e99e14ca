package services

import (
	"dealership-backend/db/models"
)

// DerivedFields is the output of the costing computation. Profit can be
// negative: a loss-making quote is a valid, surfaced business state,
// not an error.
type DerivedFields struct {
	AddersSubtotal         models.Amount
	EarningsSubtotal       models.Amount
	BaseVehicleCost        models.Amount
	NetDealerCost          models.Amount
	DealerProfitPerVehicle models.Amount
}

// ComputeDerived computes the derived financial fields from a costing
// record's inputs. Pure and deterministic: no I/O, no side effects.
// Absent or malformed inputs have already been coerced to zero by
// Amount decoding, so sums can never pick up a non-finite value.
func ComputeDerived(c models.InternalCosting) DerivedFields {
	adders := c.RtoRegistrationCost.
		Add(c.InsuranceCost).
		Add(c.AccessoriesCost).
		Add(c.HandlingLogisticsCost).
		Add(c.ExtendedWarrantyCost)

	earnings := c.DealerMargin.
		Add(c.OemSchemeSupport).
		Add(c.ExchangeLoyaltySupport).
		Add(c.CorporateDiscountSupport).
		Add(c.InsurancePayout).
		Add(c.FinancePayout).
		Add(c.AccessoriesMargin).
		Add(c.VolumeIncentive).
		Add(c.WarrantyMargin)

	base := c.ExShowroomOemTp
	net := base.Add(adders).Sub(earnings)

	return DerivedFields{
		AddersSubtotal:         adders,
		EarningsSubtotal:       earnings,
		BaseVehicleCost:        base,
		NetDealerCost:          net,
		DealerProfitPerVehicle: c.CustomerQuotedPrice.Sub(net),
	}
}

// ApplyDerived recomputes and writes the derived fields onto the
// record. Called on every create and every update, full or partial;
// whatever the client sent for these fields is discarded.
func ApplyDerived(c *models.InternalCosting) {
	d := ComputeDerived(*c)
	c.AddersSubtotal = d.AddersSubtotal
	c.EarningsSubtotal = d.EarningsSubtotal
	c.BaseVehicleCost = d.BaseVehicleCost
	c.NetDealerCost = d.NetDealerCost
	c.DealerProfitPerVehicle = d.DealerProfitPerVehicle
}
