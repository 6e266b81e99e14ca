package services

import (
	"testing"

	"dealership-backend/db/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeDerivedNetCost(t *testing.T) {
	c := models.InternalCosting{
		ExShowroomOemTp:       models.AmountFromInt(750000),
		RtoRegistrationCost:   models.AmountFromInt(45000),
		InsuranceCost:         models.AmountFromInt(28000),
		AccessoriesCost:       models.AmountFromInt(12000),
		HandlingLogisticsCost: models.AmountFromInt(5000),
		ExtendedWarrantyCost:  models.AmountFromInt(8000),

		DealerMargin:     models.AmountFromInt(40000),
		OemSchemeSupport: models.AmountFromInt(15000),
		InsurancePayout:  models.AmountFromInt(4000),
		FinancePayout:    models.AmountFromInt(6000),

		CustomerQuotedPrice: models.AmountFromInt(820000),
	}

	d := ComputeDerived(c)

	assert.Equal(t, "98000", d.AddersSubtotal.String())
	assert.Equal(t, "65000", d.EarningsSubtotal.String())
	assert.Equal(t, "750000", d.BaseVehicleCost.String())
	// 750000 + 98000 - 65000
	assert.Equal(t, "783000", d.NetDealerCost.String())
	// 820000 - 783000
	assert.Equal(t, "37000", d.DealerProfitPerVehicle.String())
}

func TestComputeDerivedIdentity(t *testing.T) {
	c := models.InternalCosting{
		ExShowroomOemTp:     models.AmountFromInt(750000),
		DealerMargin:        models.AmountFromInt(20000),
		CustomerQuotedPrice: models.AmountFromInt(800000),
	}

	d := ComputeDerived(c)

	// net = base + adders - earnings must hold field by field.
	want := d.BaseVehicleCost.Add(d.AddersSubtotal).Sub(d.EarningsSubtotal)
	assert.True(t, d.NetDealerCost.Equal(want.Decimal))
	assert.Equal(t, "730000", d.NetDealerCost.String())
	assert.Equal(t, "70000", d.DealerProfitPerVehicle.String())
}

func TestComputeDerivedNegativeProfit(t *testing.T) {
	c := models.InternalCosting{
		ExShowroomOemTp:     models.AmountFromInt(750000),
		CustomerQuotedPrice: models.AmountFromInt(700000),
	}

	d := ComputeDerived(c)

	assert.Equal(t, "-50000", d.DealerProfitPerVehicle.String())
}

func TestComputeDerivedZeroInputs(t *testing.T) {
	d := ComputeDerived(models.InternalCosting{})

	assert.True(t, d.AddersSubtotal.IsZero())
	assert.True(t, d.EarningsSubtotal.IsZero())
	assert.True(t, d.NetDealerCost.IsZero())
	assert.True(t, d.DealerProfitPerVehicle.IsZero())
}

func TestComputeDerivedIsPure(t *testing.T) {
	c := models.InternalCosting{
		ExShowroomOemTp:     models.AmountFromInt(500000),
		RtoRegistrationCost: models.AmountFromInt(30000),
	}

	_ = ComputeDerived(c)

	// Derived fields on the input stay untouched until ApplyDerived.
	assert.True(t, c.NetDealerCost.IsZero())
	assert.True(t, c.AddersSubtotal.IsZero())
}

func TestApplyDerivedOverwritesClientValues(t *testing.T) {
	c := models.InternalCosting{
		ExShowroomOemTp:     models.AmountFromInt(600000),
		CustomerQuotedPrice: models.AmountFromInt(650000),

		// Junk the client tried to smuggle in.
		NetDealerCost:          models.AmountFromInt(1),
		DealerProfitPerVehicle: models.AmountFromInt(999999),
	}

	ApplyDerived(&c)

	assert.Equal(t, "600000", c.NetDealerCost.String())
	assert.Equal(t, "50000", c.DealerProfitPerVehicle.String())
}
