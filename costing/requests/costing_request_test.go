package requests

import (
	"testing"

	costing_services "dealership-backend/costing/services"
	"dealership-backend/db/models"

	"github.com/stretchr/testify/assert"
)

func amountPtr(n int64) *models.Amount {
	a := models.AmountFromInt(n)
	return &a
}

func TestApplyTo_MergesOnlySuppliedFields(t *testing.T) {
	existing := models.InternalCosting{
		ExShowroomOemTp:     models.AmountFromInt(750000),
		InsuranceCost:       models.AmountFromInt(28000),
		DealerMargin:        models.AmountFromInt(20000),
		CustomerQuotedPrice: models.AmountFromInt(800000),
	}
	costing_services.ApplyDerived(&existing)
	assert.Equal(t, "758000", existing.NetDealerCost.String())

	req := CostingRequest{
		InsuranceCost:       amountPtr(30000),
		CustomerQuotedPrice: amountPtr(820000),
	}
	req.ApplyTo(&existing)

	// Supplied fields overwrite, absent fields survive.
	assert.Equal(t, "30000", existing.InsuranceCost.String())
	assert.Equal(t, "820000", existing.CustomerQuotedPrice.String())
	assert.Equal(t, "750000", existing.ExShowroomOemTp.String())
	assert.Equal(t, "20000", existing.DealerMargin.String())
}

func TestApplyTo_ExplicitZeroOverwrites(t *testing.T) {
	existing := models.InternalCosting{
		DealerMargin: models.AmountFromInt(20000),
	}

	req := CostingRequest{DealerMargin: amountPtr(0)}
	req.ApplyTo(&existing)

	assert.True(t, existing.DealerMargin.IsZero())
}

func TestApplyTo_RecomputeAfterMerge(t *testing.T) {
	existing := models.InternalCosting{
		ExShowroomOemTp:     models.AmountFromInt(750000),
		DealerMargin:        models.AmountFromInt(20000),
		CustomerQuotedPrice: models.AmountFromInt(800000),
	}
	costing_services.ApplyDerived(&existing)
	assert.Equal(t, "730000", existing.NetDealerCost.String())
	assert.Equal(t, "70000", existing.DealerProfitPerVehicle.String())

	// Partial update: quoted price moves, everything else stays.
	req := CostingRequest{CustomerQuotedPrice: amountPtr(790000)}
	req.ApplyTo(&existing)
	costing_services.ApplyDerived(&existing)

	// net = base + adders - earnings must hold after the merge too.
	want := existing.BaseVehicleCost.
		Add(existing.AddersSubtotal).
		Sub(existing.EarningsSubtotal)
	assert.True(t, existing.NetDealerCost.Equal(want.Decimal))
	assert.Equal(t, "730000", existing.NetDealerCost.String())
	assert.Equal(t, "60000", existing.DealerProfitPerVehicle.String())
}
