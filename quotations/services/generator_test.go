package services

import (
	"testing"
	"time"

	"dealership-backend/db/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   models.Amount
		want string
	}{
		{models.AmountFromInt(0), "0"},
		{models.AmountFromInt(999), "999"},
		{models.AmountFromInt(1000), "1,000"},
		{models.AmountFromInt(750000), "750,000"},
		{models.AmountFromInt(1234568), "1,234,568"},
		{models.NewAmount(1234567.89), "1,234,568"}, // rounded, no paise
		{models.AmountFromInt(-45000), "-45,000"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatAmount(tc.in))
	}
}

func sampleQuotation() *models.Quotation {
	return &models.Quotation{
		ID:               uuid.New(),
		LeadID:           uuid.New(),
		CustomerName:     "Ravi Deshmukh",
		Phone:            "9822001122",
		ModelName:        "Altura ZX",
		ExShowroomPrice:  models.AmountFromInt(750000),
		RoadTax:          models.AmountFromInt(60000),
		Insurance:        models.AmountFromInt(28000),
		TotalOnRoadPrice: models.AmountFromInt(838000),
		CreatedAt:        time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildDocData_Basics(t *testing.T) {
	q := sampleQuotation()
	variant := "ZX Plus"
	q.Variant = &variant
	validUntil := time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC)
	q.ValidUntil = &validUntil

	data := BuildDocData(q)

	assert.Equal(t, "Ravi Deshmukh", data.CustomerName)
	assert.Equal(t, "ZX Plus", data.Variant)
	assert.Equal(t, "28/03/2026", data.ValidUntil)
	assert.Equal(t, "750,000", data.ExShowroomPrice)
	assert.Equal(t, "838,000", data.TotalOnRoadPrice)
	assert.Contains(t, data.QuotationNumber, "QTN-2026-")
}

func TestBuildDocData_NoDiscountsNoFinance(t *testing.T) {
	data := BuildDocData(sampleQuotation())

	assert.False(t, data.HasDiscounts)
	assert.Empty(t, data.TotalDiscount)
	assert.False(t, data.HasFinance)
	assert.Empty(t, data.LoanAmount)
}

func TestBuildDocData_DiscountBlock(t *testing.T) {
	q := sampleQuotation()
	q.ConsumerOffer = models.AmountFromInt(10000)
	q.ExchangeBonus = models.AmountFromInt(15000)
	q.TotalDiscount = models.AmountFromInt(25000)
	q.NetSellingPrice = models.AmountFromInt(813000)

	data := BuildDocData(q)

	assert.True(t, data.HasDiscounts)
	assert.Equal(t, "10,000", data.ConsumerOffer)
	assert.Equal(t, "25,000", data.TotalDiscount)
	assert.Equal(t, "813,000", data.NetSellingPrice)

	// The discounts the dealer did not give never print as "0" rows.
	assert.Empty(t, data.CorporateDiscount)
	assert.Empty(t, data.AdditionalDiscount)
}

func TestBuildDocData_SingleDiscountLine(t *testing.T) {
	q := sampleQuotation()
	q.ConsumerOffer = models.AmountFromInt(10000)
	q.TotalDiscount = models.AmountFromInt(10000)
	q.NetSellingPrice = models.AmountFromInt(828000)

	data := BuildDocData(q)

	assert.True(t, data.HasDiscounts)
	assert.Equal(t, "10,000", data.ConsumerOffer)
	assert.Empty(t, data.ExchangeBonus)
	assert.Empty(t, data.CorporateDiscount)
	assert.Empty(t, data.AdditionalDiscount)
	assert.Equal(t, "10,000", data.TotalDiscount)
}

func TestBuildDocData_FinanceBlock(t *testing.T) {
	q := sampleQuotation()
	q.LoanAmount = models.AmountFromInt(600000)
	q.DownPayment = models.AmountFromInt(238000)
	q.InterestRate = models.NewAmount(9.5)
	q.TenureMonths = 60
	q.EMI = models.AmountFromInt(12602)

	data := BuildDocData(q)

	assert.True(t, data.HasFinance)
	assert.Equal(t, "600,000", data.LoanAmount)
	assert.Equal(t, "9.5%", data.InterestRate)
	assert.Equal(t, 60, data.TenureMonths)
	assert.Equal(t, "12,602", data.EMI)
}
