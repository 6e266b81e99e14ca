package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value stored as decimal(15,2).
//
// Incoming request bodies for costing and pricing fields are not
// trustworthy: clients send numbers, quoted numbers, empty strings or
// nothing at all. Decoding coerces anything that does not parse as a
// finite number to zero instead of failing the request, so a malformed
// field can never poison a persisted subtotal.
type Amount struct {
	decimal.Decimal
}

func NewAmount(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

func AmountFromInt(n int64) Amount {
	return Amount{decimal.NewFromInt(n)}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	s = strings.Trim(s, "\"")
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	f, _ := a.Decimal.Float64()
	return json.Marshal(f)
}

func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{a.Decimal.Sub(b.Decimal)}
}

func (a Amount) IsPositive() bool {
	return a.Decimal.IsPositive()
}

// GormDataType tells GORM which column type to use for Amount fields
// that carry no explicit type tag.
func (Amount) GormDataType() string {
	return "decimal(15,2)"
}
