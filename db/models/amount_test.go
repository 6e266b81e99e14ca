package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountUnmarshalCoercion(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"plain number", `{"v": 750000}`, "750000"},
		{"decimal number", `{"v": 1234.56}`, "1234.56"},
		{"quoted number", `{"v": "45000"}`, "45000"},
		{"null", `{"v": null}`, "0"},
		{"empty string", `{"v": ""}`, "0"},
		{"junk string", `{"v": "abc"}`, "0"},
		{"absent", `{}`, "0"},
		{"negative", `{"v": -500}`, "-500"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var payload struct {
				V Amount `json:"v"`
			}
			err := json.Unmarshal([]byte(tc.body), &payload)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, payload.V.String())
		})
	}
}

func TestAmountMarshalAsNumber(t *testing.T) {
	out, err := json.Marshal(struct {
		V Amount `json:"v"`
	}{V: AmountFromInt(45000)})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"v": 45000}`, string(out))
}

func TestAmountArithmetic(t *testing.T) {
	a := AmountFromInt(100)
	b := NewAmount(40.5)

	assert.Equal(t, "140.5", a.Add(b).String())
	assert.Equal(t, "59.5", a.Sub(b).String())
	assert.True(t, a.Sub(a).Sub(b).Decimal.IsNegative())
}
