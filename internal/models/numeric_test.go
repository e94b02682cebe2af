package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		payload  string
		expected string
	}{
		{name: "number", payload: `{"amountPaid": 1000}`, expected: "1000"},
		{name: "decimal number", payload: `{"amountPaid": 1250.50}`, expected: "1250.5"},
		{name: "numeric string", payload: `{"amountPaid": "2500"}`, expected: "2500"},
		{name: "string with currency symbol", payload: `{"amountPaid": "₹1,300"}`, expected: "1300"},
		{name: "null", payload: `{"amountPaid": null}`, expected: "0"},
		{name: "missing", payload: `{}`, expected: "0"},
		{name: "garbage string", payload: `{"amountPaid": "not-a-number"}`, expected: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var reg Registration
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &reg))
			assert.True(t, reg.AmountPaid.Equal(decimal.RequireFromString(tc.expected)),
				"got %s, want %s", reg.AmountPaid.String(), tc.expected)
		})
	}
}

func TestCountUnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		payload  string
		expected Count
	}{
		{name: "number", payload: `{"totalFamilyMembers": 4}`, expected: 4},
		{name: "numeric string", payload: `{"totalFamilyMembers": "4"}`, expected: 4},
		{name: "string with trailing junk", payload: `{"totalFamilyMembers": "4 people"}`, expected: 4},
		{name: "null", payload: `{"totalFamilyMembers": null}`, expected: 0},
		{name: "garbage", payload: `{"totalFamilyMembers": "several"}`, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var reg Registration
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &reg))
			assert.Equal(t, tc.expected, reg.TotalFamilyMembers)
		})
	}
}

func TestParseAmount(t *testing.T) {
	assert.True(t, ParseAmount(" 2500 ").Equal(decimal.NewFromInt(2500)))
	assert.True(t, ParseAmount("₹2,500").Equal(decimal.NewFromInt(2500)))
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("abc").IsZero())
}

func TestTransactionRefTrimming(t *testing.T) {
	reg := Registration{TransactionID: "  TX9 "}
	assert.Equal(t, "TX9", reg.TransactionRef())

	pay := Payment{TransactionID: "   "}
	assert.Equal(t, "", pay.TransactionRef())
}

func TestEffectivePaymentDate(t *testing.T) {
	reg := Registration{PaymentDate: "2025-01-05", UpdatedAt: "2025-01-06", CreatedAt: "2025-01-01"}
	assert.Equal(t, "2025-01-05", reg.EffectivePaymentDate())

	reg.PaymentDate = ""
	assert.Equal(t, "2025-01-06", reg.EffectivePaymentDate())

	reg.UpdatedAt = ""
	assert.Equal(t, "2025-01-01", reg.EffectivePaymentDate())
}
