package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sjtech/spicon-recon/internal/models"
)

func TestClassifyRuleOrder(t *testing.T) {
	testCases := []struct {
		name    string
		reg     models.Registration
		matched bool
		rule    string
	}{
		{
			name:    "type field wins first",
			reg:     models.Registration{Type: "gift"},
			matched: true,
			rule:    RuleTypeField,
		},
		{
			name:    "display name via fullName",
			reg:     models.Registration{FullName: "Gift - Non-Registered"},
			matched: true,
			rule:    RuleDisplayName,
		},
		{
			name:    "display name via name fallback",
			reg:     models.Registration{Name: "Gift - Non-Registered"},
			matched: true,
			rule:    RuleDisplayName,
		},
		{
			name:    "purpose marks a gift",
			reg:     models.Registration{Name: "Anonymous", Purpose: "Building fund"},
			matched: true,
			rule:    RulePurpose,
		},
		{
			name: "payment without registration fields",
			reg: models.Registration{
				TransactionID: "TX100",
				AmountPaid:    models.AmountFromInt(500),
			},
			matched: true,
			rule:    RulePaymentOnly,
		},
		{
			name: "uniqueId blocks the payment-only rule",
			reg: models.Registration{
				UniqueID:      "SPICON-001",
				TransactionID: "TX100",
				AmountPaid:    models.AmountFromInt(500),
			},
			matched: false,
		},
		{
			name: "arrivalTime blocks the payment-only rule",
			reg: models.Registration{
				TransactionID: "TX100",
				AmountPaid:    models.AmountFromInt(500),
				ArrivalTime:   "Morning",
			},
			matched: false,
		},
		{
			name: "payment without amount is not a gift",
			reg: models.Registration{
				TransactionID: "TX100",
			},
			matched: false,
		},
		{
			name:    "ordinary registration",
			reg:     models.Registration{Name: "Ravi Kumar", UniqueID: "SPICON-002", GroupType: "Family"},
			matched: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Classify(tc.reg)
			assert.Equal(t, tc.matched, res.Matched)
			if tc.matched {
				assert.Equal(t, tc.rule, res.Rule)
			}
		})
	}
}

func TestIsGiftIsTotal(t *testing.T) {
	// A zero-value record must classify without panicking.
	assert.NotPanics(t, func() {
		assert.False(t, IsGift(models.Registration{}))
	})
}

func TestPartition(t *testing.T) {
	records := []models.Registration{
		{ID: "1", Name: "Ravi Kumar", UniqueID: "SPICON-001"},
		{ID: "2", Type: "gift", AmountPaid: models.AmountFromInt(1000)},
		{ID: "3", Name: "Lakshmi Devi", UniqueID: "SPICON-002"},
		{ID: "4", Purpose: "Medical camp"},
	}

	registrants, gifts := Partition(records)

	assert.Len(t, registrants, 2)
	assert.Len(t, gifts, 2)
	assert.Equal(t, "1", registrants[0].ID)
	assert.Equal(t, "3", registrants[1].ID)
	assert.Equal(t, "2", gifts[0].ID)
	assert.Equal(t, "4", gifts[1].ID)
}
