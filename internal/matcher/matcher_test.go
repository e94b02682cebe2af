package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sjtech/spicon-recon/internal/models"
)

func TestFindPaymentByTransactionID(t *testing.T) {
	reg := models.Registration{TransactionID: " TX1 "}
	pool := []models.Payment{
		{ID: "p1", TransactionID: "TX2"},
		{ID: "p2", TransactionID: "TX1"},
	}

	pay, ok := FindPayment(reg, pool)

	assert.True(t, ok)
	assert.Equal(t, "p2", pay.ID)
}

func TestTransactionTierBlocksEmailFallback(t *testing.T) {
	// Both sides carry transaction ids that differ; the email tier must not
	// be consulted for that candidate.
	reg := models.Registration{TransactionID: "TX1", Email: "ravi@example.com"}
	pool := []models.Payment{
		{ID: "p1", TransactionID: "TX2", Email: "ravi@example.com"},
	}

	_, ok := FindPayment(reg, pool)

	assert.False(t, ok)
}

func TestFindPaymentByEmailCaseFolded(t *testing.T) {
	reg := models.Registration{Email: " Ravi@Example.COM "}
	pool := []models.Payment{
		{ID: "p1", Email: "other@example.com"},
		{ID: "p2", Email: "ravi@example.com"},
	}

	pay, ok := FindPayment(reg, pool)

	assert.True(t, ok)
	assert.Equal(t, "p2", pay.ID)
}

func TestFindPaymentByNameAndMobile(t *testing.T) {
	testCases := []struct {
		name    string
		reg     models.Registration
		pay     models.Payment
		matched bool
	}{
		{
			name:    "name matches case-insensitively",
			reg:     models.Registration{Name: "Ravi Kumar", Mobile: "9876543210"},
			pay:     models.Payment{Name: "ravi kumar", Mobile: "9876543210"},
			matched: true,
		},
		{
			name:    "fullName matches payment name",
			reg:     models.Registration{Name: "Ravi", FullName: "Ravi Kumar", Mobile: "9876543210"},
			pay:     models.Payment{Name: "Ravi Kumar", Mobile: "9876543210"},
			matched: true,
		},
		{
			name:    "registration name matches payment fullName",
			reg:     models.Registration{Name: "Ravi Kumar", Mobile: "9876543210"},
			pay:     models.Payment{Name: "R.K.", FullName: "Ravi Kumar", Mobile: "9876543210"},
			matched: true,
		},
		{
			name:    "mobile is compared verbatim",
			reg:     models.Registration{Name: "Ravi Kumar", Mobile: "+919876543210"},
			pay:     models.Payment{Name: "Ravi Kumar", Mobile: "9876543210"},
			matched: false,
		},
		{
			name:    "missing mobile disqualifies the tier",
			reg:     models.Registration{Name: "Ravi Kumar"},
			pay:     models.Payment{Name: "Ravi Kumar", Mobile: "9876543210"},
			matched: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := FindPayment(tc.reg, []models.Payment{tc.pay})
			assert.Equal(t, tc.matched, ok)
		})
	}
}

func TestFindPaymentReturnsFirstCandidate(t *testing.T) {
	// Greedy search: pool order decides, not match quality.
	reg := models.Registration{Email: "ravi@example.com"}
	pool := []models.Payment{
		{ID: "p1", Email: "ravi@example.com", AmountPaid: models.AmountFromInt(100)},
		{ID: "p2", Email: "ravi@example.com", AmountPaid: models.AmountFromInt(2500)},
	}

	pay, ok := FindPayment(reg, pool)

	assert.True(t, ok)
	assert.Equal(t, "p1", pay.ID)
}

func TestFindRegistration(t *testing.T) {
	pay := models.Payment{TransactionID: "TX7"}
	pool := []models.Registration{
		{ID: "r1"},
		{ID: "r2", TransactionID: " TX7"},
	}

	reg, ok := FindRegistration(pay, pool)

	assert.True(t, ok)
	assert.Equal(t, "r2", reg.ID)
}

func TestNoMatch(t *testing.T) {
	reg := models.Registration{Name: "Ravi Kumar"}
	_, ok := FindPayment(reg, []models.Payment{{Name: "Someone Else", Mobile: "111"}})
	assert.False(t, ok)

	_, ok = FindPayment(reg, nil)
	assert.False(t, ok)
}
