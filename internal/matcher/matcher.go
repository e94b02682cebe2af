// Package matcher links registrations and payments that carry no shared
// foreign key. The search is greedy: candidates are scanned in pool order and
// for each candidate the first applicable tier decides, so a payment may end
// up matched to more than one registration across repeated calls. Upgrading
// this to an optimal bipartite matching would silently change financial
// totals, so the greedy behavior is part of the contract.
package matcher

import (
	"strings"

	"sjtech/spicon-recon/internal/models"
)

// FindPayment returns the first payment in pool corresponding to reg, if any.
func FindPayment(reg models.Registration, pool []models.Payment) (models.Payment, bool) {
	for _, pay := range pool {
		if correspond(reg, pay) {
			return pay, true
		}
	}
	return models.Payment{}, false
}

// FindRegistration returns the first registration in pool corresponding to
// pay, if any.
func FindRegistration(pay models.Payment, pool []models.Registration) (models.Registration, bool) {
	for _, reg := range pool {
		if correspond(reg, pay) {
			return reg, true
		}
	}
	return models.Registration{}, false
}

// correspond applies the tiers in order; the first tier with both sides
// present decides and later tiers are not consulted.
//
//  1. transaction ids, equal after trimming
//  2. emails, equal after trimming and case-folding
//  3. names (accepting name/fullName cross-field equality, case-folded)
//     plus mobiles compared verbatim after trimming
func correspond(reg models.Registration, pay models.Payment) bool {
	if regRef, payRef := reg.TransactionRef(), pay.TransactionRef(); regRef != "" && payRef != "" {
		return regRef == payRef
	}

	if regEmail, payEmail := fold(reg.Email), fold(pay.Email); regEmail != "" && payEmail != "" {
		return regEmail == payEmail
	}

	if reg.Name != "" && reg.Mobile != "" && pay.Name != "" && pay.Mobile != "" {
		nameMatch := fold(reg.Name) == fold(pay.Name) ||
			(reg.FullName != "" && fold(reg.FullName) == fold(pay.Name)) ||
			(pay.FullName != "" && fold(reg.Name) == fold(pay.FullName))
		// Mobiles are deliberately not normalized beyond trimming: no digit
		// stripping, no country-code handling.
		return nameMatch && strings.TrimSpace(reg.Mobile) == strings.TrimSpace(pay.Mobile)
	}

	return false
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
