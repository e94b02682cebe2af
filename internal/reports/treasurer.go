package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sjtech/spicon-recon/internal/classifier"
	"sjtech/spicon-recon/internal/dedupe"
	"sjtech/spicon-recon/internal/models"
)

// GiftLabel replaces the identity columns on treasurer rows produced by
// gift records, which carry no registration id or group type of their own.
const GiftLabel = "Gift"

const missingField = "N/A"

// TreasurerRow is one line of the treasurer day book: who paid, against which
// registration, and how much of their fee is still open.
type TreasurerRow struct {
	Name          string
	UniqueID      string
	GroupType     string
	TransactionID string
	PaymentDate   time.Time
	HasDate       bool
	TotalAmount   decimal.Decimal
	AmountPaid    decimal.Decimal
	Balance       decimal.Decimal
}

// TreasurerReport is the treasurer summary with totals folded from the rows
// that survived the date filter.
type TreasurerReport struct {
	Rows        []TreasurerRow
	TotalAmount decimal.Decimal
	AmountPaid  decimal.Decimal
	Balance     decimal.Decimal
}

// TreasurerSummary builds the day book straight from the snapshot: region
// filter, gift split, duplicate suppression on the registrant side, then one
// row per record. Gifts keep their paid amount as the total owed and never
// carry a balance. When from or to is set, rows are restricted to payment
// dates inside the inclusive window and undated rows drop out.
func (e *Engine) TreasurerSummary(snap models.Snapshot, region string, from, to time.Time) TreasurerReport {
	registrations := filterByRegion(snap.Registrations, region, func(r models.Registration) string {
		return r.Region
	})
	registrants, gifts := classifier.Partition(registrations)
	registrants = dedupe.ByTransaction(registrants)

	rows := make([]TreasurerRow, 0, len(registrants)+len(gifts))
	for _, reg := range registrants {
		total := decimal.NewFromInt(e.expected(reg))
		paid := reg.AmountPaid.Decimal
		balance := total.Sub(paid)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		rows = append(rows, treasurerRow(reg, orMissing(reg.UniqueID), orMissing(reg.GroupType), total, paid, balance))
	}
	for _, gift := range gifts {
		paid := gift.AmountPaid.Decimal
		rows = append(rows, treasurerRow(gift, GiftLabel, GiftLabel, paid, paid, decimal.Zero))
	}

	rows = filterByDate(rows, from, to)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].HasDate != rows[j].HasDate {
			return rows[i].HasDate
		}
		return rows[i].PaymentDate.Before(rows[j].PaymentDate)
	})

	report := TreasurerReport{Rows: rows}
	for _, row := range rows {
		report.TotalAmount = report.TotalAmount.Add(row.TotalAmount)
		report.AmountPaid = report.AmountPaid.Add(row.AmountPaid)
		report.Balance = report.Balance.Add(row.Balance)
	}
	return report
}

func treasurerRow(reg models.Registration, uniqueID, groupType string, total, paid, balance decimal.Decimal) TreasurerRow {
	when, ok := parsePaymentDate(reg.EffectivePaymentDate())
	return TreasurerRow{
		Name:          orMissing(reg.DisplayName()),
		UniqueID:      uniqueID,
		GroupType:     groupType,
		TransactionID: reg.TransactionRef(),
		PaymentDate:   when,
		HasDate:       ok,
		TotalAmount:   total,
		AmountPaid:    paid,
		Balance:       balance,
	}
}

// filterByDate keeps rows whose payment date falls inside the inclusive
// window. Zero bounds leave that side open; with no bounds at all the rows
// pass through untouched, dated or not.
func filterByDate(rows []TreasurerRow, from, to time.Time) []TreasurerRow {
	if from.IsZero() && to.IsZero() {
		return rows
	}
	if !to.IsZero() {
		// Make the upper bound cover the whole day.
		to = to.AddDate(0, 0, 1)
	}

	kept := make([]TreasurerRow, 0, len(rows))
	for _, row := range rows {
		if !row.HasDate {
			continue
		}
		if !from.IsZero() && row.PaymentDate.Before(from) {
			continue
		}
		if !to.IsZero() && !row.PaymentDate.Before(to) {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// parsePaymentDate accepts the timestamp formats the upstream API emits:
// RFC 3339 or a bare calendar date.
func parsePaymentDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if when, err := time.Parse(time.RFC3339, value); err == nil {
		return when, true
	}
	if when, err := time.Parse("2006-01-02", value); err == nil {
		return when, true
	}
	return time.Time{}, false
}

func orMissing(value string) string {
	if strings.TrimSpace(value) == "" {
		return missingField
	}
	return value
}
