package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"sjtech/spicon-recon/internal/categorizer"
	"sjtech/spicon-recon/internal/matcher"
)

// CollectionRow is one district's collected payments: the amounts, the
// category mix declared on the payments themselves, and the headcount they
// account for.
type CollectionRow struct {
	District    string
	Payments    int
	Amount      decimal.Decimal
	Categories  map[categorizer.Category]int
	TotalPeople int
}

// CollectionReport is the district payment-collection table. Every
// deduplicated payment lands in exactly one bucket, so the folded total
// always equals the overall collected figure for the same filter.
type CollectionReport struct {
	Rows        []CollectionRow
	Payments    int
	Amount      decimal.Decimal
	TotalPeople int
}

// DistrictCollections aggregates payments by the district recorded on the
// payment. Headcounts borrow the matched registration's family size when a
// Family payment can be attributed; otherwise a payment counts one head.
func (e *Engine) DistrictCollections(p *Prepared) CollectionReport {
	buckets := make(map[string]*CollectionRow)

	for _, pay := range p.Payments {
		key := orDefault(pay.District)
		row, ok := buckets[key]
		if !ok {
			row = &CollectionRow{District: key, Categories: make(map[categorizer.Category]int)}
			buckets[key] = row
		}

		category := categorizer.Normalize(pay.GroupType)
		row.Payments++
		row.Amount = row.Amount.Add(pay.AmountPaid.Decimal)
		row.Categories[category]++

		people := 1
		if category == categorizer.Family {
			if reg, ok := matcher.FindRegistration(pay, p.Registrations); ok && reg.TotalFamilyMembers > 0 {
				people = int(reg.TotalFamilyMembers)
			}
		}
		row.TotalPeople += people
	}

	rows := make([]CollectionRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].District < rows[j].District
	})

	report := CollectionReport{Rows: rows}
	for _, row := range rows {
		report.Payments += row.Payments
		report.Amount = report.Amount.Add(row.Amount)
		report.TotalPeople += row.TotalPeople
	}
	return report
}
