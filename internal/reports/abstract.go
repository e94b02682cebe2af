package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"sjtech/spicon-recon/internal/categorizer"
	"sjtech/spicon-recon/internal/matcher"
	"sjtech/spicon-recon/internal/models"
)

// AbstractRow is one bucket of the registrant abstract: a district in the
// all-districts table, or a collection place in the place-wise table.
type AbstractRow struct {
	Key           string
	Registrations int
	Categories    map[categorizer.Category]int
	TotalPeople   int
	TotalExpected int64
	TotalPaid     decimal.Decimal
}

// Balance is the bucket's expected amount still outstanding. It may be
// negative when collections exceed expectations.
func (r AbstractRow) Balance() decimal.Decimal {
	return decimal.NewFromInt(r.TotalExpected).Sub(r.TotalPaid)
}

// AbstractReport is the registrant abstract with its totals folded from the
// rows, so the parts always sum to the whole.
type AbstractReport struct {
	Rows          []AbstractRow
	Registrations int
	TotalPeople   int
	TotalExpected int64
	TotalPaid     decimal.Decimal
}

// DistrictAbstract aggregates registrants by district: headcounts, category
// breakdown, expected fees and the payments the matcher could attribute.
func (e *Engine) DistrictAbstract(p *Prepared) AbstractReport {
	return e.abstractBy(p, func(reg models.Registration) string {
		return reg.District
	})
}

// PlaceAbstract is the district abstract keyed by collection place.
func (e *Engine) PlaceAbstract(p *Prepared) AbstractReport {
	return e.abstractBy(p, func(reg models.Registration) string {
		return reg.CollectionPlace
	})
}

func (e *Engine) abstractBy(p *Prepared, keyOf func(models.Registration) string) AbstractReport {
	buckets := make(map[string]*AbstractRow)

	for _, reg := range p.Registrations {
		key := orDefault(keyOf(reg))
		row, ok := buckets[key]
		if !ok {
			row = &AbstractRow{Key: key, Categories: make(map[categorizer.Category]int)}
			buckets[key] = row
		}

		category := categorizer.Normalize(reg.GroupType)
		row.Registrations++
		row.Categories[category]++
		row.TotalPeople += attendingHeadcount(category, int(reg.TotalFamilyMembers))
		row.TotalExpected += e.expected(reg)

		if pay, ok := matcher.FindPayment(reg, p.Payments); ok {
			row.TotalPaid = row.TotalPaid.Add(pay.AmountPaid.Decimal)
		}
	}

	report := AbstractReport{Rows: sortedAbstractRows(buckets)}
	for _, row := range report.Rows {
		report.Registrations += row.Registrations
		report.TotalPeople += row.TotalPeople
		report.TotalExpected += row.TotalExpected
		report.TotalPaid = report.TotalPaid.Add(row.TotalPaid)
	}
	return report
}

// attendingHeadcount counts how many people one registration brings: Family
// registrations bring their whole household, everyone else counts as one.
func attendingHeadcount(category categorizer.Category, familyMembers int) int {
	if category == categorizer.Family && familyMembers > 0 {
		return familyMembers
	}
	return 1
}

// Rows are ordered largest bucket first, then by key for a stable layout.
func sortedAbstractRows(buckets map[string]*AbstractRow) []AbstractRow {
	rows := make([]AbstractRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Registrations != rows[j].Registrations {
			return rows[i].Registrations > rows[j].Registrations
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}
