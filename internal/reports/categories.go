package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"sjtech/spicon-recon/internal/categorizer"
	"sjtech/spicon-recon/internal/matcher"
)

// CategoryRow summarizes the payments declared under one participant
// category: how many paid, what they paid, and what was expected of them.
// Expected stays decimal because unmatched payments contribute their
// self-reported total verbatim, fractions included.
type CategoryRow struct {
	Category  categorizer.Category
	Count     int
	Collected decimal.Decimal
	Expected  decimal.Decimal
}

// Pending is the category's shortfall; negative when over-collected.
func (r CategoryRow) Pending() decimal.Decimal {
	return r.Expected.Sub(r.Collected)
}

// CategoryReport is the per-category payment summary with totals folded from
// its rows.
type CategoryReport struct {
	Rows      []CategoryRow
	Count     int
	Collected decimal.Decimal
	Expected  decimal.Decimal
}

// CategorySummary groups deduplicated payments by the normalized group type
// written on the payment. Expected amounts come from the matched
// registration's tariff when one can be attributed, falling back to the
// payment's own recorded total.
func (e *Engine) CategorySummary(p *Prepared) CategoryReport {
	buckets := make(map[categorizer.Category]*CategoryRow)

	for _, pay := range p.Payments {
		category := categorizer.Normalize(pay.GroupType)
		row, ok := buckets[category]
		if !ok {
			row = &CategoryRow{Category: category}
			buckets[category] = row
		}

		row.Count++
		row.Collected = row.Collected.Add(pay.AmountPaid.Decimal)
		if reg, ok := matcher.FindRegistration(pay, p.Registrations); ok {
			row.Expected = row.Expected.Add(decimal.NewFromInt(e.expected(reg)))
		} else {
			row.Expected = row.Expected.Add(pay.TotalAmount.Decimal)
		}
	}

	rows := make([]CategoryRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})

	report := CategoryReport{Rows: rows}
	for _, row := range rows {
		report.Count += row.Count
		report.Collected = report.Collected.Add(row.Collected)
		report.Expected = report.Expected.Add(row.Expected)
	}
	return report
}
