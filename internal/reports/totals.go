package reports

import "github.com/shopspring/decimal"

// Totals is the overall reconciliation line: everything the registrants owe
// against everything the deduplicated payments brought in.
type Totals struct {
	Registrations        int
	Payments             int
	TotalExpected        int64
	TotalCollected       decimal.Decimal
	TotalPending         decimal.Decimal
	CollectionPercentage decimal.Decimal
}

// Overall computes the headline totals for one prepared snapshot. Pending may
// go negative when gifts or overpayments push collections past expectations;
// the percentage is zero when nothing is expected.
func (e *Engine) Overall(p *Prepared) Totals {
	totals := Totals{
		Registrations: len(p.Registrations),
		Payments:      len(p.Payments),
	}

	for _, reg := range p.Registrations {
		totals.TotalExpected += e.expected(reg)
	}
	for _, pay := range p.Payments {
		totals.TotalCollected = totals.TotalCollected.Add(pay.AmountPaid.Decimal)
	}

	expected := decimal.NewFromInt(totals.TotalExpected)
	totals.TotalPending = expected.Sub(totals.TotalCollected)
	if totals.TotalExpected != 0 {
		totals.CollectionPercentage = totals.TotalCollected.Mul(decimal.NewFromInt(100)).Div(expected)
	}
	return totals
}
