package calculation

import (
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// AggregateIncome computes net income per person and household totals.
// Persons with negative gross or deduction are excluded rather than failing
// the aggregation. The summary is marked unknown when no person ends up with
// a positive net income, so callers can suppress share computations instead
// of showing a misleading 0%/100% split.
func AggregateIncome(persons []domain.Person) domain.IncomeSummary {
	summary := domain.IncomeSummary{}

	anyGross := false
	for _, p := range persons {
		if p.GrossMonthlyIncome.IsNegative() || p.PreTaxDeduction.IsNegative() {
			continue
		}

		taxable := decimal.Max(p.GrossMonthlyIncome.Sub(p.PreTaxDeduction), decimal.Zero)
		tax := taxable.Mul(p.TaxRate())
		net := decimal.Max(taxable.Sub(tax), decimal.Zero)

		summary.Persons = append(summary.Persons, domain.PersonIncome{
			PersonID: p.ID,
			Name:     p.Name,
			Gross:    p.GrossMonthlyIncome,
			Taxable:  taxable,
			Tax:      tax,
			Net:      net,
		})

		summary.TotalGross = summary.TotalGross.Add(p.GrossMonthlyIncome)
		summary.TotalDeduction = summary.TotalDeduction.Add(p.PreTaxDeduction)
		summary.TotalTax = summary.TotalTax.Add(tax)
		summary.TotalNet = summary.TotalNet.Add(net)

		if p.GrossMonthlyIncome.IsPositive() {
			anyGross = true
		}
	}

	summary.Known = anyGross && summary.TotalNet.IsPositive()
	return summary
}
