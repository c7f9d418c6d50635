package calculation

import (
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ActiveLoans filters the input down to loans that participate in
// aggregation, capped at the household loan limit in input order.
func ActiveLoans(loans []domain.Loan) []domain.Loan {
	active := make([]domain.Loan, 0, len(loans))
	for _, l := range loans {
		if !l.IsActive() {
			continue
		}
		active = append(active, l)
		if len(active) == domain.MaxLoans {
			break
		}
	}
	return active
}

// LoanCost computes the monthly interest, amortization and total cost of a
// single loan.
func LoanCost(l domain.Loan) domain.LoanCost {
	interest := monthlyFromAnnualPercent(l.Principal, l.AnnualInterestRate)
	amortization := monthlyFromAnnualPercent(l.Principal, l.AmortizationRate)
	return domain.LoanCost{
		LoanID:              l.ID,
		Name:                l.Name,
		RateType:            l.RateType,
		Principal:           l.Principal,
		MonthlyInterest:     interest,
		MonthlyAmortization: amortization,
		TotalMonthlyCost:    interest.Add(amortization),
	}
}

// AggregateLoans computes per-loan monthly costs, elementwise totals, and
// principal-weighted effective rates across a set of active loans. The
// weighted averages are nil when total principal is zero, never NaN.
func AggregateLoans(active []domain.Loan) domain.LoanSummary {
	summary := domain.LoanSummary{}

	for _, l := range active {
		cost := LoanCost(l)
		summary.Loans = append(summary.Loans, cost)
		summary.Totals.Principal = summary.Totals.Principal.Add(cost.Principal)
		summary.Totals.MonthlyInterest = summary.Totals.MonthlyInterest.Add(cost.MonthlyInterest)
		summary.Totals.MonthlyAmortization = summary.Totals.MonthlyAmortization.Add(cost.MonthlyAmortization)
		summary.Totals.TotalMonthlyCost = summary.Totals.TotalMonthlyCost.Add(cost.TotalMonthlyCost)
	}

	if summary.Totals.Principal.IsPositive() {
		rate := summary.Totals.MonthlyInterest.Mul(twelve).Mul(hundred).Div(summary.Totals.Principal)
		amortization := summary.Totals.MonthlyAmortization.Mul(twelve).Mul(hundred).Div(summary.Totals.Principal)
		summary.EffectiveAnnualRatePercent = &rate
		summary.EffectiveAmortizationPercent = &amortization
	}

	return summary
}

// ShiftedLoanCost recomputes a loan's monthly interest under a signed rate
// shock. Fixed-rate loans are insulated; variable-rate loans get the shock
// applied with the adjusted rate clamped to non-negative. Amortization is
// unaffected by rate changes.
func ShiftedLoanCost(l domain.Loan, signedDelta decimal.Decimal) domain.LoanCost {
	if !l.IsVariable() {
		return LoanCost(l)
	}
	shifted := l
	shifted.AnnualInterestRate = decimal.Max(l.AnnualInterestRate.Add(signedDelta), decimal.Zero)
	cost := LoanCost(shifted)
	cost.RateType = l.RateType
	return cost
}
