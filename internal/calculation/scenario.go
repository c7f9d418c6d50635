package calculation

import (
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// StepDownTarget derives the amortization percent a household steps down to
// once the regulatory requirement relaxes. Above 1% the target is one point
// lower but never below 1%; below 1% the current percent is kept as-is
// (floored at zero). The two branches are deliberate: the step-down snaps to
// exactly 1% rather than crossing it.
func StepDownTarget(currentPercent decimal.Decimal) decimal.Decimal {
	if currentPercent.GreaterThanOrEqual(one) {
		return decimal.Max(currentPercent.Sub(one), one)
	}
	return decimal.Max(currentPercent, decimal.Zero)
}

// ProjectFutureScenario recomputes the monthly budget under a target
// amortization percent, either an explicit override (clamped to >= 0) or the
// auto-derived step-down. Interest and the extra/savings totals are carried
// unchanged. Share and leftover are only reported when a positive income is
// known. Nil when there are no active loans or no target can be derived.
func ProjectFutureScenario(summary domain.LoanSummary, override *decimal.Decimal, income *decimal.Decimal, extraMonthly, savingsMonthly decimal.Decimal) *domain.ScenarioResult {
	if len(summary.Loans) == 0 {
		return nil
	}

	var target decimal.Decimal
	switch {
	case override != nil:
		target = decimal.Max(*override, decimal.Zero)
	case summary.EffectiveAmortizationPercent != nil:
		target = StepDownTarget(*summary.EffectiveAmortizationPercent)
	default:
		return nil
	}

	amortization := monthlyFromAnnualPercent(summary.Totals.Principal, target)
	totalCost := summary.Totals.MonthlyInterest.Add(amortization)
	plan := totalCost.Add(extraMonthly).Add(savingsMonthly)

	result := &domain.ScenarioResult{
		PercentValue:        target,
		MonthlyAmortization: amortization,
		TotalMonthlyCost:    totalCost,
		CombinedMonthlyPlan: plan,
	}

	if income != nil && income.IsPositive() {
		share := plan.Div(*income)
		leftover := income.Sub(plan)
		result.IncomeShare = &share
		result.RemainingIncome = &leftover
	}

	return result
}
