package calculation

import (
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine is the budget aggregator: the single composition point that invokes
// every sub-computation and decides whether enough data is present to compute
// a snapshot at all. It holds no state; Calculate is a pure function of its
// input and identical inputs yield identical results.
type Engine struct{}

// NewEngine creates a new Engine
func NewEngine() *Engine {
	return &Engine{}
}

// Calculate runs the full pipeline over one input set. It returns
// domain.ErrInsufficientData when no active loan is present; income is
// optional and only gates the share/leftover fields. Missing sub-results are
// nil in the returned value, never fabricated zeroes.
func (e *Engine) Calculate(input domain.CalculationInput) (*domain.CalculationResult, error) {
	active := ActiveLoans(input.Loans)
	if len(active) == 0 {
		return nil, domain.ErrInsufficientData
	}

	loans := AggregateLoans(active)
	income := AggregateIncome(input.Persons)

	extraMonthly := TotalMonthlyCosts(input.CostItems)
	savingsMonthly := TotalMonthlySavings(input.SavingsItems)
	deduction := MonthlyInterestDeduction(loans.Totals.MonthlyInterest)

	netIncome := resolveNetIncome(input, income)
	basis := incomeBasis(netIncome, deduction, input.Options)

	plan := loans.Totals.TotalMonthlyCost.Add(extraMonthly).Add(savingsMonthly)

	snapshot := domain.BudgetSnapshot{
		Income:                   income,
		NetMonthlyIncome:         netIncome,
		Loans:                    loans,
		ExtraMonthlyTotal:        extraMonthly,
		SavingsMonthlyTotal:      savingsMonthly,
		InterestDeductionMonthly: deduction,
		CombinedMonthlyPlan:      plan,
	}

	if basis != nil && basis.IsPositive() {
		share := plan.Div(*basis)
		remaining := basis.Sub(plan)
		snapshot.IncomeShare = &share
		snapshot.RemainingIncome = &remaining
	}

	result := &domain.CalculationResult{
		Snapshot:                snapshot,
		FutureScenario:          ProjectFutureScenario(loans, input.FutureAmortizationOverride, basis, extraMonthly, savingsMonthly),
		RateSensitivity:         AnalyzeRateSensitivity(active, rateShockDelta(input)),
		AmortizationRequirement: ResolveAmortizationRequirement(loans.Totals.Principal, input.PropertyValue),
		SavingsForecastRows:     ProjectSavings(savingsMonthly, input.SavingsForecastYears),
	}

	if loans.EffectiveAmortizationPercent != nil {
		result.ForecastRows = ForecastAmortization(
			loans.Totals.Principal,
			*loans.EffectiveAmortizationPercent,
			input.ForecastYears,
			input.PropertyValue,
		)
	}

	return result, nil
}

// resolveNetIncome prefers an explicit net figure over the per-person
// aggregation; both must be positive to count as known.
func resolveNetIncome(input domain.CalculationInput, income domain.IncomeSummary) *decimal.Decimal {
	if input.NetMonthlyIncome != nil && input.NetMonthlyIncome.IsPositive() {
		net := *input.NetMonthlyIncome
		return &net
	}
	if income.Known {
		net := income.TotalNet
		return &net
	}
	return nil
}

// incomeBasis applies the interest-deduction toggle: when enabled, share and
// leftover are computed against net income plus the monthly rebate.
func incomeBasis(netIncome *decimal.Decimal, deduction decimal.Decimal, opts domain.CalculationOptions) *decimal.Decimal {
	if netIncome == nil {
		return nil
	}
	if !opts.ApplyInterestDeduction {
		return netIncome
	}
	adjusted := netIncome.Add(deduction)
	return &adjusted
}

func rateShockDelta(input domain.CalculationInput) decimal.Decimal {
	if input.RateShockDelta != nil {
		return *input.RateShockDelta
	}
	return DefaultRateShockDelta
}
