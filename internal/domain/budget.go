package domain

import "github.com/shopspring/decimal"

// CalculationOptions are product toggles on the budget aggregator.
type CalculationOptions struct {
	// ApplyInterestDeduction makes income share and remaining income use net
	// income plus the monthly interest-deduction rebate instead of plain net
	// income.
	ApplyInterestDeduction bool `json:"applyInterestDeduction"`
}

// CalculationInput is the full input set for one budget computation. The
// engine is a pure function of this value; nil pointers mean "not provided".
type CalculationInput struct {
	Persons []Person `json:"persons,omitempty"`
	// NetMonthlyIncome overrides the per-person income aggregation when the
	// household enters a single known net figure instead.
	NetMonthlyIncome           *decimal.Decimal   `json:"netMonthlyIncome,omitempty"`
	Loans                      []Loan             `json:"loans"`
	CostItems                  []CostItem         `json:"costItems,omitempty"`
	SavingsItems               []SavingsItem      `json:"savingsItems,omitempty"`
	PropertyValue              *decimal.Decimal   `json:"propertyValue,omitempty"`
	FutureAmortizationOverride *decimal.Decimal   `json:"futureAmortizationOverride,omitempty"`
	RateShockDelta             *decimal.Decimal   `json:"rateShockDelta,omitempty"`
	ForecastYears              int                `json:"forecastYears,omitempty"`
	SavingsForecastYears       int                `json:"savingsForecastYears,omitempty"`
	Options                    CalculationOptions `json:"options"`
}

// PersonIncome is the per-person net income breakdown.
type PersonIncome struct {
	PersonID string          `json:"personId"`
	Name     string          `json:"name"`
	Gross    decimal.Decimal `json:"gross"`
	Taxable  decimal.Decimal `json:"taxable"`
	Tax      decimal.Decimal `json:"tax"`
	Net      decimal.Decimal `json:"net"`
}

// IncomeSummary aggregates household income. Known is false when no person
// contributed a positive net income; the totals are then not meaningful and
// share computations must be suppressed.
type IncomeSummary struct {
	Persons        []PersonIncome  `json:"persons"`
	TotalGross     decimal.Decimal `json:"totalGross"`
	TotalDeduction decimal.Decimal `json:"totalDeduction"`
	TotalTax       decimal.Decimal `json:"totalTax"`
	TotalNet       decimal.Decimal `json:"totalNet"`
	Known          bool            `json:"known"`
}

// LoanCost is the monthly cost breakdown of a single active loan.
type LoanCost struct {
	LoanID              string          `json:"loanId"`
	Name                string          `json:"name"`
	RateType            RateType        `json:"rateType"`
	Principal           decimal.Decimal `json:"principal"`
	MonthlyInterest     decimal.Decimal `json:"monthlyInterest"`
	MonthlyAmortization decimal.Decimal `json:"monthlyAmortization"`
	TotalMonthlyCost    decimal.Decimal `json:"totalMonthlyCost"`
}

// LoanTotals is the elementwise sum over active loans.
type LoanTotals struct {
	Principal           decimal.Decimal `json:"principal"`
	MonthlyInterest     decimal.Decimal `json:"monthlyInterest"`
	MonthlyAmortization decimal.Decimal `json:"monthlyAmortization"`
	TotalMonthlyCost    decimal.Decimal `json:"totalMonthlyCost"`
}

// LoanSummary holds per-loan costs, totals, and principal-weighted averages.
// The averages are nil when there are no active loans.
type LoanSummary struct {
	Loans                        []LoanCost       `json:"loans"`
	Totals                       LoanTotals       `json:"totals"`
	EffectiveAnnualRatePercent   *decimal.Decimal `json:"effectiveAnnualRatePercent,omitempty"`
	EffectiveAmortizationPercent *decimal.Decimal `json:"effectiveAmortizationPercent,omitempty"`
}

// BudgetSnapshot is the engine's primary output: one consistent monthly
// budget. It is immutable; a new input produces a fresh snapshot.
type BudgetSnapshot struct {
	Income                   IncomeSummary    `json:"income"`
	NetMonthlyIncome         *decimal.Decimal `json:"netMonthlyIncome,omitempty"`
	Loans                    LoanSummary      `json:"loans"`
	ExtraMonthlyTotal        decimal.Decimal  `json:"extraMonthlyTotal"`
	SavingsMonthlyTotal      decimal.Decimal  `json:"savingsMonthlyTotal"`
	InterestDeductionMonthly decimal.Decimal  `json:"interestDeductionMonthly"`
	CombinedMonthlyPlan      decimal.Decimal  `json:"combinedMonthlyPlan"`
	IncomeShare              *decimal.Decimal `json:"incomeShare,omitempty"`
	RemainingIncome          *decimal.Decimal `json:"remainingIncome,omitempty"`
}

// ScenarioResult is the budget after the amortization step-down.
type ScenarioResult struct {
	PercentValue        decimal.Decimal  `json:"percentValue"`
	MonthlyAmortization decimal.Decimal  `json:"monthlyAmortization"`
	TotalMonthlyCost    decimal.Decimal  `json:"totalMonthlyCost"`
	CombinedMonthlyPlan decimal.Decimal  `json:"combinedMonthlyPlan"`
	IncomeShare         *decimal.Decimal `json:"incomeShare,omitempty"`
	RemainingIncome     *decimal.Decimal `json:"remainingIncome,omitempty"`
}

// SensitivityOutcome is the loan cost under one signed rate shock.
type SensitivityOutcome struct {
	TotalMonthlyCost decimal.Decimal `json:"totalMonthlyCost"`
	Difference       decimal.Decimal `json:"difference"`
}

// RateSensitivity holds the cost under a symmetric ± rate shock applied to
// variable-rate loans only.
type RateSensitivity struct {
	DeltaPercent decimal.Decimal    `json:"deltaPercent"`
	Increase     SensitivityOutcome `json:"increase"`
	Decrease     SensitivityOutcome `json:"decrease"`
}

// AmortizationRequirement is the regulatory minimum amortization derived from
// the loan-to-value ratio.
type AmortizationRequirement struct {
	LoanToValue decimal.Decimal `json:"loanToValue"`
	Percent     decimal.Decimal `json:"percent"`
}

// ForecastRow is one year of the principal runoff forecast.
type ForecastRow struct {
	Year               int              `json:"year"`
	RemainingPrincipal decimal.Decimal  `json:"remainingPrincipal"`
	LoanToValue        *decimal.Decimal `json:"loanToValue,omitempty"`
}

// SavingsRow is one year of the savings growth forecast.
type SavingsRow struct {
	Year    int             `json:"year"`
	Balance decimal.Decimal `json:"balance"`
}

// CalculationResult is everything a single engine invocation produces.
// Optional sections are nil when their inputs are insufficient, never zeroed.
type CalculationResult struct {
	Snapshot                BudgetSnapshot           `json:"snapshot"`
	FutureScenario          *ScenarioResult          `json:"futureScenario,omitempty"`
	RateSensitivity         *RateSensitivity         `json:"rateSensitivity,omitempty"`
	AmortizationRequirement *AmortizationRequirement `json:"amortizationRequirement,omitempty"`
	ForecastRows            []ForecastRow            `json:"forecastRows,omitempty"`
	SavingsForecastRows     []SavingsRow             `json:"savingsForecastRows,omitempty"`
}
