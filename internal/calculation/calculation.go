// Package calculation implements the budget projection engine: a pure,
// stateless computation pipeline that turns household incomes, loans,
// recurring costs and property value into one consistent monthly budget
// snapshot plus derived scenarios. Every function here is deterministic over
// its inputs; validation is done by filtering, not by raising errors, so a
// partially invalid input still yields the best computable result.
package calculation

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// monthsPerYear converts an annual percent-of-principal figure to a monthly
// amount: principal * percent / 100 / 12.
func monthlyFromAnnualPercent(principal, percent decimal.Decimal) decimal.Decimal {
	return principal.Mul(percent).Div(hundred.Mul(twelve))
}
