package calculation

import (
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// SavingsAnnualGrowthPercent is the assumed yearly growth on saved capital.
const SavingsAnnualGrowthPercent = 2

var savingsGrowthFactor = one.Add(decimal.New(SavingsAnnualGrowthPercent, -2))

// ProjectSavings compounds a constant monthly contribution over the horizon.
// A full year of contributions is deposited before growth is applied, once
// per year: balance_n = (balance_{n-1} + contribution*12) * growth. That
// ordering is a deliberate simplification and must not change. Nil when the
// contribution is not positive.
func ProjectSavings(monthlyContribution decimal.Decimal, years int) []domain.SavingsRow {
	if !monthlyContribution.IsPositive() {
		return nil
	}

	years = clampForecastYears(years)
	yearlyContribution := monthlyContribution.Mul(twelve)

	rows := make([]domain.SavingsRow, 0, years+1)
	balance := decimal.Zero
	for year := 0; year <= years; year++ {
		if year > 0 {
			balance = balance.Add(yearlyContribution).Mul(savingsGrowthFactor)
		}
		rows = append(rows, domain.SavingsRow{Year: year, Balance: balance})
	}
	return rows
}
