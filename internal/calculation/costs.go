package calculation

import (
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// sharedCostDivisor is the fixed split for costs shared with another
// household: the budget counts exactly half.
var sharedCostDivisor = decimal.NewFromInt(2)

// TotalMonthlyCosts sums the monthly equivalents of all active cost items.
// Shared items count at half. Invalid items contribute nothing.
func TotalMonthlyCosts(items []domain.CostItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		monthly := item.MonthlyEquivalent()
		if item.ShareWithOther {
			monthly = monthly.Div(sharedCostDivisor)
		}
		total = total.Add(monthly)
	}
	return total
}

// TotalMonthlySavings sums the monthly equivalents of all active savings
// items.
func TotalMonthlySavings(items []domain.SavingsItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		total = total.Add(item.MonthlyEquivalent())
	}
	return total
}
