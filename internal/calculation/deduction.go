package calculation

import "github.com/shopspring/decimal"

// Interest deduction brackets: 30% rebate on yearly interest up to the
// threshold, 21% on the excess. These are statutory constants.
var (
	deductionThreshold = decimal.NewFromInt(100000)
	deductionBaseRate  = decimal.New(30, -2)
	deductionHighRate  = decimal.New(21, -2)
)

// MonthlyInterestDeduction computes the monthly tax rebate on mortgage
// interest under the two-bracket rule. Zero or negative interest yields zero.
func MonthlyInterestDeduction(monthlyInterest decimal.Decimal) decimal.Decimal {
	if !monthlyInterest.IsPositive() {
		return decimal.Zero
	}

	yearly := monthlyInterest.Mul(twelve)
	base := decimal.Min(yearly, deductionThreshold)
	excess := decimal.Max(yearly.Sub(deductionThreshold), decimal.Zero)

	yearlyDeduction := base.Mul(deductionBaseRate).Add(excess.Mul(deductionHighRate))
	return yearlyDeduction.Div(twelve)
}
