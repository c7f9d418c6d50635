package calculation

import (
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Regulatory amortization tiers: above 70% loan-to-value the household must
// amortize 2% per year, above 50% it must amortize 1%. Both boundaries are
// strict (a ratio of exactly 0.70 lands in the lower tier).
var (
	ltvUpperThreshold = decimal.New(70, -2)
	ltvLowerThreshold = decimal.New(50, -2)
)

// ResolveAmortizationRequirement derives the regulatory minimum amortization
// percent from the loan-to-value ratio. The result is absent when either side
// of the ratio is unknown or non-positive.
func ResolveAmortizationRequirement(totalPrincipal decimal.Decimal, propertyValue *decimal.Decimal) *domain.AmortizationRequirement {
	if propertyValue == nil || !propertyValue.IsPositive() || !totalPrincipal.IsPositive() {
		return nil
	}

	ratio := totalPrincipal.Div(*propertyValue)

	percent := decimal.Zero
	switch {
	case ratio.GreaterThan(ltvUpperThreshold):
		percent = decimal.NewFromInt(2)
	case ratio.GreaterThan(ltvLowerThreshold):
		percent = decimal.NewFromInt(1)
	}

	return &domain.AmortizationRequirement{
		LoanToValue: ratio,
		Percent:     percent,
	}
}
