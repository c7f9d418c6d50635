package calculation

import (
	"testing"

	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRateSensitivity_VariableLoan(t *testing.T) {
	loans := []domain.Loan{mortgageLoan("l1", 1200000, "3", "2")}

	result := AnalyzeRateSensitivity(loans, decimal.NewFromInt(1))

	require.NotNil(t, result)
	// Baseline: interest 3000 + amortization 2000 = 5000
	// +1 point: interest 4000 -> total 6000
	assert.Equal(t, "6000.00", result.Increase.TotalMonthlyCost.StringFixed(2))
	assert.Equal(t, "1000.00", result.Increase.Difference.StringFixed(2))
	// -1 point: interest 2000 -> total 4000
	assert.Equal(t, "4000.00", result.Decrease.TotalMonthlyCost.StringFixed(2))
	assert.Equal(t, "-1000.00", result.Decrease.Difference.StringFixed(2))
}

func TestAnalyzeRateSensitivity_FixedLoansExcludedFromShock(t *testing.T) {
	fixedTerm := 3
	loans := []domain.Loan{
		mortgageLoan("variable", 1000000, "3", "2"),
		{
			ID:                 "fixed",
			Name:               "Bundet lån",
			Principal:          decimal.NewFromInt(1000000),
			AnnualInterestRate: decimal.NewFromInt(3),
			AmortizationRate:   decimal.NewFromInt(2),
			RateType:           domain.RateTypeFixed,
			FixedTermYears:     &fixedTerm,
		},
	}

	result := AnalyzeRateSensitivity(loans, decimal.NewFromInt(2))

	require.NotNil(t, result)
	// Only the variable loan's interest moves: +2 points on 1M = +1666.67/month
	assert.InDelta(t, 1666.6666666666667, result.Increase.Difference.InexactFloat64(), 1e-9)
	assert.InDelta(t, -1666.6666666666667, result.Decrease.Difference.InexactFloat64(), 1e-9)
}

func TestAnalyzeRateSensitivity_OnlyFixedLoans_Absent(t *testing.T) {
	fixed := mortgageLoan("f1", 1000000, "3", "2")
	fixed.RateType = domain.RateTypeFixed

	assert.Nil(t, AnalyzeRateSensitivity([]domain.Loan{fixed}, decimal.NewFromInt(1)))
}

func TestAnalyzeRateSensitivity_NoLoans_Absent(t *testing.T) {
	assert.Nil(t, AnalyzeRateSensitivity(nil, decimal.NewFromInt(1)))
}

func TestAnalyzeRateSensitivity_NegativeDelta_Absent(t *testing.T) {
	loans := []domain.Loan{mortgageLoan("l1", 1000000, "3", "2")}

	assert.Nil(t, AnalyzeRateSensitivity(loans, decimal.NewFromInt(-1)))
}

func TestAnalyzeRateSensitivity_DecreaseClampedAtZeroRate(t *testing.T) {
	loans := []domain.Loan{mortgageLoan("l1", 1200000, "1", "2")}

	result := AnalyzeRateSensitivity(loans, decimal.NewFromInt(3))

	require.NotNil(t, result)
	// Rate cannot go below zero, so the decrease removes at most the full interest
	assert.Equal(t, "2000.00", result.Decrease.TotalMonthlyCost.StringFixed(2))
	assert.Equal(t, "-1000.00", result.Decrease.Difference.StringFixed(2))
}
