package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyInterestDeduction_BelowThreshold(t *testing.T) {
	// 5000/month = 60000/year, all in the 30% bracket: 18000/year = 1500/month
	deduction := MonthlyInterestDeduction(decimal.NewFromInt(5000))

	assert.Equal(t, "1500.00", deduction.StringFixed(2))
}

func TestMonthlyInterestDeduction_AboveThreshold(t *testing.T) {
	// 10000/month = 120000/year: 100000*0.30 + 20000*0.21 = 34200/year = 2850/month
	deduction := MonthlyInterestDeduction(decimal.NewFromInt(10000))

	assert.Equal(t, "2850.00", deduction.StringFixed(2))
}

func TestMonthlyInterestDeduction_ExactlyAtThreshold(t *testing.T) {
	// 100000/year stays entirely in the 30% bracket
	monthly := decimal.NewFromInt(100000).Div(decimal.NewFromInt(12))
	deduction := MonthlyInterestDeduction(monthly)

	assert.Equal(t, "2500.00", deduction.StringFixed(2))
}

func TestMonthlyInterestDeduction_ZeroOrNegativeInterest(t *testing.T) {
	assert.True(t, MonthlyInterestDeduction(decimal.Zero).IsZero())
	assert.True(t, MonthlyInterestDeduction(decimal.NewFromInt(-100)).IsZero())
}
