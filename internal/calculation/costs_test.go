package calculation

import (
	"testing"

	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalMonthlyCosts_FrequencyDivisors(t *testing.T) {
	tests := []struct {
		frequency domain.Frequency
		amount    int64
		expected  string
	}{
		{domain.FrequencyMonthly, 1200, "1200.00"},
		{domain.FrequencyQuarterly, 1200, "400.00"},
		{domain.FrequencyYearly, 1200, "100.00"},
		{domain.FrequencyTerm, 1200, "200.00"},
		{domain.FrequencySeason, 1200, "300.00"},
	}

	for _, tt := range tests {
		total := TotalMonthlyCosts([]domain.CostItem{
			{ID: "c1", Amount: decimal.NewFromInt(tt.amount), Frequency: tt.frequency},
		})
		assert.Equal(t, tt.expected, total.StringFixed(2), "frequency %s", tt.frequency)
	}
}

func TestTotalMonthlyCosts_SharedCountsHalf(t *testing.T) {
	total := TotalMonthlyCosts([]domain.CostItem{
		{ID: "el", Amount: decimal.NewFromInt(900), Frequency: domain.FrequencyMonthly, ShareWithOther: true},
	})

	assert.Equal(t, "450.00", total.StringFixed(2))
}

func TestTotalMonthlyCosts_InvalidItemsExcluded(t *testing.T) {
	total := TotalMonthlyCosts([]domain.CostItem{
		{ID: "zero", Amount: decimal.Zero, Frequency: domain.FrequencyMonthly},
		{ID: "bad-freq", Amount: decimal.NewFromInt(100), Frequency: "weekly"},
		{ID: "ok", Amount: decimal.NewFromInt(250), Frequency: domain.FrequencyMonthly},
	})

	assert.Equal(t, "250.00", total.StringFixed(2))
}

func TestTotalMonthlySavings_Summed(t *testing.T) {
	total := TotalMonthlySavings([]domain.SavingsItem{
		{ID: "s1", Amount: decimal.NewFromInt(1000), Frequency: domain.FrequencyMonthly},
		{ID: "s2", Amount: decimal.NewFromInt(6000), Frequency: domain.FrequencyYearly},
	})

	assert.Equal(t, "1500.00", total.StringFixed(2))
}
