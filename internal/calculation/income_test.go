package calculation

import (
	"testing"

	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateIncome_SinglePerson(t *testing.T) {
	summary := AggregateIncome([]domain.Person{
		{
			ID:                 "p1",
			Name:               "Alex",
			GrossMonthlyIncome: decimal.NewFromInt(40000),
			TaxTable:           30,
		},
	})

	require.Len(t, summary.Persons, 1)
	assert.True(t, summary.Known)
	assert.Equal(t, "40000.00", summary.Persons[0].Taxable.StringFixed(2))
	assert.Equal(t, "12000.00", summary.Persons[0].Tax.StringFixed(2))
	assert.Equal(t, "28000.00", summary.Persons[0].Net.StringFixed(2))
	assert.Equal(t, "28000.00", summary.TotalNet.StringFixed(2))
}

func TestAggregateIncome_PreTaxDeductionReducesTaxable(t *testing.T) {
	summary := AggregateIncome([]domain.Person{
		{
			ID:                 "p1",
			GrossMonthlyIncome: decimal.NewFromInt(40000),
			TaxTable:           30,
			PreTaxDeduction:    decimal.NewFromInt(5000),
		},
	})

	require.Len(t, summary.Persons, 1)
	assert.Equal(t, "35000.00", summary.Persons[0].Taxable.StringFixed(2))
	assert.Equal(t, "24500.00", summary.Persons[0].Net.StringFixed(2))
	assert.Equal(t, "5000.00", summary.TotalDeduction.StringFixed(2))
}

func TestAggregateIncome_DeductionLargerThanGross_TaxableFlooredAtZero(t *testing.T) {
	summary := AggregateIncome([]domain.Person{
		{
			ID:                 "p1",
			GrossMonthlyIncome: decimal.NewFromInt(10000),
			TaxTable:           31,
			PreTaxDeduction:    decimal.NewFromInt(20000),
		},
	})

	require.Len(t, summary.Persons, 1)
	assert.True(t, summary.Persons[0].Taxable.IsZero())
	assert.True(t, summary.Persons[0].Net.IsZero())
	assert.False(t, summary.Known, "zero net income must be reported as unknown, not zero")
}

func TestAggregateIncome_TwoPersons_Summed(t *testing.T) {
	summary := AggregateIncome([]domain.Person{
		{ID: "p1", GrossMonthlyIncome: decimal.NewFromInt(30000), TaxTable: 29},
		{ID: "p2", GrossMonthlyIncome: decimal.NewFromInt(20000), TaxTable: 34},
	})

	require.Len(t, summary.Persons, 2)
	assert.True(t, summary.Known)
	assert.Equal(t, "50000.00", summary.TotalGross.StringFixed(2))
	// 30000*0.71 + 20000*0.66
	assert.Equal(t, "34500.00", summary.TotalNet.StringFixed(2))
	assert.Equal(t, "15500.00", summary.TotalTax.StringFixed(2))
}

func TestAggregateIncome_UnknownTaxTableFallsBackToDefault(t *testing.T) {
	summary := AggregateIncome([]domain.Person{
		{ID: "p1", GrossMonthlyIncome: decimal.NewFromInt(10000), TaxTable: 99},
	})

	require.Len(t, summary.Persons, 1)
	// Default table 31
	assert.Equal(t, "3100.00", summary.Persons[0].Tax.StringFixed(2))
}

func TestAggregateIncome_NegativeGrossExcluded(t *testing.T) {
	summary := AggregateIncome([]domain.Person{
		{ID: "p1", GrossMonthlyIncome: decimal.NewFromInt(-1), TaxTable: 30},
		{ID: "p2", GrossMonthlyIncome: decimal.NewFromInt(25000), TaxTable: 30},
	})

	require.Len(t, summary.Persons, 1)
	assert.Equal(t, "p2", summary.Persons[0].PersonID)
	assert.True(t, summary.Known)
}

func TestAggregateIncome_NoPersons_Unknown(t *testing.T) {
	summary := AggregateIncome(nil)

	assert.Empty(t, summary.Persons)
	assert.False(t, summary.Known)
	assert.True(t, summary.TotalNet.IsZero())
}
