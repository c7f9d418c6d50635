package calculation

import (
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Forecast horizon bounds in years.
const (
	MinForecastYears = 1
	MaxForecastYears = 40
)

func clampForecastYears(years int) int {
	if years < MinForecastYears {
		return MinForecastYears
	}
	if years > MaxForecastYears {
		return MaxForecastYears
	}
	return years
}

// ForecastAmortization projects the remaining principal year by year under a
// linear, non-compounding reduction: each year removes the same fixed slice
// of the starting principal, floored at zero. Interest is never capitalized
// in this model. Row zero carries the starting principal. The forecast is nil
// (not a flat line) when the amortization percent or principal is not
// positive; loan-to-value is attached per row when a property value is known.
func ForecastAmortization(startingPrincipal, annualPercent decimal.Decimal, years int, propertyValue *decimal.Decimal) []domain.ForecastRow {
	if !startingPrincipal.IsPositive() || !annualPercent.IsPositive() {
		return nil
	}

	years = clampForecastYears(years)
	yearlyReduction := startingPrincipal.Mul(annualPercent).Div(hundred)

	withLTV := propertyValue != nil && propertyValue.IsPositive()

	rows := make([]domain.ForecastRow, 0, years+1)
	remaining := startingPrincipal
	for year := 0; year <= years; year++ {
		if year > 0 {
			remaining = decimal.Max(remaining.Sub(yearlyReduction), decimal.Zero)
		}
		row := domain.ForecastRow{Year: year, RemainingPrincipal: remaining}
		if withLTV {
			ltv := remaining.Div(*propertyValue)
			row.LoanToValue = &ltv
		}
		rows = append(rows, row)
	}
	return rows
}
