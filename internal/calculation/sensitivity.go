package calculation

import (
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultRateShockDelta is the rate shock applied when the caller does not
// ask for a specific delta, in percentage points.
var DefaultRateShockDelta = decimal.NewFromInt(2)

// AnalyzeRateSensitivity computes the total monthly loan cost under a
// symmetric rate shock of delta percentage points. Only variable-rate loans
// are shocked; fixed-rate loans keep their interest unchanged. The result is
// absent (nil) when delta is negative or when no variable-rate loan with
// positive principal exists, so callers can tell "no sensitivity to show"
// apart from "zero sensitivity computed".
func AnalyzeRateSensitivity(active []domain.Loan, delta decimal.Decimal) *domain.RateSensitivity {
	if delta.IsNegative() {
		return nil
	}

	exposed := false
	for _, l := range active {
		if l.IsVariable() && l.Principal.IsPositive() {
			exposed = true
			break
		}
	}
	if !exposed {
		return nil
	}

	baseline := decimal.Zero
	for _, l := range active {
		baseline = baseline.Add(LoanCost(l).TotalMonthlyCost)
	}

	shifted := func(signedDelta decimal.Decimal) domain.SensitivityOutcome {
		total := decimal.Zero
		for _, l := range active {
			total = total.Add(ShiftedLoanCost(l, signedDelta).TotalMonthlyCost)
		}
		return domain.SensitivityOutcome{
			TotalMonthlyCost: total,
			Difference:       total.Sub(baseline),
		}
	}

	return &domain.RateSensitivity{
		DeltaPercent: delta,
		Increase:     shifted(delta),
		Decrease:     shifted(delta.Neg()),
	}
}
