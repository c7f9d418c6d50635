package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrLoanNameTooLong         = errors.New("loan name must be 200 characters or less")
	ErrLoanPrincipalInvalid    = errors.New("loan principal must be positive")
	ErrLoanRateInvalid         = errors.New("interest rate must not be negative")
	ErrLoanAmortizationInvalid = errors.New("amortization percent must not be negative")
	ErrLoanRateTypeInvalid     = errors.New("rate type must be variable or fixed")
	ErrTooManyLoans            = errors.New("too many loans")
)

// MaxLoans is the number of loans a household can hold at once.
const MaxLoans = 5

// RateType distinguishes loans exposed to rate shocks from loans insulated
// for a fixed term.
type RateType string

const (
	RateTypeVariable RateType = "variable"
	RateTypeFixed    RateType = "fixed"
)

func (r RateType) Valid() bool {
	return r == RateTypeVariable || r == RateTypeFixed
}

// Loan is one mortgage instrument. Amortization is expressed as a percent of
// principal per year, reduced linearly (no annuity schedule).
type Loan struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Principal          decimal.Decimal `json:"principal"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"`
	AmortizationRate   decimal.Decimal `json:"amortizationRate"`
	RateType           RateType        `json:"rateType"`
	FixedTermYears     *int            `json:"fixedTermYears,omitempty"`
}

func (l *Loan) Validate() error {
	if len(l.Name) > MaxItemNameLength {
		return ErrLoanNameTooLong
	}
	if l.Principal.LessThanOrEqual(decimal.Zero) {
		return ErrLoanPrincipalInvalid
	}
	if l.AnnualInterestRate.IsNegative() {
		return ErrLoanRateInvalid
	}
	if l.AmortizationRate.IsNegative() {
		return ErrLoanAmortizationInvalid
	}
	if !l.RateType.Valid() {
		return ErrLoanRateTypeInvalid
	}
	return nil
}

// IsActive reports whether the loan participates in aggregation. Inactive
// loans are silently excluded rather than failing the whole computation.
func (l *Loan) IsActive() bool {
	return l.Principal.IsPositive() &&
		!l.AnnualInterestRate.IsNegative() &&
		!l.AmortizationRate.IsNegative()
}

// IsVariable reports whether the loan is exposed to rate-shock scenarios.
func (l *Loan) IsVariable() bool {
	return l.RateType != RateTypeFixed
}
