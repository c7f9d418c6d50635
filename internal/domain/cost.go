package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrCostAmountInvalid    = errors.New("amount must be positive")
	ErrCostFrequencyInvalid = errors.New("unknown frequency")
)

// Frequency is how often a recurring cost or savings contribution is paid.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyTerm      Frequency = "term"   // every 6 months
	FrequencySeason    Frequency = "season" // every 4 months
)

// Divisor returns the number of months one payment covers, i.e. the divisor
// that converts the amount to its monthly equivalent.
func (f Frequency) Divisor() (int64, bool) {
	switch f {
	case FrequencyMonthly:
		return 1, true
	case FrequencyQuarterly:
		return 3, true
	case FrequencyYearly:
		return 12, true
	case FrequencyTerm:
		return 6, true
	case FrequencySeason:
		return 4, true
	}
	return 0, false
}

// CostItem is a recurring household cost. Shared items are split with the
// other household, so only half counts toward this budget.
type CostItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	Frequency      Frequency       `json:"frequency"`
	ShareWithOther bool            `json:"shareWithOther"`
}

func (c *CostItem) Validate() error {
	if len(c.Name) > MaxItemNameLength {
		return ErrNameTooLong
	}
	if c.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrCostAmountInvalid
	}
	if _, ok := c.Frequency.Divisor(); !ok {
		return ErrCostFrequencyInvalid
	}
	return nil
}

// IsActive reports whether the item participates in aggregation.
func (c *CostItem) IsActive() bool {
	_, ok := c.Frequency.Divisor()
	return ok && c.Amount.IsPositive()
}

// MonthlyEquivalent returns the amount spread over the months the payment
// covers. Zero for inactive items.
func (c *CostItem) MonthlyEquivalent() decimal.Decimal {
	div, ok := c.Frequency.Divisor()
	if !ok || !c.Amount.IsPositive() {
		return decimal.Zero
	}
	return c.Amount.Div(decimal.NewFromInt(div))
}

// SavingsItem is a recurring savings contribution.
type SavingsItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency Frequency       `json:"frequency"`
}

func (s *SavingsItem) Validate() error {
	if len(s.Name) > MaxItemNameLength {
		return ErrNameTooLong
	}
	if s.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrCostAmountInvalid
	}
	if _, ok := s.Frequency.Divisor(); !ok {
		return ErrCostFrequencyInvalid
	}
	return nil
}

// IsActive reports whether the item participates in aggregation.
func (s *SavingsItem) IsActive() bool {
	_, ok := s.Frequency.Divisor()
	return ok && s.Amount.IsPositive()
}

// MonthlyEquivalent returns the contribution spread over the months one
// payment covers. Zero for inactive items.
func (s *SavingsItem) MonthlyEquivalent() decimal.Decimal {
	div, ok := s.Frequency.Divisor()
	if !ok || !s.Amount.IsPositive() {
		return decimal.Zero
	}
	return s.Amount.Div(decimal.NewFromInt(div))
}
