package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrPersonNameTooLong  = errors.New("person name must be 200 characters or less")
	ErrPersonGrossInvalid = errors.New("gross monthly income must not be negative")
)

// Tax table bounds. Swedish withholding tables 29-34 map to flat rates
// 0.29-0.34 in this model.
const (
	MinTaxTable     = 29
	MaxTaxTable     = 34
	DefaultTaxTable = 31
)

// Person is one household member contributing income.
type Person struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	GrossMonthlyIncome decimal.Decimal `json:"grossMonthlyIncome"`
	TaxTable           int             `json:"taxTable"`
	PreTaxDeduction    decimal.Decimal `json:"preTaxDeduction"`
}

func (p *Person) Validate() error {
	if len(p.Name) > MaxItemNameLength {
		return ErrPersonNameTooLong
	}
	if p.GrossMonthlyIncome.IsNegative() {
		return ErrPersonGrossInvalid
	}
	return nil
}

// TaxRate resolves the person's tax table to a flat withholding rate.
// Unknown tables fall back to the default table.
func (p *Person) TaxRate() decimal.Decimal {
	return TaxTableRate(p.TaxTable)
}

// TaxTableRate returns the flat rate for a tax table id. Table 29 is 29%,
// table 34 is 34%; ids outside the range resolve to the default table.
func TaxTableRate(table int) decimal.Decimal {
	if table < MinTaxTable || table > MaxTaxTable {
		table = DefaultTaxTable
	}
	return decimal.New(int64(table), -2)
}
