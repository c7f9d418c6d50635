// Package util holds small conversion helpers shared by the handler layer.
package util

import "github.com/shopspring/decimal"

// DecimalFromFloatPtr converts an optional JSON number to an optional decimal.
func DecimalFromFloatPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

// Float64PtrFromDecimal converts an optional decimal to an optional JSON
// number. Absent stays absent; it is never rendered as zero.
func Float64PtrFromDecimal(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

// StringPtrFromDecimal renders an optional decimal as an optional string.
func StringPtrFromDecimal(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
