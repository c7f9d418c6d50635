package util

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromFloatPtr(t *testing.T) {
	assert.Nil(t, DecimalFromFloatPtr(nil))

	f := 42.5
	d := DecimalFromFloatPtr(&f)
	require.NotNil(t, d)
	assert.Equal(t, "42.5", d.String())
}

func TestFloat64PtrFromDecimal(t *testing.T) {
	assert.Nil(t, Float64PtrFromDecimal(nil))

	d := decimal.RequireFromString("0.625")
	f := Float64PtrFromDecimal(&d)
	require.NotNil(t, f)
	assert.Equal(t, 0.625, *f)
}

func TestStringPtrFromDecimal(t *testing.T) {
	assert.Nil(t, StringPtrFromDecimal(nil))

	d := decimal.NewFromInt(100)
	s := StringPtrFromDecimal(&d)
	require.NotNil(t, s)
	assert.Equal(t, "100", *s)
}
