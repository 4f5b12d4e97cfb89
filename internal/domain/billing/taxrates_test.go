package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTaxRateFor(t *testing.T) {
	assert.True(t, TaxRateFor("US", "NY").Equal(decimal.NewFromFloat(8.875)))
	assert.True(t, TaxRateFor("US", "").IsZero(), "US sin región no tiene impuesto federal")
	assert.True(t, TaxRateFor("EU", "DE").Equal(decimal.NewFromInt(19)))
	assert.True(t, TaxRateFor("EU", "ZZ").Equal(decimal.NewFromInt(20)), "región desconocida cae al default del país")
	assert.True(t, TaxRateFor("IN", "").Equal(decimal.NewFromInt(18)))
	assert.True(t, TaxRateFor("XX", "YY").IsZero(), "país desconocido es 0")
}

func TestRegionsFor(t *testing.T) {
	assert.Equal(t, []string{"CA", "FL", "NY", "TX"}, RegionsFor("US"))
	assert.Nil(t, RegionsFor("XX"))
}
