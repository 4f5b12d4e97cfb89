package billing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// taxRates tabla de tasas de impuesto por país y región. La clave "DEFAULT"
// es la tasa del país cuando no se indica región.
var taxRates = map[string]map[string]decimal.Decimal{
	"US": {
		"DEFAULT": decimal.Zero,
		"CA":      decimal.NewFromFloat(7.25),
		"NY":      decimal.NewFromFloat(8.875),
		"TX":      decimal.NewFromFloat(6.25),
		"FL":      decimal.NewFromFloat(6.0),
	},
	"EU": {
		"DEFAULT": decimal.NewFromInt(20),
		"DE":      decimal.NewFromInt(19),
		"FR":      decimal.NewFromInt(20),
		"IT":      decimal.NewFromInt(22),
		"ES":      decimal.NewFromInt(21),
	},
	"IN": {
		"DEFAULT": decimal.NewFromInt(18),
		"REDUCED": decimal.NewFromInt(12),
		"LOW":     decimal.NewFromInt(5),
	},
}

// TaxRateFor devuelve la tasa para país/región. País desconocido o región
// desconocida caen a la tasa por defecto (0 si el país tampoco existe).
func TaxRateFor(country, region string) decimal.Decimal {
	rates, ok := taxRates[country]
	if !ok {
		return decimal.Zero
	}
	if region == "" {
		return rates["DEFAULT"]
	}
	if r, ok := rates[region]; ok {
		return r
	}
	return rates["DEFAULT"]
}

// RegionsFor lista las regiones con tasa propia de un país (sin DEFAULT),
// ordenadas para respuestas estables.
func RegionsFor(country string) []string {
	rates, ok := taxRates[country]
	if !ok {
		return nil
	}
	regions := make([]string, 0, len(rates))
	for k := range rates {
		if k == "DEFAULT" {
			continue
		}
		regions = append(regions, k)
	}
	sort.Strings(regions)
	return regions
}
