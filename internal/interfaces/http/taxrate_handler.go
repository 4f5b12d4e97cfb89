package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/freelance-pro/internal/domain/billing"
)

// TaxRateHandler tabla constante de tasas de impuesto por país/región.
type TaxRateHandler struct{}

func NewTaxRateHandler() *TaxRateHandler { return &TaxRateHandler{} }

// Get maneja GET /api/tax-rates?country=US&region=CA. Sin región devuelve
// la tasa por defecto del país; incluye la lista de regiones conocidas.
func (h *TaxRateHandler) Get(c *fiber.Ctx) error {
	country := c.Query("country", "US")
	region := c.Query("region")
	return c.JSON(fiber.Map{
		"country": country,
		"region":  region,
		"rate":    billing.TaxRateFor(country, region),
		"regions": billing.RegionsFor(country),
	})
}
