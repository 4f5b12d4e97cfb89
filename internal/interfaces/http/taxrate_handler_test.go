package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/freelance-pro/internal/interfaces/http"
)

func TestTaxRateHandler_RegionConocida(t *testing.T) {
	app := fiber.New()
	app.Get("/api/tax-rates", apphttp.NewTaxRateHandler().Get)

	req := httptest.NewRequest(http.MethodGet, "/api/tax-rates?country=US&region=CA", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "7.25", body["rate"])
	assert.Equal(t, "US", body["country"])
	regions, ok := body["regions"].([]any)
	require.True(t, ok)
	assert.Contains(t, regions, "NY")
}

func TestTaxRateHandler_PaisDesconocidoTasaCero(t *testing.T) {
	app := fiber.New()
	app.Get("/api/tax-rates", apphttp.NewTaxRateHandler().Get)

	req := httptest.NewRequest(http.MethodGet, "/api/tax-rates?country=XX", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "0", body["rate"])
}
