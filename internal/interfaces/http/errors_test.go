package http

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain"
)

func respuestaDeError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return mapDomainError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestMapDomainError_ErroresConocidos(t *testing.T) {
	status, body := respuestaDeError(t, domain.ErrNotFound)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)

	status, body = respuestaDeError(t, domain.ErrTimerRunning)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body.Code)
}

func TestMapDomainError_NoFiltraDetalleInterno(t *testing.T) {
	// Un fallo de infraestructura sin clasificar responde 500 con un mensaje
	// fijo; el detalle queda solo en el log.
	status, body := respuestaDeError(t, errors.New("pgx: conexión rechazada por 10.0.0.5"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message)
	assert.NotContains(t, body.Message, "pgx")
}
