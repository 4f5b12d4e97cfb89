package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/application/tracking"
)

// TimeTrackingHandler cronómetro y registros manuales de tiempo.
type TimeTrackingHandler struct {
	uc *tracking.UseCase
}

func NewTimeTrackingHandler(uc *tracking.UseCase) *TimeTrackingHandler {
	return &TimeTrackingHandler{uc: uc}
}

// Start maneja POST /api/time-entries/start. Solo puede haber un
// cronómetro activo por usuario.
func (h *TimeTrackingHandler) Start(c *fiber.Ctx) error {
	var req dto.StartTimerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.Start(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Stop maneja POST /api/time-entries/stop.
func (h *TimeTrackingHandler) Stop(c *fiber.Ctx) error {
	resp, err := h.uc.Stop(c.Context(), GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Create maneja POST /api/time-entries (registro manual).
func (h *TimeTrackingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTimeEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.CreateManual(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List maneja GET /api/time-entries con rango from/to.
func (h *TimeTrackingHandler) List(c *fiber.Ctx) error {
	var req dto.ListTimeEntriesRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	resp, err := h.uc.List(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Delete maneja DELETE /api/time-entries/:id.
func (h *TimeTrackingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "registro eliminado"})
}
