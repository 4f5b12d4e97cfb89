package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/freelance-pro/internal/application/analytics"
)

// DashboardHandler resumen financiero del negocio.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary maneja GET /api/dashboard.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	resp, err := h.uc.GetSummary(c.Context(), GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}
