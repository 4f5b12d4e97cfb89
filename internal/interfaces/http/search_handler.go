package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/application/search"
)

// SearchHandler búsqueda global sobre clientes, proyectos y facturas.
type SearchHandler struct {
	uc *search.UseCase
}

func NewSearchHandler(uc *search.UseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search maneja GET /api/search?q=<término>.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	resp, err := h.uc.Search(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}
