package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/freelance-pro/internal/application/crm"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
)

// ClientHandler CRUD de clientes del freelance.
type ClientHandler struct {
	uc *crm.ClientUseCase
}

func NewClientHandler(uc *crm.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create maneja POST /api/clients.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List maneja GET /api/clients.
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	resp, err := h.uc.List(c.Context(), GetUserID(c), page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Get maneja GET /api/clients/:id.
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Update maneja PUT /api/clients/:id.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Delete maneja DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado"})
}
