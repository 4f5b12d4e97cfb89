package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/freelance-pro/internal/application/crm"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
)

// ProjectHandler CRUD de proyectos.
type ProjectHandler struct {
	uc *crm.ProjectUseCase
}

func NewProjectHandler(uc *crm.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create maneja POST /api/projects.
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List maneja GET /api/projects.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
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

// Get maneja GET /api/projects/:id.
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Update maneja PUT /api/projects/:id.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Delete maneja DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "proyecto eliminado"})
}
