package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/freelance-pro/internal/application/auth"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
)

// AuthHandler expone registro, login y perfil.
type AuthHandler struct {
	uc *auth.UseCase
}

func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register maneja POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.Register(c.Context(), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login maneja POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.Login(c.Context(), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Profile maneja GET /api/me.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	resp, err := h.uc.GetProfile(c.Context(), GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// UpdateProfile maneja PUT /api/me.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.UpdateProfile(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}
