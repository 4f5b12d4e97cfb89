package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/freelance-pro/internal/application/billing"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
)

// PaymentHandler cobros en línea vía la pasarela de checkout.
type PaymentHandler struct {
	uc *billing.CheckoutUseCase
}

func NewPaymentHandler(uc *billing.CheckoutUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateCheckout maneja POST /api/invoices/:id/checkout.
func (h *PaymentHandler) CreateCheckout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	// El body es opcional: sin monto se cobra el total de la factura.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
		}
	}
	resp, err := h.uc.CreateCheckout(c.Context(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Confirm maneja POST /api/payments/confirm. Consulta la sesión en la
// pasarela y, si está pagada, reconcilia la factura.
func (h *PaymentHandler) Confirm(c *fiber.Ctx) error {
	var req dto.ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.ConfirmPayment(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// ListByInvoice maneja GET /api/invoices/:id/payments.
func (h *PaymentHandler) ListByInvoice(c *fiber.Ctx) error {
	resp, err := h.uc.ListByInvoice(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}
