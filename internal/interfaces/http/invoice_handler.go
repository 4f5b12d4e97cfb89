package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/freelance-pro/internal/application/billing"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
)

// InvoiceHandler facturación: CRUD, marcado de pago y PDF.
type InvoiceHandler struct {
	uc       *billing.InvoiceUseCase
	markPaid *billing.MarkPaidUseCase
	pdf      *billing.PDFUseCase
}

func NewInvoiceHandler(uc *billing.InvoiceUseCase, markPaid *billing.MarkPaidUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, markPaid: markPaid, pdf: pdf}
}

// Create maneja POST /api/invoices. Los totales se calculan siempre en el
// servidor; el cliente solo envía líneas, impuesto y descuento.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List maneja GET /api/invoices con filtros status y client_id.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var req dto.ListInvoicesRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	resp, err := h.uc.List(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Get maneja GET /api/invoices/:id (incluye líneas).
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Update maneja PUT /api/invoices/:id. Si líneas y configuración no
// cambiaron, no se escribe nada y se devuelve la factura tal cual.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	resp, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Delete maneja DELETE /api/invoices/:id (las pagadas no se borran).
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "factura eliminada"})
}

// MarkPaid maneja POST /api/invoices/:id/mark-paid. Idempotente: una
// factura ya pagada se devuelve sin escribir nada.
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	resp, err := h.markPaid.MarkPaidIfUnpaid(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// DownloadPDF maneja GET /api/invoices/:id/pdf.
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
