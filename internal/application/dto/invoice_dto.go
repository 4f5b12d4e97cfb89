package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest línea de factura en los bodies de creación/edición.
// TotalPrice no se acepta del cliente: siempre se deriva en el servidor.
// ItemOrder se asigna en la creación (posición base 1); en ediciones el
// cliente reenvía el orden original de cada línea superviviente, por lo que
// quitar una línea deja huecos en la numeración y no se re-secuencia.
type InvoiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	ItemOrder   int             `json:"item_order,omitempty"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// Los totales nunca viajan en el request: el servidor los recalcula a partir
// de las líneas, impuesto y descuento. InvoiceNumber opcional; si va vacío se
// genera el consecutivo.
type CreateInvoiceRequest struct {
	ClientID          string               `json:"client_id"`
	InvoiceNumber     string               `json:"invoice_number,omitempty"`
	Status            string               `json:"status,omitempty"` // default draft
	Currency          string               `json:"currency,omitempty"`
	InvoiceDate       string               `json:"invoice_date,omitempty"` // YYYY-MM-DD, default hoy
	PaymentTermDays   int                  `json:"payment_term_days,omitempty"`
	DueDate           string               `json:"due_date,omitempty"` // si va vacío: invoice_date + término
	Items             []InvoiceItemRequest `json:"items"`
	TaxRate           decimal.Decimal      `json:"tax_rate,omitempty"`
	DiscountType      string               `json:"discount_type,omitempty"` // percentage|fixed
	DiscountValue     decimal.Decimal      `json:"discount_value,omitempty"`
	IsRecurring       bool                 `json:"is_recurring,omitempty"`
	RecurringInterval string               `json:"recurring_interval,omitempty"` // monthly|quarterly|yearly
	RecurringEndDate  string               `json:"recurring_end_date,omitempty"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id. Mismo contrato que la
// creación: las líneas reemplazan a las existentes y los totales se recalculan.
type UpdateInvoiceRequest = CreateInvoiceRequest

// InvoiceItemResponse línea de factura en respuestas.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	ItemOrder   int             `json:"item_order"`
}

// InvoiceResponse factura completa para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID                string                `json:"id"`
	ClientID          string                `json:"client_id"`
	ClientName        string                `json:"client_name,omitempty"`
	InvoiceNumber     string                `json:"invoice_number"`
	Status            string                `json:"status"`
	Currency          string                `json:"currency"`
	InvoiceDate       string                `json:"invoice_date"`
	DueDate           string                `json:"due_date"`
	Items             []InvoiceItemResponse `json:"items"`
	Subtotal          decimal.Decimal       `json:"subtotal"`
	TaxRate           decimal.Decimal       `json:"tax_rate"`
	TaxAmount         decimal.Decimal       `json:"tax_amount"`
	DiscountType      string                `json:"discount_type"`
	DiscountValue     decimal.Decimal       `json:"discount_value"`
	DiscountAmount    decimal.Decimal       `json:"discount_amount"`
	TotalAmount       decimal.Decimal       `json:"total_amount"`
	PaidAmount        decimal.Decimal       `json:"paid_amount"`
	PaymentDate       string                `json:"payment_date,omitempty"`
	IsRecurring       bool                  `json:"is_recurring"`
	RecurringInterval string                `json:"recurring_interval,omitempty"`
	RecurringEndDate  string                `json:"recurring_end_date,omitempty"`
	CreatedAt         string                `json:"created_at"`
}

// InvoiceListItem proyección ligera para GET /api/invoices.
type InvoiceListItem struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Status        string          `json:"status"`
	Currency      string          `json:"currency"`
	InvoiceDate   string          `json:"invoice_date"`
	DueDate       string          `json:"due_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
}

// ListInvoicesRequest filtros del listado.
type ListInvoicesRequest struct {
	PageRequest
	Status   string `query:"status"`
	ClientID string `query:"client_id"`
}
