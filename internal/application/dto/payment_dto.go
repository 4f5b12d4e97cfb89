package dto

import "github.com/shopspring/decimal"

// CheckoutRequest body para POST /api/invoices/:id/checkout.
type CheckoutRequest struct {
	// Amount opcional: si va en cero se cobra el total de la factura.
	Amount decimal.Decimal `json:"amount,omitempty"`
}

// CheckoutResponse sesión de pago creada en la pasarela.
type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// ConfirmPaymentRequest body para POST /api/payments/confirm (retorno de la
// pasarela tras un checkout exitoso).
type ConfirmPaymentRequest struct {
	SessionID string `json:"session_id"`
}

// PaymentResponse intento de pago en respuestas.
type PaymentResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	PaymentDate   string          `json:"payment_date,omitempty"`
}
