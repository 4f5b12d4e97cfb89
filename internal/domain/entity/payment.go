package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un intento de pago.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Payment representa un intento de cobro de una factura vía la pasarela.
type Payment struct {
	ID            string
	UserID        string
	InvoiceID     string
	Amount        decimal.Decimal
	Currency      string
	Status        string
	TransactionID string // id de la sesión de checkout en la pasarela
	PaymentMethod string // ej: "card"
	PaymentDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
