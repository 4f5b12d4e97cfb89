package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. "paid" es terminal: solo lo asigna el caso de uso
// de conciliación (MarkPaidIfUnpaid) y nunca se revierte. "overdue" lo decide
// un proceso externo basado en la fecha de vencimiento; aquí solo se persiste.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Monedas soportadas.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyINR = "INR"
)

// Intervalos de recurrencia.
const (
	RecurringMonthly   = "monthly"
	RecurringQuarterly = "quarterly"
	RecurringYearly    = "yearly"
)

// Invoice representa la cabecera de una factura con sus totales derivados.
// Los cuatro totales (Subtotal, DiscountAmount, TaxAmount, TotalAmount) se
// derivan siempre juntos desde las líneas (billing.Calculate); nunca se
// actualizan de forma parcial. PaidAmount es independiente: lo fija el flujo
// de confirmación de pago, no el cálculo.
type Invoice struct {
	ID            string
	UserID        string
	ClientID      string
	InvoiceNumber string
	Status        string
	Currency      string

	// Datos de contacto congelados al emitir (no referencias vivas al cliente).
	ClientEmail   string
	ClientPhone   string
	ClientCompany string
	ClientAddress string

	BusinessName    string
	BusinessEmail   string
	BusinessPhone   string
	BusinessAddress string
	BusinessTaxID   string

	InvoiceDate time.Time
	DueDate     time.Time

	Subtotal       decimal.Decimal
	TaxRate        decimal.Decimal // porcentaje 0-100
	TaxAmount      decimal.Decimal
	DiscountType   string // percentage | fixed
	DiscountValue  decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PaidAmount     decimal.Decimal
	PaymentDate    *time.Time

	IsRecurring       bool
	RecurringInterval string // monthly | quarterly | yearly (vacío si no aplica)
	RecurringEndDate  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPaid indica si la factura ya está en estado terminal.
func (i *Invoice) IsPaid() bool { return i.Status == InvoiceStatusPaid }
