package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea facturable de una factura.
// TotalPrice es siempre Quantity * UnitPrice; se recalcula en cada mutación
// de cantidad o precio y nunca es autoritativo por sí mismo.
// ItemOrder es 1-based, asignado desde el índice del arreglo al crear; al
// eliminar líneas los huecos se conservan (no hay re-secuenciación).
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	ItemOrder   int
}
