package repository

import (
	"context"

	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
)

// InvoiceFilter filtros opcionales del listado de facturas.
type InvoiceFilter struct {
	Status   string // vacío = todos
	ClientID string // vacío = todos
	Limit    int
	Offset   int
}

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// Las líneas se reemplazan en bloque: la factura es el agregado y las líneas
// no tienen ciclo de vida propio fuera de ella.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice, items []*entity.InvoiceItem) error
	GetByID(ctx context.Context, userID, id string) (*entity.Invoice, error)
	GetItems(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error)
	ListByUser(ctx context.Context, userID string, filter InvoiceFilter) ([]*entity.Invoice, error)
	Search(ctx context.Context, userID, term string, limit int) ([]*entity.Invoice, error)
	// LastInvoiceNumber devuelve el número de la factura más reciente del
	// usuario ("" si no tiene ninguna), para derivar el siguiente consecutivo.
	LastInvoiceNumber(ctx context.Context, userID string) (string, error)
	// Update reescribe la factura y reemplaza todas sus líneas.
	Update(ctx context.Context, invoice *entity.Invoice, items []*entity.InvoiceItem) error
	// UpdateStatus actualiza solo los campos de estado de pago:
	// status, payment_date, paid_amount.
	UpdateStatus(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, userID, id string) error
}
