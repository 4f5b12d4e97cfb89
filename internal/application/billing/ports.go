package billing

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repos de facturación. Cabecera y líneas se escriben siempre juntas.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// CheckoutSession sesión de pago creada en la pasarela externa.
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutGateway puerto hacia la pasarela de pagos. La implementación real
// habla con la API de Stripe; los tests usan un doble.
type CheckoutGateway interface {
	// CreateSession crea una sesión de checkout por el monto dado, asociada
	// al email del pagador, y devuelve id y URL de redirección.
	CreateSession(ctx context.Context, invoiceNumber, currency, customerEmail string, amount decimal.Decimal) (*CheckoutSession, error)
	// GetSession consulta una sesión existente; paid indica si la pasarela
	// la reporta como pagada.
	GetSession(ctx context.Context, sessionID string) (paid bool, err error)
}

// PDFGenerator puerto para generar el PDF de una factura.
type PDFGenerator interface {
	Generate(invoice *entity.Invoice, items []*entity.InvoiceItem, issuer *entity.User) ([]byte, error)
}
