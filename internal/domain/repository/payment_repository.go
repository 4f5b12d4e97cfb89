package repository

import (
	"context"

	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, userID, id string) (*entity.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)
	ListByInvoice(ctx context.Context, userID, invoiceID string) ([]*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
}
