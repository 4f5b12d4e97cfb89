package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, user_id, invoice_id, amount, currency, status,
	COALESCE(transaction_id, ''), COALESCE(payment_method, ''), payment_date, created_at, updated_at`

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un intento de pago.
func (r *PaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, user_id, invoice_id, amount, currency, status, transaction_id, payment_method, payment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		payment.ID, payment.UserID, payment.InvoiceID, payment.Amount, payment.Currency, payment.Status,
		nullIfEmpty(payment.TransactionID), nullIfEmpty(payment.PaymentMethod), payment.PaymentDate,
		payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago del usuario.
func (r *PaymentRepo) GetByID(ctx context.Context, userID, id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, userID, id))
}

// GetByTransactionID obtiene un pago por el id de sesión de la pasarela.
func (r *PaymentRepo) GetByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, transactionID))
}

func (r *PaymentRepo) scanOne(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.UserID, &p.InvoiceID, &p.Amount, &p.Currency, &p.Status,
		&p.TransactionID, &p.PaymentMethod, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByInvoice lista los pagos de una factura, del más reciente al más viejo.
func (r *PaymentRepo) ListByInvoice(ctx context.Context, userID, invoiceID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments WHERE user_id = $1 AND invoice_id = $2 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, userID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.InvoiceID, &p.Amount, &p.Currency, &p.Status,
			&p.TransactionID, &p.PaymentMethod, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza estado y fecha de pago de un intento.
func (r *PaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	query := `
		UPDATE payments SET status = $2, payment_date = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, payment.ID, payment.Status, payment.PaymentDate, payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}
