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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, user_id, client_id, invoice_number, status, currency,
	COALESCE(client_email, ''), COALESCE(client_phone, ''), COALESCE(client_company, ''), COALESCE(client_address, ''),
	COALESCE(business_name, ''), COALESCE(business_email, ''), COALESCE(business_phone, ''),
	COALESCE(business_address, ''), COALESCE(business_tax_id, ''),
	invoice_date, due_date,
	subtotal, tax_rate, tax_amount, discount_type, discount_value, discount_amount,
	total_amount, paid_amount, payment_date,
	is_recurring, COALESCE(recurring_interval, ''), recurring_end_date,
	created_at, updated_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste cabecera y líneas. El caller decide la transacción: con un
// pool son dos lotes de inserts; con una tx (vía TxRunner) es atómico.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice, items []*entity.InvoiceItem) error {
	query := `
		INSERT INTO invoices (
			id, user_id, client_id, invoice_number, status, currency,
			client_email, client_phone, client_company, client_address,
			business_name, business_email, business_phone, business_address, business_tax_id,
			invoice_date, due_date,
			subtotal, tax_rate, tax_amount, discount_type, discount_value, discount_amount,
			total_amount, paid_amount, payment_date,
			is_recurring, recurring_interval, recurring_end_date,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14, $15,
			$16, $17,
			$18, $19, $20, $21, $22, $23,
			$24, $25, $26,
			$27, $28, $29,
			$30, $31
		)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.UserID, invoice.ClientID, invoice.InvoiceNumber, invoice.Status, invoice.Currency,
		nullIfEmpty(invoice.ClientEmail), nullIfEmpty(invoice.ClientPhone), nullIfEmpty(invoice.ClientCompany), nullIfEmpty(invoice.ClientAddress),
		nullIfEmpty(invoice.BusinessName), nullIfEmpty(invoice.BusinessEmail), nullIfEmpty(invoice.BusinessPhone),
		nullIfEmpty(invoice.BusinessAddress), nullIfEmpty(invoice.BusinessTaxID),
		invoice.InvoiceDate, invoice.DueDate,
		invoice.Subtotal, invoice.TaxRate, invoice.TaxAmount, invoice.DiscountType, invoice.DiscountValue, invoice.DiscountAmount,
		invoice.TotalAmount, invoice.PaidAmount, invoice.PaymentDate,
		invoice.IsRecurring, nullIfEmpty(invoice.RecurringInterval), invoice.RecurringEndDate,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return r.insertItems(ctx, items)
}

func (r *InvoiceRepo) insertItems(ctx context.Context, items []*entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_price, total_price, item_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, it := range items {
		_, err := r.q.Exec(ctx, query,
			it.ID, it.InvoiceID, it.Description, it.Quantity, it.UnitPrice, it.TotalPrice, it.ItemOrder,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una factura del usuario.
func (r *InvoiceRepo) GetByID(ctx context.Context, userID, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 AND id = $2`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetItems obtiene las líneas de una factura en su orden asignado.
func (r *InvoiceRepo) GetItems(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price, total_price, item_order
		FROM invoice_items WHERE invoice_id = $1 ORDER BY item_order`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitPrice, &it.TotalPrice, &it.ItemOrder); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByUser lista facturas del usuario con filtros opcionales.
func (r *InvoiceRepo) ListByUser(ctx context.Context, userID string, filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1`
	args := []any{userID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		query += fmt.Sprintf(" AND client_id = $%d", len(args))
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY invoice_date DESC, created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Search busca facturas por número (ILIKE).
func (r *InvoiceRepo) Search(ctx context.Context, userID, term string, limit int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices WHERE user_id = $1 AND invoice_number ILIKE $2
		ORDER BY invoice_date DESC LIMIT $3`
	rows, err := r.q.Query(ctx, query, userID, "%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// LastInvoiceNumber devuelve el número de la factura más reciente del usuario
// ("" si aún no tiene facturas).
func (r *InvoiceRepo) LastInvoiceNumber(ctx context.Context, userID string) (string, error) {
	query := `SELECT invoice_number FROM invoices WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`
	var number string
	err := r.q.QueryRow(ctx, query, userID).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last invoice number: %w", err)
	}
	return number, nil
}

// Update reescribe la cabecera y reemplaza todas las líneas.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice, items []*entity.InvoiceItem) error {
	query := `
		UPDATE invoices SET
			client_id = $3, invoice_number = $4, status = $5, currency = $6,
			invoice_date = $7, due_date = $8,
			subtotal = $9, tax_rate = $10, tax_amount = $11,
			discount_type = $12, discount_value = $13, discount_amount = $14,
			total_amount = $15, paid_amount = $16, payment_date = $17,
			is_recurring = $18, recurring_interval = $19, recurring_end_date = $20,
			updated_at = $21
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		invoice.UserID, invoice.ID,
		invoice.ClientID, invoice.InvoiceNumber, invoice.Status, invoice.Currency,
		invoice.InvoiceDate, invoice.DueDate,
		invoice.Subtotal, invoice.TaxRate, invoice.TaxAmount,
		invoice.DiscountType, invoice.DiscountValue, invoice.DiscountAmount,
		invoice.TotalAmount, invoice.PaidAmount, invoice.PaymentDate,
		invoice.IsRecurring, nullIfEmpty(invoice.RecurringInterval), invoice.RecurringEndDate,
		invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, invoice.ID); err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return r.insertItems(ctx, items)
}

// UpdateStatus actualiza solo los campos de estado de pago:
// status, payment_date, paid_amount.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET status = $3, payment_date = $4, paid_amount = $5, updated_at = $6
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		invoice.UserID, invoice.ID, invoice.Status, invoice.PaymentDate, invoice.PaidAmount, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

// Delete elimina una factura y sus líneas.
func (r *InvoiceRepo) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE user_id = $1 AND id = $2`, userID, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.ClientID, &inv.InvoiceNumber, &inv.Status, &inv.Currency,
		&inv.ClientEmail, &inv.ClientPhone, &inv.ClientCompany, &inv.ClientAddress,
		&inv.BusinessName, &inv.BusinessEmail, &inv.BusinessPhone, &inv.BusinessAddress, &inv.BusinessTaxID,
		&inv.InvoiceDate, &inv.DueDate,
		&inv.Subtotal, &inv.TaxRate, &inv.TaxAmount, &inv.DiscountType, &inv.DiscountValue, &inv.DiscountAmount,
		&inv.TotalAmount, &inv.PaidAmount, &inv.PaymentDate,
		&inv.IsRecurring, &inv.RecurringInterval, &inv.RecurringEndDate,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
