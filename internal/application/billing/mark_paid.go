package billing

import (
	"context"
	"time"

	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

// MarkPaidUseCase concilia el pago de una factura. La única protección contra
// doble marcado es la verificación de estado: si la factura ya está en "paid"
// la operación es un no-op sin escrituras. No hay lock de vuelo; dos
// confirmaciones simultáneas convergen al mismo estado final.
type MarkPaidUseCase struct {
	invoiceRepo repository.InvoiceRepository
	now         func() time.Time
}

// NewMarkPaidUseCase construye el caso de uso.
func NewMarkPaidUseCase(invoiceRepo repository.InvoiceRepository) *MarkPaidUseCase {
	return &MarkPaidUseCase{invoiceRepo: invoiceRepo, now: time.Now}
}

// MarkPaidIfUnpaid marca la factura como pagada si aún no lo está:
// status=paid, payment_date=ahora y paid_amount=total_amount, en una sola
// escritura de estado. Tras persistir se relee la factura para devolver lo
// que realmente quedó en la base.
func (uc *MarkPaidUseCase) MarkPaidIfUnpaid(ctx context.Context, userID, invoiceID string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	if !invoice.IsPaid() {
		now := uc.now()
		invoice.Status = entity.InvoiceStatusPaid
		invoice.PaymentDate = &now
		invoice.PaidAmount = invoice.TotalAmount
		invoice.UpdatedAt = now
		if err := uc.invoiceRepo.UpdateStatus(ctx, invoice); err != nil {
			return nil, err
		}
		// Relectura tras escribir: la respuesta refleja la base, no la copia
		// en memoria.
		invoice, err = uc.invoiceRepo.GetByID(ctx, userID, invoiceID)
		if err != nil {
			return nil, err
		}
		if invoice == nil {
			return nil, domain.ErrNotFound
		}
	}

	items, err := uc.invoiceRepo.GetItems(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items, ""), nil
}
