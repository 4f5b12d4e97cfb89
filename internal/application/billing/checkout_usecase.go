package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

// CheckoutUseCase cobra facturas vía la pasarela: crea la sesión de checkout
// y, al volver el pagador, confirma la sesión y concilia la factura.
type CheckoutUseCase struct {
	gateway     CheckoutGateway
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	markPaid    *MarkPaidUseCase
	now         func() time.Time
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	gateway CheckoutGateway,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	markPaid *MarkPaidUseCase,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		gateway:     gateway,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		markPaid:    markPaid,
		now:         time.Now,
	}
}

// CreateCheckout crea una sesión de pago por el monto dado (o el total de la
// factura si el monto va en cero). Montos negativos o cero explícitos se
// rechazan; una factura pagada no se vuelve a cobrar. Registra el intento
// como Payment en estado pending con el id de sesión como transaction_id.
func (uc *CheckoutUseCase) CreateCheckout(ctx context.Context, userID, invoiceID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.IsPaid() {
		return nil, domain.ErrConflict
	}

	amount := in.Amount
	if amount.IsZero() {
		amount = invoice.TotalAmount
	}
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	// La pasarela exige el email del pagador para la sesión.
	if invoice.ClientEmail == "" {
		return nil, domain.ErrInvalidInput
	}

	session, err := uc.gateway.CreateSession(ctx, invoice.InvoiceNumber, invoice.Currency, invoice.ClientEmail, amount)
	if err != nil {
		return nil, domain.ErrPaymentGateway
	}

	now := uc.now()
	payment := &entity.Payment{
		ID:            uuid.New().String(),
		UserID:        userID,
		InvoiceID:     invoice.ID,
		Amount:        amount,
		Currency:      invoice.Currency,
		Status:        entity.PaymentStatusPending,
		TransactionID: session.ID,
		PaymentMethod: "card",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{SessionID: session.ID, CheckoutURL: session.URL}, nil
}

// ConfirmPayment procesa el retorno de la pasarela: verifica la sesión, marca
// el Payment como pagado y concilia la factura con MarkPaidIfUnpaid. Repetir
// la confirmación de una sesión ya procesada es inocuo.
func (uc *CheckoutUseCase) ConfirmPayment(ctx context.Context, userID string, in dto.ConfirmPaymentRequest) (*dto.PaymentResponse, error) {
	if in.SessionID == "" {
		return nil, domain.ErrInvalidInput
	}
	payment, err := uc.paymentRepo.GetByTransactionID(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if payment.Status != entity.PaymentStatusPaid {
		paid, err := uc.gateway.GetSession(ctx, in.SessionID)
		if err != nil {
			return nil, domain.ErrPaymentGateway
		}
		now := uc.now()
		if !paid {
			payment.Status = entity.PaymentStatusFailed
			payment.UpdatedAt = now
			if err := uc.paymentRepo.Update(ctx, payment); err != nil {
				return nil, err
			}
			return toPaymentResponse(payment), nil
		}
		payment.Status = entity.PaymentStatusPaid
		payment.PaymentDate = &now
		payment.UpdatedAt = now
		if err := uc.paymentRepo.Update(ctx, payment); err != nil {
			return nil, err
		}
		if _, err := uc.markPaid.MarkPaidIfUnpaid(ctx, userID, payment.InvoiceID); err != nil {
			return nil, err
		}
	}
	return toPaymentResponse(payment), nil
}

// ListByInvoice devuelve los intentos de pago de una factura.
func (uc *CheckoutUseCase) ListByInvoice(ctx context.Context, userID, invoiceID string) ([]dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.ListByInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	res := &dto.PaymentResponse{
		ID:            p.ID,
		InvoiceID:     p.InvoiceID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		PaymentMethod: p.PaymentMethod,
	}
	if p.PaymentDate != nil {
		res.PaymentDate = p.PaymentDate.Format(time.RFC3339)
	}
	return res
}
