package billing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
)

func nuevoCheckoutUC(invRepo *fakeInvoiceRepo, payRepo *fakePaymentRepo, gw *fakeGateway) *CheckoutUseCase {
	return NewCheckoutUseCase(gw, invRepo, payRepo, NewMarkPaidUseCase(invRepo))
}

func TestCreateCheckout_CreaSesionYPagoPendiente(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	sembrarFactura(invRepo, "user-1")
	payRepo := newFakePaymentRepo()
	gw := newFakeGateway()
	uc := nuevoCheckoutUC(invRepo, payRepo, gw)

	res, err := uc.CreateCheckout(context.Background(), "user-1", "inv-1", dto.CheckoutRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionID)
	assert.Contains(t, res.CheckoutURL, res.SessionID)
	assert.Equal(t, 1, payRepo.createCalls)

	p, _ := payRepo.GetByTransactionID(context.Background(), res.SessionID)
	require.NotNil(t, p)
	assert.Equal(t, entity.PaymentStatusPending, p.Status)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("94.50")), "sin monto explícito se cobra el total")
}

func TestCreateCheckout_RechazaMontoNoPositivo(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	sembrarFactura(invRepo, "user-1")
	uc := nuevoCheckoutUC(invRepo, newFakePaymentRepo(), newFakeGateway())

	_, err := uc.CreateCheckout(context.Background(), "user-1", "inv-1", dto.CheckoutRequest{
		Amount: decimal.RequireFromString("-10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCheckout_RechazaFacturaSinEmail(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	inv := sembrarFactura(invRepo, "user-1")
	inv.ClientEmail = ""
	gw := newFakeGateway()
	uc := nuevoCheckoutUC(invRepo, newFakePaymentRepo(), gw)

	_, err := uc.CreateCheckout(context.Background(), "user-1", "inv-1", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, gw.created)
}

func TestCreateCheckout_RechazaFacturaPagada(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	inv := sembrarFactura(invRepo, "user-1")
	inv.Status = entity.InvoiceStatusPaid
	uc := nuevoCheckoutUC(invRepo, newFakePaymentRepo(), newFakeGateway())

	_, err := uc.CreateCheckout(context.Background(), "user-1", "inv-1", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateCheckout_ErrorDePasarela(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	sembrarFactura(invRepo, "user-1")
	payRepo := newFakePaymentRepo()
	gw := newFakeGateway()
	gw.fail = true
	uc := nuevoCheckoutUC(invRepo, payRepo, gw)

	_, err := uc.CreateCheckout(context.Background(), "user-1", "inv-1", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrPaymentGateway)
	assert.Equal(t, 0, payRepo.createCalls, "sin sesión no se registra intento")
}

func TestConfirmPayment_PagadaConciliaLaFactura(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	sembrarFactura(invRepo, "user-1")
	payRepo := newFakePaymentRepo()
	gw := newFakeGateway()
	uc := nuevoCheckoutUC(invRepo, payRepo, gw)

	ses, err := uc.CreateCheckout(context.Background(), "user-1", "inv-1", dto.CheckoutRequest{})
	require.NoError(t, err)
	gw.sessions[ses.SessionID] = true // el pagador completó el checkout

	res, err := uc.ConfirmPayment(context.Background(), "user-1", dto.ConfirmPaymentRequest{SessionID: ses.SessionID})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusPaid, res.Status)
	inv := invRepo.invoices["inv-1"]
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status, "la confirmación concilia la factura")
	assert.True(t, inv.PaidAmount.Equal(inv.TotalAmount))
	assert.Equal(t, 1, invRepo.updateStatusCalls)
}

func TestConfirmPayment_SesionNoPagadaMarcaFallido(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	sembrarFactura(invRepo, "user-1")
	payRepo := newFakePaymentRepo()
	gw := newFakeGateway()
	uc := nuevoCheckoutUC(invRepo, payRepo, gw)

	ses, err := uc.CreateCheckout(context.Background(), "user-1", "inv-1", dto.CheckoutRequest{})
	require.NoError(t, err)

	res, err := uc.ConfirmPayment(context.Background(), "user-1", dto.ConfirmPaymentRequest{SessionID: ses.SessionID})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusFailed, res.Status)
	assert.Equal(t, entity.InvoiceStatusSent, invRepo.invoices["inv-1"].Status, "la factura no se toca")
}

func TestConfirmPayment_RepetirEsInocuo(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	sembrarFactura(invRepo, "user-1")
	payRepo := newFakePaymentRepo()
	gw := newFakeGateway()
	uc := nuevoCheckoutUC(invRepo, payRepo, gw)

	ses, _ := uc.CreateCheckout(context.Background(), "user-1", "inv-1", dto.CheckoutRequest{})
	gw.sessions[ses.SessionID] = true

	_, err := uc.ConfirmPayment(context.Background(), "user-1", dto.ConfirmPaymentRequest{SessionID: ses.SessionID})
	require.NoError(t, err)
	updatesTrasPrimera := payRepo.updateCalls

	_, err = uc.ConfirmPayment(context.Background(), "user-1", dto.ConfirmPaymentRequest{SessionID: ses.SessionID})
	require.NoError(t, err)

	assert.Equal(t, updatesTrasPrimera, payRepo.updateCalls, "la segunda confirmación no escribe")
	assert.Equal(t, 1, invRepo.updateStatusCalls, "la factura se marcó una sola vez")
}
