package billing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
)

func nuevoInvoiceUC(t *testing.T) (*InvoiceUseCase, *fakeInvoiceRepo) {
	t.Helper()
	invRepo := newFakeInvoiceRepo()
	payRepo := newFakePaymentRepo()
	clientRepo := newFakeClientRepo()
	userRepo := newFakeUserRepo()

	clientRepo.clients["cli-1"] = &entity.Client{
		ID: "cli-1", UserID: "user-1", Name: "Acme Corp", Email: "pagos@acme.test",
	}
	userRepo.users["user-1"] = &entity.User{
		ID: "user-1", Email: "dev@freelance.test", Name: "Dev", BusinessName: "Dev Studio",
	}

	uc := NewInvoiceUseCase(&fakeTxRunner{invoiceRepo: invRepo, paymentRepo: payRepo}, invRepo, clientRepo, userRepo)
	uc.now = func() time.Time { return time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC) }
	return uc, invRepo
}

func requestBasica() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID:      "cli-1",
		TaxRate:       decimal.RequireFromString("5"),
		DiscountType:  "percentage",
		DiscountValue: decimal.RequireFromString("10"),
		Items: []dto.InvoiceItemRequest{
			{Description: "Consultoría", Quantity: decimal.RequireFromString("2"), Rate: decimal.RequireFromString("50")},
		},
	}
}

func TestCreate_CalculaTotalesEnServidor(t *testing.T) {
	uc, repo := nuevoInvoiceUC(t)

	res, err := uc.Create(context.Background(), "user-1", requestBasica())
	require.NoError(t, err)

	assert.True(t, res.Subtotal.Equal(decimal.RequireFromString("100")))
	assert.True(t, res.DiscountAmount.Equal(decimal.RequireFromString("10")))
	assert.True(t, res.TaxAmount.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("94.5")))
	assert.Equal(t, entity.InvoiceStatusDraft, res.Status, "estado por defecto")
	assert.Equal(t, "Acme Corp", res.ClientName)
	assert.Equal(t, 1, repo.createCalls)

	require.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Items[0].ItemOrder)
	assert.True(t, res.Items[0].TotalPrice.Equal(decimal.RequireFromString("100")), "total de línea derivado, no aceptado")
}

func TestCreate_GeneraConsecutivo(t *testing.T) {
	uc, _ := nuevoInvoiceUC(t)

	primera, err := uc.Create(context.Background(), "user-1", requestBasica())
	require.NoError(t, err)
	assert.Equal(t, "INV-20268-0001", primera.InvoiceNumber)

	segunda, err := uc.Create(context.Background(), "user-1", requestBasica())
	require.NoError(t, err)
	assert.Equal(t, "INV-20268-0002", segunda.InvoiceNumber)
}

func TestCreate_VencimientoPorTermino(t *testing.T) {
	uc, _ := nuevoInvoiceUC(t)
	in := requestBasica()
	in.InvoiceDate = "2026-08-01"
	in.PaymentTermDays = 30

	res, err := uc.Create(context.Background(), "user-1", in)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", res.DueDate)
}

func TestCreate_ClienteAjenoNoExiste(t *testing.T) {
	uc, _ := nuevoInvoiceUC(t)

	_, err := uc.Create(context.Background(), "user-2", requestBasica())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_RechazaImpuestoFueraDeRango(t *testing.T) {
	uc, _ := nuevoInvoiceUC(t)
	in := requestBasica()
	in.TaxRate = decimal.RequireFromString("101")

	_, err := uc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_RechazaSinLineas(t *testing.T) {
	uc, _ := nuevoInvoiceUC(t)
	in := requestBasica()
	in.Items = nil

	_, err := uc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_GuardaDeIgualdadNoEscribe(t *testing.T) {
	uc, repo := nuevoInvoiceUC(t)
	creada, err := uc.Create(context.Background(), "user-1", requestBasica())
	require.NoError(t, err)

	in := requestBasica()
	in.Status = creada.Status
	res, err := uc.Update(context.Background(), "user-1", creada.ID, in)
	require.NoError(t, err)

	assert.Equal(t, 0, repo.updateCalls, "misma entrada, cero escrituras")
	assert.True(t, res.TotalAmount.Equal(creada.TotalAmount))
}

func TestUpdate_CambioDeLineaRecalcula(t *testing.T) {
	uc, repo := nuevoInvoiceUC(t)
	creada, err := uc.Create(context.Background(), "user-1", requestBasica())
	require.NoError(t, err)

	in := requestBasica()
	in.Items[0].Rate = decimal.RequireFromString("75")
	res, err := uc.Update(context.Background(), "user-1", creada.ID, in)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.updateCalls)
	assert.True(t, res.Subtotal.Equal(decimal.RequireFromString("150")))
	assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("141.75")), "total: %s", res.TotalAmount)
}

func TestUpdate_QuitarLineaConservaHuecosDeOrden(t *testing.T) {
	uc, _ := nuevoInvoiceUC(t)
	in := requestBasica()
	in.Items = append(in.Items,
		dto.InvoiceItemRequest{Description: "Diseño", Quantity: decimal.RequireFromString("1"), Rate: decimal.RequireFromString("80")},
		dto.InvoiceItemRequest{Description: "Soporte", Quantity: decimal.RequireFromString("3"), Rate: decimal.RequireFromString("20")},
	)
	creada, err := uc.Create(context.Background(), "user-1", in)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, []int{creada.Items[0].ItemOrder, creada.Items[1].ItemOrder, creada.Items[2].ItemOrder})

	// El cliente quita la línea del medio y reenvía las restantes con su
	// orden original: queda el hueco 1,3 sin re-secuenciar.
	edit := requestBasica()
	edit.Items = []dto.InvoiceItemRequest{
		{Description: "Consultoría", Quantity: decimal.RequireFromString("2"), Rate: decimal.RequireFromString("50"), ItemOrder: 1},
		{Description: "Soporte", Quantity: decimal.RequireFromString("3"), Rate: decimal.RequireFromString("20"), ItemOrder: 3},
	}
	res, err := uc.Update(context.Background(), "user-1", creada.ID, edit)
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, 1, res.Items[0].ItemOrder)
	assert.Equal(t, 3, res.Items[1].ItemOrder)
	assert.True(t, res.Subtotal.Equal(decimal.RequireFromString("160")), "el subtotal excluye la línea quitada")
}

func TestUpdate_LineaNuevaContinuaTrasElMaximo(t *testing.T) {
	uc, _ := nuevoInvoiceUC(t)
	in := requestBasica()
	in.Items = append(in.Items,
		dto.InvoiceItemRequest{Description: "Diseño", Quantity: decimal.RequireFromString("1"), Rate: decimal.RequireFromString("80")},
		dto.InvoiceItemRequest{Description: "Soporte", Quantity: decimal.RequireFromString("3"), Rate: decimal.RequireFromString("20")},
	)
	creada, err := uc.Create(context.Background(), "user-1", in)
	require.NoError(t, err)

	// Quedan los órdenes 1 y 3, y se agrega una línea nueva sin orden: debe
	// continuar después del máximo (4), no caer en el hueco ni chocar con 3.
	edit := requestBasica()
	edit.Items = []dto.InvoiceItemRequest{
		{Description: "Consultoría", Quantity: decimal.RequireFromString("2"), Rate: decimal.RequireFromString("50"), ItemOrder: 1},
		{Description: "Soporte", Quantity: decimal.RequireFromString("3"), Rate: decimal.RequireFromString("20"), ItemOrder: 3},
		{Description: "Despliegue", Quantity: decimal.RequireFromString("1"), Rate: decimal.RequireFromString("40")},
	}
	res, err := uc.Update(context.Background(), "user-1", creada.ID, edit)
	require.NoError(t, err)

	require.Len(t, res.Items, 3)
	ordenes := []int{res.Items[0].ItemOrder, res.Items[1].ItemOrder, res.Items[2].ItemOrder}
	assert.Equal(t, []int{1, 3, 4}, ordenes, "sin órdenes duplicados")
}

func TestUpdate_FacturaPagadaNoSeEdita(t *testing.T) {
	uc, repo := nuevoInvoiceUC(t)
	creada, err := uc.Create(context.Background(), "user-1", requestBasica())
	require.NoError(t, err)
	repo.invoices[creada.ID].Status = entity.InvoiceStatusPaid

	_, err = uc.Update(context.Background(), "user-1", creada.ID, requestBasica())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDelete_FacturaPagadaNoSeElimina(t *testing.T) {
	uc, repo := nuevoInvoiceUC(t)
	creada, err := uc.Create(context.Background(), "user-1", requestBasica())
	require.NoError(t, err)
	repo.invoices[creada.ID].Status = entity.InvoiceStatusPaid

	err = uc.Delete(context.Background(), "user-1", creada.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotNil(t, repo.invoices[creada.ID])
}
