// Package billing (capa de aplicación) orquesta el ciclo de vida de las
// facturas: creación y edición con recálculo de totales en el servidor,
// conciliación de pago, checkout y PDF.
package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/freelance-pro/internal/application/dto"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	domainbilling "github.com/tu-usuario/freelance-pro/internal/domain/billing"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InvoiceUseCase casos de uso CRUD de facturas. Los totales jamás se aceptan
// del cliente: cada escritura recalcula subtotal/descuento/impuesto/total a
// partir de las líneas recibidas.
type InvoiceUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// validateInvoiceInput valida lo que sí se rechaza en la frontera: estado,
// moneda, tipo de descuento e impuesto fuera de [0,100]. Cantidades y tarifas
// degeneradas NO se rechazan: el cálculo las coerce a cero.
func validateInvoiceInput(in *dto.CreateInvoiceRequest) error {
	if in.ClientID == "" || len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.InvoiceStatusDraft
	}
	if !domainbilling.ValidStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	if in.Currency == "" {
		in.Currency = entity.CurrencyUSD
	}
	if !domainbilling.ValidCurrency(in.Currency) {
		return domain.ErrInvalidInput
	}
	if in.DiscountType == "" {
		in.DiscountType = domainbilling.DiscountPercentage
	}
	if !domainbilling.ValidDiscountType(in.DiscountType) {
		return domain.ErrInvalidInput
	}
	if in.TaxRate.LessThan(decimal.Zero) || in.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidInput
	}
	if in.IsRecurring {
		switch in.RecurringInterval {
		case entity.RecurringMonthly, entity.RecurringQuarterly, entity.RecurringYearly:
		default:
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// lineInputs proyecta las líneas del request al cálculo de totales.
func lineInputs(items []dto.InvoiceItemRequest) []domainbilling.LineInput {
	lines := make([]domainbilling.LineInput, len(items))
	for i, it := range items {
		lines[i] = domainbilling.LineInput{Quantity: it.Quantity, Rate: it.Rate}
	}
	return lines
}

// buildItems materializa las líneas como entidades: total_price se deriva,
// nunca se acepta del cliente. Si la línea trae item_order se respeta (una
// edición que quitó líneas conserva los huecos); las líneas sin orden
// continúan después del máximo actual, nunca dentro de un hueco (en una
// creación el máximo arranca en cero y quedan 1, 2, 3...).
func buildItems(invoiceID string, items []dto.InvoiceItemRequest) []*entity.InvoiceItem {
	maxOrder := 0
	for _, it := range items {
		if it.ItemOrder > maxOrder {
			maxOrder = it.ItemOrder
		}
	}
	out := make([]*entity.InvoiceItem, len(items))
	for i, it := range items {
		order := it.ItemOrder
		if order <= 0 {
			maxOrder++
			order = maxOrder
		}
		out[i] = &entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.Rate,
			TotalPrice:  domainbilling.ItemAmount(it.Quantity, it.Rate).Round(2),
			ItemOrder:   order,
		}
	}
	return out
}

// Create crea una factura con totales calculados en el servidor. Cabecera y
// líneas se insertan en una sola transacción.
func (uc *InvoiceUseCase) Create(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := validateInvoiceInput(&in); err != nil {
		return nil, err
	}

	client, err := uc.clientRepo.GetByID(ctx, userID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := uc.now()

	invoiceDate := now
	if in.InvoiceDate != "" {
		invoiceDate, err = time.Parse(dateLayout, in.InvoiceDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	dueDate := domainbilling.DueDate(invoiceDate, in.PaymentTermDays)
	if in.DueDate != "" {
		dueDate, err = time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	number := in.InvoiceNumber
	if number == "" {
		last, err := uc.invoiceRepo.LastInvoiceNumber(ctx, userID)
		if err != nil {
			number = domainbilling.FallbackInvoiceNumber(now)
		} else {
			number = domainbilling.NextInvoiceNumber(last, now)
		}
	}

	totals := domainbilling.Calculate(lineInputs(in.Items), in.TaxRate, in.DiscountType, in.DiscountValue).Rounded()

	var recurringEnd *time.Time
	if in.IsRecurring && in.RecurringEndDate != "" {
		t, err := time.Parse(dateLayout, in.RecurringEndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		recurringEnd = &t
	}

	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		UserID:        userID,
		ClientID:      client.ID,
		InvoiceNumber: number,
		Status:        in.Status,
		Currency:      in.Currency,

		ClientEmail:   client.Email,
		ClientPhone:   client.Phone,
		ClientCompany: client.Company,

		InvoiceDate: invoiceDate,
		DueDate:     dueDate,

		Subtotal:       totals.Subtotal,
		TaxRate:        in.TaxRate,
		TaxAmount:      totals.TaxAmount,
		DiscountType:   in.DiscountType,
		DiscountValue:  in.DiscountValue,
		DiscountAmount: totals.DiscountAmount,
		TotalAmount:    totals.TotalAmount,
		PaidAmount:     decimal.Zero,

		IsRecurring:       in.IsRecurring,
		RecurringInterval: in.RecurringInterval,
		RecurringEndDate:  recurringEnd,

		CreatedAt: now,
		UpdatedAt: now,
	}
	if user != nil {
		invoice.BusinessName = user.BusinessName
		invoice.BusinessEmail = user.Email
	}

	items := buildItems(invoice.ID, in.Items)

	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, _ repository.PaymentRepository) error {
		return invoiceRepo.Create(ctx, invoice, items)
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items, client.Name), nil
}

// Update reemplaza líneas y configuración de una factura y recalcula totales.
// Si nada cambió (mismas líneas, mismo impuesto/descuento, mismos totales) no
// se persiste nada y se devuelve el estado actual. Una factura pagada no se
// edita.
func (uc *InvoiceUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := validateInvoiceInput(&in); err != nil {
		return nil, err
	}

	invoice, err := uc.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.IsPaid() {
		return nil, domain.ErrConflict
	}

	prevItems, err := uc.invoiceRepo.GetItems(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}

	totals := domainbilling.Calculate(lineInputs(in.Items), in.TaxRate, in.DiscountType, in.DiscountValue).Rounded()

	// Guarda de igualdad: misma configuración, mismas líneas y mismos totales
	// redondeados significa cero escrituras.
	prevTotals := domainbilling.Totals{
		Subtotal:       invoice.Subtotal,
		DiscountAmount: invoice.DiscountAmount,
		TaxAmount:      invoice.TaxAmount,
		TotalAmount:    invoice.TotalAmount,
	}
	sameConfig := invoice.Status == in.Status &&
		invoice.Currency == in.Currency &&
		invoice.TaxRate.Equal(in.TaxRate) &&
		invoice.DiscountType == in.DiscountType &&
		invoice.DiscountValue.Equal(in.DiscountValue)
	if sameConfig && totals.Equal(prevTotals) && domainbilling.ItemsEqual(lineInputs(in.Items), itemLines(prevItems)) {
		return toInvoiceResponse(invoice, prevItems, ""), nil
	}

	now := uc.now()

	if in.InvoiceDate != "" {
		invoice.InvoiceDate, err = time.Parse(dateLayout, in.InvoiceDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.DueDate != "" {
		invoice.DueDate, err = time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	} else if in.PaymentTermDays > 0 {
		invoice.DueDate = domainbilling.DueDate(invoice.InvoiceDate, in.PaymentTermDays)
	}

	invoice.Status = in.Status
	invoice.Currency = in.Currency
	invoice.Subtotal = totals.Subtotal
	invoice.TaxRate = in.TaxRate
	invoice.TaxAmount = totals.TaxAmount
	invoice.DiscountType = in.DiscountType
	invoice.DiscountValue = in.DiscountValue
	invoice.DiscountAmount = totals.DiscountAmount
	invoice.TotalAmount = totals.TotalAmount
	invoice.IsRecurring = in.IsRecurring
	invoice.RecurringInterval = in.RecurringInterval
	invoice.UpdatedAt = now

	items := buildItems(invoice.ID, in.Items)

	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, _ repository.PaymentRepository) error {
		return invoiceRepo.Update(ctx, invoice, items)
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items, ""), nil
}

// Get devuelve una factura con sus líneas.
func (uc *InvoiceUseCase) Get(ctx context.Context, userID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItems(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items, ""), nil
}

// List devuelve las facturas del usuario con filtros opcionales.
func (uc *InvoiceUseCase) List(ctx context.Context, userID string, in dto.ListInvoicesRequest) ([]dto.InvoiceListItem, error) {
	in.DefaultPage()
	if in.Status != "" && !domainbilling.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	invoices, err := uc.invoiceRepo.ListByUser(ctx, userID, repository.InvoiceFilter{
		Status:   in.Status,
		ClientID: in.ClientID,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceListItem, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.InvoiceListItem{
			ID:            inv.ID,
			ClientID:      inv.ClientID,
			InvoiceNumber: inv.InvoiceNumber,
			Status:        inv.Status,
			Currency:      inv.Currency,
			InvoiceDate:   inv.InvoiceDate.Format(dateLayout),
			DueDate:       inv.DueDate.Format(dateLayout),
			TotalAmount:   inv.TotalAmount,
			PaidAmount:    inv.PaidAmount,
		})
	}
	return out, nil
}

// Delete elimina una factura no pagada con sus líneas.
func (uc *InvoiceUseCase) Delete(ctx context.Context, userID, id string) error {
	invoice, err := uc.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	if invoice.IsPaid() {
		return domain.ErrConflict
	}
	return uc.invoiceRepo.Delete(ctx, userID, id)
}

func itemLines(items []*entity.InvoiceItem) []domainbilling.LineInput {
	lines := make([]domainbilling.LineInput, len(items))
	for i, it := range items {
		lines[i] = domainbilling.LineInput{Quantity: it.Quantity, Rate: it.UnitPrice}
	}
	return lines
}

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem, clientName string) *dto.InvoiceResponse {
	res := &dto.InvoiceResponse{
		ID:                inv.ID,
		ClientID:          inv.ClientID,
		ClientName:        clientName,
		InvoiceNumber:     inv.InvoiceNumber,
		Status:            inv.Status,
		Currency:          inv.Currency,
		InvoiceDate:       inv.InvoiceDate.Format(dateLayout),
		DueDate:           inv.DueDate.Format(dateLayout),
		Subtotal:          inv.Subtotal,
		TaxRate:           inv.TaxRate,
		TaxAmount:         inv.TaxAmount,
		DiscountType:      inv.DiscountType,
		DiscountValue:     inv.DiscountValue,
		DiscountAmount:    inv.DiscountAmount,
		TotalAmount:       inv.TotalAmount,
		PaidAmount:        inv.PaidAmount,
		IsRecurring:       inv.IsRecurring,
		RecurringInterval: inv.RecurringInterval,
		CreatedAt:         inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.PaymentDate != nil {
		res.PaymentDate = inv.PaymentDate.Format(time.RFC3339)
	}
	if inv.RecurringEndDate != nil {
		res.RecurringEndDate = inv.RecurringEndDate.Format(dateLayout)
	}
	res.Items = make([]dto.InvoiceItemResponse, 0, len(items))
	for _, it := range items {
		res.Items = append(res.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			ItemOrder:   it.ItemOrder,
		})
	}
	return res
}
