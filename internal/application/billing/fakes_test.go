package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/freelance-pro/internal/domain"
	domainbilling "github.com/tu-usuario/freelance-pro/internal/domain/billing"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

// Dobles en memoria con contadores de escrituras, para verificar cuántas
// veces se persiste en cada flujo.

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]*entity.InvoiceItem
	last     string

	createCalls       int
	updateCalls       int
	updateStatusCalls int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: map[string]*entity.Invoice{},
		items:    map[string][]*entity.InvoiceItem{},
	}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice, items []*entity.InvoiceItem) error {
	r.createCalls++
	cp := *inv
	r.invoices[inv.ID] = &cp
	r.items[inv.ID] = items
	r.last = inv.InvoiceNumber
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, userID, id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok || inv.UserID != userID {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetItems(_ context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	return r.items[invoiceID], nil
}

func (r *fakeInvoiceRepo) ListByUser(_ context.Context, userID string, _ repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Search(_ context.Context, _, _ string, _ int) ([]*entity.Invoice, error) {
	return nil, nil
}

func (r *fakeInvoiceRepo) LastInvoiceNumber(_ context.Context, _ string) (string, error) {
	return r.last, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice, items []*entity.InvoiceItem) error {
	r.updateCalls++
	cp := *inv
	r.invoices[inv.ID] = &cp
	r.items[inv.ID] = items
	return nil
}

func (r *fakeInvoiceRepo) UpdateStatus(_ context.Context, inv *entity.Invoice) error {
	r.updateStatusCalls++
	stored, ok := r.invoices[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = inv.Status
	stored.PaymentDate = inv.PaymentDate
	stored.PaidAmount = inv.PaidAmount
	stored.UpdatedAt = inv.UpdatedAt
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, _, id string) error {
	delete(r.invoices, id)
	delete(r.items, id)
	return nil
}

type fakePaymentRepo struct {
	payments    map[string]*entity.Payment
	createCalls int
	updateCalls int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*entity.Payment{}}
}

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.createCalls++
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, userID, id string) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) GetByTransactionID(_ context.Context, txID string) (*entity.Payment, error) {
	for _, p := range r.payments {
		if p.TransactionID == txID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) ListByInvoice(_ context.Context, userID, invoiceID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.UserID == userID && p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, p *entity.Payment) error {
	r.updateCalls++
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, userID, id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeClientRepo) ListByUser(_ context.Context, _ string, _, _ int) ([]*entity.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) Search(_ context.Context, _, _ string, _ int) ([]*entity.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, _, id string) error {
	delete(r.clients, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

// fakeTxRunner ejecuta el callback sin transacción real, con los mismos repos.
type fakeTxRunner struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
}

func (r *fakeTxRunner) RunBilling(_ context.Context, fn func(repository.InvoiceRepository, repository.PaymentRepository) error) error {
	return fn(r.invoiceRepo, r.paymentRepo)
}

type fakeGateway struct {
	sessions map[string]bool // sessionID -> pagada
	fail     bool
	created  int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: map[string]bool{}}
}

func (g *fakeGateway) CreateSession(_ context.Context, invoiceNumber, _, _ string, _ decimal.Decimal) (*CheckoutSession, error) {
	if g.fail {
		return nil, domain.ErrPaymentGateway
	}
	g.created++
	id := "cs_test_" + invoiceNumber
	g.sessions[id] = false
	return &CheckoutSession{ID: id, URL: "https://checkout.example.com/" + id}, nil
}

func (g *fakeGateway) GetSession(_ context.Context, sessionID string) (bool, error) {
	if g.fail {
		return false, domain.ErrPaymentGateway
	}
	return g.sessions[sessionID], nil
}

// sembrarFactura deja una factura sent de 94.50 lista para los tests de pago.
func sembrarFactura(repo *fakeInvoiceRepo, userID string) *entity.Invoice {
	inv := &entity.Invoice{
		ID:             "inv-1",
		UserID:         userID,
		ClientID:       "cli-1",
		InvoiceNumber:  "INV-20268-0001",
		Status:         entity.InvoiceStatusSent,
		Currency:       entity.CurrencyUSD,
		ClientEmail:    "pagos@acme.test",
		InvoiceDate:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Subtotal:       decimal.RequireFromString("100"),
		TaxRate:        decimal.RequireFromString("5"),
		TaxAmount:      decimal.RequireFromString("4.50"),
		DiscountType:   domainbilling.DiscountPercentage,
		DiscountValue:  decimal.RequireFromString("10"),
		DiscountAmount: decimal.RequireFromString("10"),
		TotalAmount:    decimal.RequireFromString("94.50"),
		PaidAmount:     decimal.Zero,
	}
	repo.invoices[inv.ID] = inv
	repo.items[inv.ID] = []*entity.InvoiceItem{
		{ID: "it-1", InvoiceID: inv.ID, Description: "Consultoría", Quantity: decimal.RequireFromString("2"), UnitPrice: decimal.RequireFromString("50"), TotalPrice: decimal.RequireFromString("100"), ItemOrder: 1},
	}
	return inv
}
