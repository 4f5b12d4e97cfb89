// Package payment implementa el puerto CheckoutGateway contra la API REST de
// Stripe Checkout (sesiones de pago alojadas).
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/freelance-pro/internal/application/billing"
	"github.com/tu-usuario/freelance-pro/pkg/config"
	"github.com/tu-usuario/freelance-pro/pkg/logger"
)

const defaultBaseURL = "https://api.stripe.com"

var _ billing.CheckoutGateway = (*StripeClient)(nil)

// StripeClient cliente HTTP de la API de Stripe. Solo usa los dos endpoints
// de sesiones de checkout; no arrastra el SDK completo.
type StripeClient struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	successURL string
	cancelURL  string
	log        *logger.Logger
}

// NewStripeClient construye el cliente con la configuración de la app.
func NewStripeClient(cfg config.StripeConfig, log *logger.Logger) *StripeClient {
	return &StripeClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		secretKey:  cfg.SecretKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		log:        log,
	}
}

// checkoutSession subconjunto de la respuesta de Stripe que nos interesa.
type checkoutSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status"` // unpaid | paid | no_payment_required
	Error         *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateSession crea una sesión de checkout por el monto dado. Stripe espera
// el monto en la unidad mínima de la moneda (centavos).
func (c *StripeClient) CreateSession(ctx context.Context, invoiceNumber, currency, customerEmail string, amount decimal.Decimal) (*billing.CheckoutSession, error) {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0)

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.successURL+"?session_id={CHECKOUT_SESSION_ID}")
	form.Set("cancel_url", c.cancelURL)
	form.Set("customer_email", customerEmail)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(currency))
	form.Set("line_items[0][price_data][unit_amount]", cents.String())
	form.Set("line_items[0][price_data][product_data][name]", "Factura "+invoiceNumber)
	form.Set("metadata[invoice_number]", invoiceNumber)

	var session checkoutSession
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", strings.NewReader(form.Encode()), &session); err != nil {
		return nil, err
	}
	c.log.Info().Str("session_id", session.ID).Str("invoice", invoiceNumber).Msg("sesión de checkout creada")
	return &billing.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// GetSession consulta una sesión y reporta si Stripe la da por pagada.
func (c *StripeClient) GetSession(ctx context.Context, sessionID string) (bool, error) {
	var session checkoutSession
	if err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(sessionID), nil, &session); err != nil {
		return false, err
	}
	return session.PaymentStatus == "paid", nil
}

func (c *StripeClient) do(ctx context.Context, method, path string, body io.Reader, out *checkoutSession) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("stripe: construir request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stripe: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("stripe: leer respuesta: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("stripe: decodificar respuesta: %w", err)
	}
	if resp.StatusCode >= 400 {
		msg := resp.Status
		if out.Error != nil {
			msg = out.Error.Message
		}
		c.log.Error().Int("status", resp.StatusCode).Str("path", path).Msg("stripe rechazó la solicitud")
		return fmt.Errorf("stripe: %s", msg)
	}
	return nil
}
