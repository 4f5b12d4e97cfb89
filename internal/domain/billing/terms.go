package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Términos de pago en días.
const (
	TermImmediate = 0
	TermNet15     = 15
	TermNet30     = 30
	TermNet45     = 45
	TermNet60     = 60
)

// DueDate calcula la fecha de vencimiento: fecha de factura + días del término.
func DueDate(invoiceDate time.Time, paymentTermDays int) time.Time {
	return invoiceDate.AddDate(0, 0, paymentTermDays)
}

// NextInvoiceNumber genera el consecutivo con formato INV-<año><mes>-NNNN a
// partir del último número emitido. Si lastNumber está vacío (primera factura)
// arranca en 0001. El mes va sin relleno, fiel a la numeración original.
func NextInvoiceNumber(lastNumber string, now time.Time) string {
	prefix := fmt.Sprintf("INV-%d%d", now.Year(), int(now.Month()))
	if lastNumber == "" {
		return prefix + "-0001"
	}
	parts := strings.Split(lastNumber, "-")
	last, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		// Número ilegible: fallback con timestamp, igual que la fuente.
		return FallbackInvoiceNumber(now)
	}
	return fmt.Sprintf("%s-%04d", prefix, last+1)
}

// FallbackInvoiceNumber número de emergencia cuando no se puede consultar o
// parsear el último consecutivo.
func FallbackInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d", now.Unix())
}

// ValidStatus indica si s es un estado de factura conocido.
func ValidStatus(s string) bool {
	switch s {
	case "draft", "sent", "paid", "overdue":
		return true
	}
	return false
}

// ValidDiscountType indica si s es un tipo de descuento conocido.
func ValidDiscountType(s string) bool {
	return s == DiscountPercentage || s == DiscountFixed
}

// ValidCurrency indica si s es una moneda soportada.
func ValidCurrency(s string) bool {
	switch s {
	case "USD", "EUR", "INR":
		return true
	}
	return false
}
