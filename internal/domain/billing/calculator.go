// Package billing contiene el servicio de dominio de cálculo de totales de
// factura: monto por línea, subtotal, descuento (porcentual o fijo), impuesto
// sobre la base gravable y total, más la política de redondeo de persistencia.
//
// Todas las funciones son puras: no tocan repositorios ni estado compartido.
// El caso de uso que posee el formulario invoca Calculate tras cada mutación
// de líneas/impuesto/descuento y usa Totals.Equal / ItemsEqual como guarda de
// igualdad para no disparar escrituras redundantes.
package billing

import "github.com/shopspring/decimal"

// Tipos de descuento. Cualquier valor distinto de "percentage" se trata como
// monto fijo, igual que la fuente original.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// LineInput es la proyección mínima de una línea para el cálculo: cantidad y
// tarifa. Campos ausentes en el JSON decodifican al cero de decimal, que es
// exactamente la coerción silenciosa a 0 del comportamiento original; el
// cálculo nunca rechaza entradas numéricas degeneradas.
type LineInput struct {
	Quantity decimal.Decimal
	Rate     decimal.Decimal
}

// Totals agrupa los cuatro montos derivados de una factura. Son mutuamente
// consistentes bajo la identidad Total = Subtotal - Discount + Tax hasta que
// se aplica el redondeo por campo de Rounded.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// ItemAmount deriva el monto de una línea: cantidad * tarifa.
func ItemAmount(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// Calculate deriva los totales completos a partir de las líneas y la
// configuración de impuesto/descuento.
//
//	subtotal       = Σ (quantity_i * rate_i)
//	discountAmount = subtotal * value/100   si type == percentage
//	                 value                  en cualquier otro caso (fijo)
//	taxableAmount  = subtotal - discountAmount   (sin clamp: puede ser negativo
//	                 si el descuento fijo excede el subtotal)
//	taxAmount      = taxableAmount * taxRate/100
//	totalAmount    = taxableAmount + taxAmount
//
// taxRate se espera en [0,100] pero no se valida aquí; el rechazo de rangos
// ocurre en la capa de presentación antes de llamar. El resultado no está
// redondeado: el redondeo de persistencia es un paso aparte (Rounded) y el
// formateo de pantalla otro distinto.
func Calculate(items []LineInput, taxRate decimal.Decimal, discountType string, discountValue decimal.Decimal) Totals {
	var subtotal decimal.Decimal
	for _, it := range items {
		subtotal = subtotal.Add(ItemAmount(it.Quantity, it.Rate))
	}

	discountAmount := discountValue
	if discountType == DiscountPercentage {
		discountAmount = subtotal.Mul(discountValue).Div(decimal.NewFromInt(100))
	}

	taxableAmount := subtotal.Sub(discountAmount)
	taxAmount := taxableAmount.Mul(taxRate).Div(decimal.NewFromInt(100))
	totalAmount := taxableAmount.Add(taxAmount)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		TotalAmount:    totalAmount,
	}
}

// Rounded aplica la pasada de redondeo de persistencia: cada campo se
// redondea a 2 decimales de forma independiente (half away from zero sobre el
// centavo). Al redondear por campo y no repartir el residuo, la identidad
// Total = Subtotal - Discount + Tax puede quedar desfasada hasta 2 centavos;
// ese desfase es comportamiento observable y se conserva tal cual.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:       t.Subtotal.Round(2),
		DiscountAmount: t.DiscountAmount.Round(2),
		TaxAmount:      t.TaxAmount.Round(2),
		TotalAmount:    t.TotalAmount.Round(2),
	}
}

// Equal compara totales por valor numérico (guarda de igualdad del handler
// on-change: si nada cambió, no se escribe nada).
func (t Totals) Equal(o Totals) bool {
	return t.Subtotal.Equal(o.Subtotal) &&
		t.DiscountAmount.Equal(o.DiscountAmount) &&
		t.TaxAmount.Equal(o.TaxAmount) &&
		t.TotalAmount.Equal(o.TotalAmount)
}

// ItemsEqual compara estructuralmente dos listas de líneas (mismo largo,
// misma cantidad y tarifa posición a posición). Se usa junto con Totals.Equal
// para decidir si una mutación realmente cambió algo.
func ItemsEqual(a, b []LineInput) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Quantity.Equal(b[i].Quantity) || !a[i].Rate.Equal(b[i].Rate) {
			return false
		}
	}
	return true
}
