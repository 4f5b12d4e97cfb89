package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCalculate_DescuentoPorcentualConImpuesto(t *testing.T) {
	items := []LineInput{{Quantity: d("2"), Rate: d("50")}}

	got := Calculate(items, d("5"), DiscountPercentage, d("10"))

	assert.True(t, got.Subtotal.Equal(d("100")), "subtotal: %s", got.Subtotal)
	assert.True(t, got.DiscountAmount.Equal(d("10")), "descuento: %s", got.DiscountAmount)
	assert.True(t, got.TaxAmount.Equal(d("4.5")), "impuesto: %s", got.TaxAmount)
	assert.True(t, got.TotalAmount.Equal(d("94.5")), "total: %s", got.TotalAmount)
}

func TestCalculate_SinDescuentoNiImpuesto(t *testing.T) {
	items := []LineInput{{Quantity: d("1"), Rate: d("250")}}

	got := Calculate(items, decimal.Zero, DiscountPercentage, decimal.Zero)

	assert.True(t, got.Subtotal.Equal(d("250")))
	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.TotalAmount.Equal(d("250")))
}

func TestCalculate_LineaConTarifaCeroNoAltera(t *testing.T) {
	base := []LineInput{{Quantity: d("2"), Rate: d("50")}}
	conBlanco := append(append([]LineInput{}, base...), LineInput{Quantity: d("1"), Rate: decimal.Zero})

	a := Calculate(base, d("5"), DiscountPercentage, d("10"))
	b := Calculate(conBlanco, d("5"), DiscountPercentage, d("10"))

	assert.True(t, a.Equal(b), "una línea en blanco aporta 0 y no cambia totales")
}

func TestCalculate_QuitarLineaRecalculaSubtotal(t *testing.T) {
	items := []LineInput{
		{Quantity: d("2"), Rate: d("50")},
		{Quantity: d("3"), Rate: d("20")},
	}
	completo := Calculate(items, decimal.Zero, DiscountFixed, decimal.Zero)
	require.True(t, completo.Subtotal.Equal(d("160")))

	sinSegunda := Calculate(items[:1], decimal.Zero, DiscountFixed, decimal.Zero)
	assert.True(t, sinSegunda.Subtotal.Equal(d("100")))
	assert.True(t, sinSegunda.TotalAmount.Equal(d("100")))
}

func TestCalculate_DescuentoFijoSinTope(t *testing.T) {
	// Descuento fijo mayor al subtotal: la base gravable queda negativa y el
	// impuesto también; no se aplica clamp a cero.
	items := []LineInput{{Quantity: d("1"), Rate: d("100")}}

	got := Calculate(items, d("10"), DiscountFixed, d("150"))

	assert.True(t, got.DiscountAmount.Equal(d("150")))
	assert.True(t, got.TaxAmount.Equal(d("-5")), "impuesto: %s", got.TaxAmount)
	assert.True(t, got.TotalAmount.Equal(d("-55")), "total: %s", got.TotalAmount)
}

func TestCalculate_TipoDescuentoDesconocidoSeTrataComoFijo(t *testing.T) {
	items := []LineInput{{Quantity: d("1"), Rate: d("100")}}

	got := Calculate(items, decimal.Zero, "coupon", d("25"))

	assert.True(t, got.DiscountAmount.Equal(d("25")))
	assert.True(t, got.TotalAmount.Equal(d("75")))
}

func TestCalculate_SinLineas(t *testing.T) {
	got := Calculate(nil, d("19"), DiscountPercentage, d("10"))

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.TotalAmount.IsZero())
}

func TestCalculate_EsIdempotenteYNoDependeDelOrden(t *testing.T) {
	a := []LineInput{
		{Quantity: d("1.5"), Rate: d("33.33")},
		{Quantity: d("4"), Rate: d("12.5")},
		{Quantity: d("2"), Rate: d("0.05")},
	}
	b := []LineInput{a[2], a[0], a[1]}

	r1 := Calculate(a, d("8.875"), DiscountPercentage, d("7.5"))
	r2 := Calculate(a, d("8.875"), DiscountPercentage, d("7.5"))
	r3 := Calculate(b, d("8.875"), DiscountPercentage, d("7.5"))

	assert.True(t, r1.Equal(r2), "misma entrada, mismo resultado")
	assert.True(t, r1.Equal(r3), "el subtotal es una suma: el orden no importa")
}

func TestRounded_MedioCentavoSeAlejaDeCero(t *testing.T) {
	tot := Totals{
		Subtotal:       d("10.005"),
		DiscountAmount: d("-0.125"),
		TaxAmount:      d("0.004"),
		TotalAmount:    d("2.675"),
	}

	r := tot.Rounded()

	assert.Equal(t, "10.01", r.Subtotal.StringFixed(2))
	assert.Equal(t, "-0.13", r.DiscountAmount.StringFixed(2), "negativo se aleja de cero")
	assert.Equal(t, "0.00", r.TaxAmount.StringFixed(2))
	assert.Equal(t, "2.68", r.TotalAmount.StringFixed(2))
}

func TestRounded_DesfaseDeIdentidadPorCampo(t *testing.T) {
	// 1.5 * 6.75 = 10.125; impuesto 5% = 0.50625; total 10.63125.
	// Redondeado por campo: subtotal 10.13, impuesto 0.51, total 10.63.
	// 10.13 + 0.51 = 10.64: un centavo de desfase respecto al total persistido.
	// Ese desfase es parte del contrato, no un defecto a corregir.
	items := []LineInput{{Quantity: d("1.5"), Rate: d("6.75")}}

	r := Calculate(items, d("5"), DiscountPercentage, decimal.Zero).Rounded()

	assert.Equal(t, "10.13", r.Subtotal.StringFixed(2))
	assert.Equal(t, "0.51", r.TaxAmount.StringFixed(2))
	assert.Equal(t, "10.63", r.TotalAmount.StringFixed(2))

	reconstruido := r.Subtotal.Sub(r.DiscountAmount).Add(r.TaxAmount)
	drift := reconstruido.Sub(r.TotalAmount).Abs()
	assert.True(t, drift.Equal(d("0.01")), "desfase: %s", drift)
	assert.True(t, drift.LessThanOrEqual(d("0.02")), "el desfase nunca supera 2 centavos")
}

func TestItemsEqual(t *testing.T) {
	a := []LineInput{{Quantity: d("2"), Rate: d("50")}}
	b := []LineInput{{Quantity: d("2.00"), Rate: d("50")}}
	c := []LineInput{{Quantity: d("2"), Rate: d("51")}}

	assert.True(t, ItemsEqual(a, b), "igualdad numérica, no de representación")
	assert.False(t, ItemsEqual(a, c))
	assert.False(t, ItemsEqual(a, append(b, LineInput{})))
	assert.True(t, ItemsEqual(nil, nil))
}

func TestItemAmount(t *testing.T) {
	assert.True(t, ItemAmount(d("3"), d("19.99")).Equal(d("59.97")))
	assert.True(t, ItemAmount(decimal.Zero, d("100")).IsZero())
}
