// Package pdf genera la representación imprimible de una factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio del freelance  │  N° Factura + Fechas      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Tarifa | Importe               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Impuesto / TOTAL           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/freelance-pro/internal/application/billing"
	"github.com/tu-usuario/freelance-pro/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Formato de pantalla por moneda: símbolo y agrupación de miles según la
// convención de cada moneda. Es una pasada de presentación aparte del
// redondeo de persistencia; no toca los montos guardados.
var currencyPrinters = map[string]*message.Printer{
	entity.CurrencyUSD: message.NewPrinter(language.AmericanEnglish),
	entity.CurrencyEUR: message.NewPrinter(language.German),
	entity.CurrencyINR: message.NewPrinter(language.MustParse("en-IN")),
}

var currencySymbols = map[string]string{
	entity.CurrencyUSD: "$",
	entity.CurrencyEUR: "€",
	entity.CurrencyINR: "₹",
}

func formatMoney(currency string, v decimal.Decimal) string {
	p, ok := currencyPrinters[currency]
	if !ok {
		p = message.NewPrinter(language.English)
	}
	f, _ := v.Round(2).Float64()
	return currencySymbols[currency] + p.Sprintf("%.2f", f)
}

var _ billing.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate genera el PDF de la factura y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(invoice *entity.Invoice, items []*entity.InvoiceItem, issuer *entity.User) ([]byte, error) {
	businessName := invoice.BusinessName
	if businessName == "" && issuer != nil {
		businessName = issuer.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+invoice.InvoiceNumber, true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, businessName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Currency, items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	if invoice.IsPaid() {
		m.AddRows(paidRow(invoice))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: negocio (izq) y número + fechas (der).
func headerRow(invoice *entity.Invoice, businessName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(invoice.BusinessEmail, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(
				fmt.Sprintf("Emitida: %s   Vence: %s",
					invoice.InvoiceDate.Format("02/01/2006"),
					invoice.DueDate.Format("02/01/2006")),
				props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray},
			),
		),
	)
}

// clientRow: datos del cliente facturado.
func clientRow(invoice *entity.Invoice) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FACTURAR A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(invoice.ClientCompany, invoice.ClientEmail), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(invoice.ClientEmail, "—"),
				nonEmpty(invoice.ClientPhone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Descripción", 5, align.Left),
		h("Tarifa", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la factura.
func tableItemRows(currency string, items []*entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(currency, it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(currency, it.TotalPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	cur := invoice.Currency
	return row.New(32).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("Descuento (%s):", invoice.DiscountType)),
			label(fmt.Sprintf("Impuesto (%s%%):", invoice.TaxRate.String())),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(formatMoney(cur, invoice.Subtotal)),
			value("-"+formatMoney(cur, invoice.DiscountAmount)),
			value(formatMoney(cur, invoice.TaxAmount)),
			grandValue(formatMoney(cur, invoice.TotalAmount)),
		),
		col.New(2),
	)
}

// paidRow: sello de pagada con fecha.
func paidRow(invoice *entity.Invoice) core.Row {
	fecha := ""
	if invoice.PaymentDate != nil {
		fecha = " el " + invoice.PaymentDate.Format("02/01/2006")
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("PAGADA"+fecha, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: &props.Color{Red: 22, Green: 130, Blue: 60}, Top: 3,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
