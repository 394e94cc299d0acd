// Package pdf genera el documento PDF del presupuesto con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Logo + Nombre / Dirección / Teléfono de la empresa          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRESUPUESTO (título centrado)                               │
//	│  INFORMACIÓN DEL CLIENTE: referencia, fecha, cliente, ...    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant. | Valor Unit. | Desc. | Subtotal │
//	│         | IVA | Total                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN (derecha): Subtotal / Descuentos / IVA / TOTAL      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Allvasc/orcamento/internal/application/export"
	"github.com/Allvasc/orcamento/internal/domain/entity"
	"github.com/Allvasc/orcamento/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoBudgetGenerator implementa export.DocumentGenerator para PDF.
type MarotoBudgetGenerator struct{}

// NewMarotoBudgetGenerator construye el generador.
func NewMarotoBudgetGenerator() *MarotoBudgetGenerator { return &MarotoBudgetGenerator{} }

// Generate genera el PDF del presupuesto y devuelve sus bytes.
func (g *MarotoBudgetGenerator) Generate(_ context.Context, snap export.Snapshot) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Presupuesto", true).
		WithAuthor(snap.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	if snap.Logo != nil {
		m.AddRows(logoRow(snap.Logo))
	}
	m.AddRows(companyRows(snap.Company)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(titleRow())
	m.AddRows(clientRows(snap.Client)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(snap.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(snap.Totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// logoRow imagen de la empresa arriba a la izquierda.
func logoRow(logo *export.Logo) core.Row {
	ext := extension.Png
	if logo.Ext == "jpg" {
		ext = extension.Jpg
	}
	return row.New(16).Add(
		col.New(4).Add(image.NewFromBytes(logo.Bytes, ext, props.Rect{
			Percent: 90,
			Left:    1,
		})),
		col.New(8),
	)
}

// companyRows bloque de identidad del emisor.
func companyRows(company entity.CompanyInfo) []core.Row {
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(company.Address, props.Text{Size: 9, Color: colorGray}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(company.Phone, props.Text{Size: 9, Color: colorGray}),
		)),
	}
}

// titleRow título del documento, centrado.
func titleRow() core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("PRESUPUESTO", props.Text{
			Style: fontstyle.Bold, Size: 20, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}),
	))
}

// clientRows bloque INFORMACIÓN DEL CLIENTE con referencia y fecha en la
// misma línea.
func clientRows(client entity.ClientInfo) []core.Row {
	field := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Top: 1})
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("INFORMACIÓN DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 2,
			}),
		)),
		row.New(5).Add(
			col.New(7).Add(field("Presupuesto: " + orNA(client.Reference))),
			col.New(5).Add(text.New("Fecha: "+client.Date.Format("02/01/2006"), props.Text{
				Size: 9, Top: 1, Align: align.Right,
			})),
		),
		row.New(5).Add(col.New(12).Add(field("Cliente: " + orNA(client.Name)))),
		row.New(5).Add(col.New(12).Add(field("Dirección: " + orNA(client.Address)))),
		row.New(5).Add(col.New(12).Add(field("Ciudad: " + orNA(client.City)))),
		row.New(7).Add(col.New(12).Add(field(fmt.Sprintf("Validez: %d días", client.ValidityDays)))),
	}
}

// tableHeaderRow cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Descripción", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("Valor Unit.", 2, align.Right),
		h("Desc.", 1, align.Center),
		h("Subtotal", 2, align.Right),
		h("IVA", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

// itemRows una fila por línea del presupuesto, con las mismas columnas y el
// mismo formato que la tabla en pantalla.
func itemRows(items []entity.LineItem) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			cell(it.Description, 3, align.Left),
			cell(money.FormatNumber(it.Quantity), 1, align.Center),
			cell(money.FormatEUR(it.UnitPrice), 2, align.Right),
			cell(money.FormatRate(it.DiscountRate), 1, align.Center),
			cell(money.FormatEUR(it.NetAfterDiscount), 2, align.Right),
			cell(money.FormatEUR(it.TaxAmount), 1, align.Right),
			cell(money.FormatEUR(it.Total), 2, align.Right),
		))
	}
	return result
}

// summaryRow bloque de resumen alineado a la derecha.
func summaryRow(totals entity.Totals) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 12, Align: align.Right,
		Color: colorPrimary, Right: 2, Top: 17,
	})
	grandValue := text.New(money.FormatEUR(totals.Total), props.Text{
		Style: fontstyle.Bold, Size: 12, Align: align.Right,
		Color: colorPrimary, Right: 1, Top: 17,
	})

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			text.New("Descuentos:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5,
			}),
			text.New("IVA/Impuestos:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 10,
			}),
			grandLabel,
		),
		col.New(4).Add(
			value(money.FormatEUR(totals.Subtotal)),
			text.New(money.FormatEUR(totals.Discount), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 5,
			}),
			text.New(money.FormatEUR(totals.Tax), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 10,
			}),
			grandValue,
		),
	)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
