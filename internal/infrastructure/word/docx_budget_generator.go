// Package word genera el documento de procesador de textos (.docx) del
// presupuesto: mismos bloques, columnas y etiquetas que el PDF.
package word

import (
	"bytes"
	"context"
	"fmt"

	docx "github.com/fumiama/go-docx"

	"github.com/Allvasc/orcamento/internal/application/export"
	"github.com/Allvasc/orcamento/internal/domain/entity"
	"github.com/Allvasc/orcamento/pkg/money"
)

// Cabecera de la tabla de líneas; coincide con la del PDF.
var itemHeaders = []string{
	"Descripción", "Cant.", "Valor Unit.", "Desc.", "Subtotal", "IVA", "Total",
}

// Ancho total de la tabla en twentieths of a point (ocupa el ancho útil A4).
const tableWidth = 9026

// DocxBudgetGenerator implementa export.DocumentGenerator para DOCX.
type DocxBudgetGenerator struct{}

// NewDocxBudgetGenerator construye el generador.
func NewDocxBudgetGenerator() *DocxBudgetGenerator { return &DocxBudgetGenerator{} }

// Generate genera el documento Word y devuelve sus bytes.
func (g *DocxBudgetGenerator) Generate(_ context.Context, snap export.Snapshot) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	// Cabecera de la empresa
	w.AddParagraph().AddText(snap.Company.Name).Size("28").Bold()
	w.AddParagraph().AddText(snap.Company.Address)
	w.AddParagraph().AddText(snap.Company.Phone)
	w.AddParagraph()

	// Título
	w.AddParagraph().Justification("center").AddText("PRESUPUESTO").Size("40").Bold()
	w.AddParagraph()

	// Información del cliente
	w.AddParagraph().AddText("INFORMACIÓN DEL CLIENTE").Size("24").Bold()
	client := snap.Client
	w.AddParagraph().AddText("Presupuesto: " + orNA(client.Reference))
	w.AddParagraph().AddText("Fecha: " + client.Date.Format("02/01/2006"))
	w.AddParagraph().AddText("Cliente: " + orNA(client.Name))
	w.AddParagraph().AddText("Dirección: " + orNA(client.Address))
	w.AddParagraph().AddText("Ciudad: " + orNA(client.City))
	w.AddParagraph().AddText(fmt.Sprintf("Validez: %d días", client.ValidityDays))
	w.AddParagraph()

	// Tabla de líneas
	w.AddParagraph().AddText("ARTÍCULOS DEL PRESUPUESTO").Size("24").Bold()
	if err := addItemTable(w, snap.Items); err != nil {
		return nil, err
	}
	w.AddParagraph()

	// Resumen
	totals := snap.Totals
	w.AddParagraph().AddText("RESUMEN").Size("24").Bold()
	w.AddParagraph().AddText("Subtotal: " + money.FormatEUR(totals.Subtotal))
	w.AddParagraph().AddText("Total de Descuentos: " + money.FormatEUR(totals.Discount))
	w.AddParagraph().AddText("Total de IVA/Impuestos: " + money.FormatEUR(totals.Tax))
	w.AddParagraph().AddText("TOTAL GENERAL: " + money.FormatEUR(totals.Total)).Bold()

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("word: escribir documento: %w", err)
	}
	return buf.Bytes(), nil
}

// addItemTable tabla con una fila de cabecera y una por línea; el formato de
// cada celda coincide con la tabla en pantalla.
func addItemTable(w *docx.Docx, items []entity.LineItem) error {
	tbl := w.AddTable(len(items)+1, len(itemHeaders), tableWidth, nil)
	if len(tbl.TableRows) != len(items)+1 {
		return fmt.Errorf("word: tabla con %d filas, esperadas %d", len(tbl.TableRows), len(items)+1)
	}

	for i, h := range itemHeaders {
		tbl.TableRows[0].TableCells[i].AddParagraph().AddText(h).Bold()
	}
	for i, it := range items {
		cells := tbl.TableRows[i+1].TableCells
		values := []string{
			it.Description,
			money.FormatNumber(it.Quantity),
			money.FormatEUR(it.UnitPrice),
			money.FormatRate(it.DiscountRate),
			money.FormatEUR(it.NetAfterDiscount),
			money.FormatEUR(it.TaxAmount),
			money.FormatEUR(it.Total),
		}
		for j, v := range values {
			cells[j].AddParagraph().AddText(v)
		}
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
