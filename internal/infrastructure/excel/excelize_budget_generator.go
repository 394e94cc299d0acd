// Package excel genera la hoja de cálculo del presupuesto con excelize.
// Las filas de líneas llevan valores numéricos crudos (no texto formateado)
// para que la hoja pueda recalcular de forma nativa.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Allvasc/orcamento/internal/application/export"
)

const sheetName = "Presupuesto"

// Cabecera de la tabla de líneas, en el mismo orden de columnas que los demás
// formatos.
var itemHeaders = []string{
	"Descripción", "Cantidad", "Valor Unitario", "Descuento (%)",
	"Subtotal", "IVA", "Total",
}

var columns = []string{"A", "B", "C", "D", "E", "F", "G"}

// ExcelizeBudgetGenerator implementa export.DocumentGenerator para XLSX.
type ExcelizeBudgetGenerator struct{}

// NewExcelizeBudgetGenerator construye el generador.
func NewExcelizeBudgetGenerator() *ExcelizeBudgetGenerator { return &ExcelizeBudgetGenerator{} }

// Generate genera el fichero XLSX y devuelve sus bytes.
func (g *ExcelizeBudgetGenerator) Generate(_ context.Context, snap export.Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("excel: nombrar hoja: %w", err)
	}

	widths := []float64{40, 10, 14, 14, 14, 14, 14}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("excel: ancho de columna %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de título: %w", err)
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de sección: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2563EB"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}
	// Formato incorporado 4: #,##0.00
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de importe: %w", err)
	}
	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de resumen: %w", err)
	}

	set := func(cell string, value interface{}) {
		f.SetCellValue(sheetName, cell, value)
	}

	// ── Empresa y título ────────────────────────────────────────────────
	set("A1", snap.Company.Name)
	set("A2", snap.Company.Address)
	set("A3", snap.Company.Phone)
	set("A5", "PRESUPUESTO")
	f.SetCellStyle(sheetName, "A5", "A5", titleStyle)

	// ── Información del cliente ─────────────────────────────────────────
	set("A7", "INFORMACIÓN DEL CLIENTE")
	f.SetCellStyle(sheetName, "A7", "A7", sectionStyle)
	client := snap.Client
	clientRows := [][2]interface{}{
		{"Presupuesto:", orNA(client.Reference)},
		{"Fecha:", client.Date.Format("02/01/2006")},
		{"Cliente:", orNA(client.Name)},
		{"Dirección:", orNA(client.Address)},
		{"Ciudad:", orNA(client.City)},
		{"Validez:", fmt.Sprintf("%d días", client.ValidityDays)},
	}
	row := 8
	for _, kv := range clientRows {
		set(fmt.Sprintf("A%d", row), kv[0])
		set(fmt.Sprintf("B%d", row), kv[1])
		row++
	}
	row++ // fila en blanco

	// ── Tabla de líneas ─────────────────────────────────────────────────
	set(fmt.Sprintf("A%d", row), "ARTÍCULOS DEL PRESUPUESTO")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), sectionStyle)
	row++

	headerRow := row
	for i, h := range itemHeaders {
		set(fmt.Sprintf("%s%d", columns[i], headerRow), h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("G%d", headerRow), headerStyle)
	row++

	for _, it := range snap.Items {
		set(fmt.Sprintf("A%d", row), it.Description)
		set(fmt.Sprintf("B%d", row), it.Quantity)
		set(fmt.Sprintf("C%d", row), it.UnitPrice)
		set(fmt.Sprintf("D%d", row), it.DiscountRate)
		set(fmt.Sprintf("E%d", row), it.NetAfterDiscount)
		set(fmt.Sprintf("F%d", row), it.TaxAmount)
		set(fmt.Sprintf("G%d", row), it.Total)
		f.SetCellStyle(sheetName, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), moneyStyle)
		f.SetCellStyle(sheetName, fmt.Sprintf("E%d", row), fmt.Sprintf("G%d", row), moneyStyle)
		row++
	}
	row++ // fila en blanco

	// ── Resumen ─────────────────────────────────────────────────────────
	set(fmt.Sprintf("A%d", row), "RESUMEN")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), sectionStyle)
	row++

	totals := snap.Totals
	summaryRows := [][2]interface{}{
		{"Subtotal:", totals.Subtotal},
		{"Total de Descuentos:", totals.Discount},
		{"Total de IVA/Impuestos:", totals.Tax},
		{"TOTAL GENERAL:", totals.Total},
	}
	for _, kv := range summaryRows {
		set(fmt.Sprintf("A%d", row), kv[0])
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), summaryLabelStyle)
		set(fmt.Sprintf("B%d", row), kv[1])
		f.SetCellStyle(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), moneyStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir fichero: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
