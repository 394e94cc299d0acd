// Package budget contiene la aritmética del presupuesto (servicio de dominio):
// el cálculo de importes derivados de cada línea y la reducción de totales.
//
// Toda la aritmética usa float64 sin redondeo interno; el redondeo a dos
// decimales ocurre únicamente en la capa de presentación (pkg/money).
package budget

import "github.com/Allvasc/orcamento/internal/domain/entity"

// ComputeDerived calcula los cinco importes derivados de la línea a partir de
// sus campos de entrada. Se invoca una sola vez, al crear la línea.
//
//	Subtotal         = Quantity * UnitPrice
//	DiscountAmount   = Subtotal * DiscountRate/100
//	NetAfterDiscount = Subtotal - DiscountAmount
//	TaxAmount        = NetAfterDiscount * TaxRate/100
//	Total            = NetAfterDiscount + TaxAmount
func ComputeDerived(item *entity.LineItem) {
	item.Subtotal = item.Quantity * item.UnitPrice
	item.DiscountAmount = item.Subtotal * (item.DiscountRate / 100)
	item.NetAfterDiscount = item.Subtotal - item.DiscountAmount
	item.TaxAmount = item.NetAfterDiscount * (item.TaxRate / 100)
	item.Total = item.NetAfterDiscount + item.TaxAmount
}

// SumTotals reduce las líneas actuales al resumen agregado. La suma es
// conmutativa: el orden de las líneas no afecta al resultado.
func SumTotals(items []entity.LineItem) entity.Totals {
	var t entity.Totals
	for _, it := range items {
		t.Subtotal += it.NetAfterDiscount
		t.Discount += it.DiscountAmount
		t.Tax += it.TaxAmount
		t.Total += it.Total
	}
	return t
}
