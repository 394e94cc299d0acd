package entity

// Totals resumen agregado del presupuesto: la suma, sobre todas las líneas
// actuales, de sus importes derivados. Se recalcula desde el conjunto completo
// en cada consulta; nunca se mantienen acumuladores independientes.
type Totals struct {
	Subtotal float64 // suma de NetAfterDiscount
	Discount float64 // suma de DiscountAmount
	Tax      float64 // suma de TaxAmount
	Total    float64 // suma de Total
}
