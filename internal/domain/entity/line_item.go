package entity

// LineItem representa una línea del presupuesto. Los campos de entrada se
// fijan al crear la línea y los importes derivados se calculan una única vez;
// editar una línea equivale a eliminarla y volverla a añadir.
type LineItem struct {
	ID           int64
	Description  string
	Quantity     float64
	UnitPrice    float64
	TaxRate      float64 // porcentaje de IVA (21 = 21%)
	DiscountRate float64 // porcentaje de descuento

	// Importes derivados (ver budget.ComputeDerived).
	Subtotal         float64 // Quantity * UnitPrice
	DiscountAmount   float64 // Subtotal * DiscountRate/100
	NetAfterDiscount float64 // Subtotal - DiscountAmount
	TaxAmount        float64 // NetAfterDiscount * TaxRate/100
	Total            float64 // NetAfterDiscount + TaxAmount
}
