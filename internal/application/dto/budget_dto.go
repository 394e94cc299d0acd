package dto

import (
	"time"

	"github.com/Allvasc/orcamento/internal/domain/budget"
	"github.com/Allvasc/orcamento/internal/domain/entity"
	"github.com/Allvasc/orcamento/pkg/money"
)

// AddItemRequest body para POST /api/presupuesto/items. Los campos numéricos
// llegan como texto, tal cual los envía el formulario; la puerta de
// validación decide si el alta procede.
type AddItemRequest struct {
	Description  string `json:"description"`
	Quantity     string `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	TaxRate      string `json:"tax_rate,omitempty"`
	DiscountRate string `json:"discount_rate,omitempty"`
}

// FormInput convierte el body en la entrada de la puerta de validación.
func (r AddItemRequest) FormInput() budget.FormInput {
	return budget.FormInput{
		Description:  r.Description,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice,
		TaxRate:      r.TaxRate,
		DiscountRate: r.DiscountRate,
	}
}

// LineItemResponse una fila de la tabla en pantalla: valores crudos más las
// columnas ya formateadas tal como se muestran (y como las renderizan los
// exportadores).
type LineItemResponse struct {
	ID           int64   `json:"id"`
	Description  string  `json:"description"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TaxRate      float64 `json:"tax_rate"`
	DiscountRate float64 `json:"discount_rate"`

	Subtotal         float64 `json:"subtotal"`
	DiscountAmount   float64 `json:"discount_amount"`
	NetAfterDiscount float64 `json:"net_after_discount"`
	TaxAmount        float64 `json:"tax_amount"`
	Total            float64 `json:"total"`

	UnitPriceText string `json:"unit_price_text"`
	DiscountText  string `json:"discount_text"`
	NetText       string `json:"net_text"`
	TaxText       string `json:"tax_text"`
	TotalText     string `json:"total_text"`
}

// NewLineItemResponse mapea una línea del dominio a su fila de presentación.
func NewLineItemResponse(it entity.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:               it.ID,
		Description:      it.Description,
		Quantity:         it.Quantity,
		UnitPrice:        it.UnitPrice,
		TaxRate:          it.TaxRate,
		DiscountRate:     it.DiscountRate,
		Subtotal:         it.Subtotal,
		DiscountAmount:   it.DiscountAmount,
		NetAfterDiscount: it.NetAfterDiscount,
		TaxAmount:        it.TaxAmount,
		Total:            it.Total,
		UnitPriceText:    money.FormatEUR(it.UnitPrice),
		DiscountText:     money.FormatRate(it.DiscountRate),
		NetText:          money.FormatEUR(it.NetAfterDiscount),
		TaxText:          money.FormatEUR(it.TaxAmount),
		TotalText:        money.FormatEUR(it.Total),
	}
}

// TotalsResponse el resumen en pantalla.
type TotalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`

	SubtotalText string `json:"subtotal_text"`
	DiscountText string `json:"discount_text"`
	TaxText      string `json:"tax_text"`
	TotalText    string `json:"total_text"`
}

// NewTotalsResponse mapea el agregado a su presentación.
func NewTotalsResponse(t entity.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:     t.Subtotal,
		Discount:     t.Discount,
		Tax:          t.Tax,
		Total:        t.Total,
		SubtotalText: money.FormatEUR(t.Subtotal),
		DiscountText: money.FormatEUR(t.Discount),
		TaxText:      money.FormatEUR(t.Tax),
		TotalText:    money.FormatEUR(t.Total),
	}
}

// BudgetResponse estado completo del presupuesto para GET /api/presupuesto.
type BudgetResponse struct {
	Items  []LineItemResponse `json:"items"`
	Totals TotalsResponse     `json:"totals"`
}

// RemoveItemResponse resultado de DELETE /api/presupuesto/items/:id.
type RemoveItemResponse struct {
	Removed bool `json:"removed"`
}

// ClientInfoQuery parámetros de cabecera del documento en la query de
// exportación. Todos opcionales; los defaults replican el formulario.
type ClientInfoQuery struct {
	Reference string `query:"presupuesto"`
	Name      string `query:"name"`
	Address   string `query:"address"`
	City      string `query:"city"`
	Date      string `query:"date"`     // ISO: 2006-01-02
	Validity  string `query:"validity"` // días
}

// ClientInfo aplica los defaults: fecha actual y 30 días de validez.
func (q ClientInfoQuery) ClientInfo(now time.Time) entity.ClientInfo {
	info := entity.ClientInfo{
		Reference:    q.Reference,
		Name:         q.Name,
		Address:      q.Address,
		City:         q.City,
		Date:         now,
		ValidityDays: entity.DefaultValidityDays,
	}
	if d, err := time.Parse("2006-01-02", q.Date); err == nil {
		info.Date = d
	}
	if v, err := parsePositiveInt(q.Validity); err == nil {
		info.ValidityDays = v
	}
	return info
}

// NotificationResponse aviso transitorio para GET /api/notifications.
type NotificationResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
