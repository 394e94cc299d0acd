package budget

import (
	"math"
	"strconv"
	"strings"
)

// FormInput son los campos del formulario de alta tal cual los envía el
// cliente: texto sin parsear. La puerta de validación (Valid) decide si la
// acción de añadir está habilitada; el ledger confía en que su caller ya
// validó.
type FormInput struct {
	Description  string
	Quantity     string
	UnitPrice    string
	TaxRate      string
	DiscountRate string
}

// Valid es el predicado que habilita el alta: descripción no vacía tras
// recortar espacios, cantidad numérica > 0 y precio unitario numérico >= 0.
// Las tasas de IVA/descuento no bloquean el alta (ver Values). Es una función
// pura, sin efectos.
func (f FormInput) Valid() bool {
	if strings.TrimSpace(f.Description) == "" {
		return false
	}
	qty, err := parseNumber(f.Quantity)
	if err != nil || !(qty > 0) {
		return false
	}
	price, err := parseNumber(f.UnitPrice)
	if err != nil || !(price >= 0) {
		return false
	}
	return true
}

// Values devuelve los campos ya parseados. Solo tiene sentido tras Valid().
// Las tasas ausentes o no numéricas valen 0 en lugar de rechazar el alta.
func (f FormInput) Values() (description string, quantity, unitPrice, taxRate, discountRate float64) {
	description = strings.TrimSpace(f.Description)
	quantity, _ = parseNumber(f.Quantity)
	unitPrice, _ = parseNumber(f.UnitPrice)
	taxRate = rateOrZero(f.TaxRate)
	discountRate = rateOrZero(f.DiscountRate)
	return description, quantity, unitPrice, taxRate, discountRate
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

func rateOrZero(s string) float64 {
	v, err := parseNumber(s)
	if err != nil {
		return 0
	}
	return v
}
