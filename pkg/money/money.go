// Package money formatea importes para presentación en el par fijo
// locale/moneda del documento (es-ES, euro): coma decimal, punto de miles y
// símbolo pospuesto, p. ej. "1.234,56 €".
//
// El redondeo a dos decimales ocurre aquí y solo aquí; la aritmética interna
// del presupuesto trabaja con float64 sin redondear.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatEUR formatea un importe en euros al estilo es-ES.
func FormatEUR(v float64) string {
	d := decimal.NewFromFloat(v)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}
	fixed := d.StringFixed(2) // "1234.56"
	intPart, decPart, _ := strings.Cut(fixed, ".")

	out := groupThousands(intPart) + "," + decPart + " €"
	if neg {
		out = "-" + out
	}
	return out
}

// FormatRate formatea una tasa porcentual sin ceros sobrantes y con coma
// decimal: 21 → "21%", 10.5 → "10,5%".
func FormatRate(v float64) string {
	return FormatNumber(v) + "%"
}

// FormatNumber formatea un número (cantidad, tasa) sin ceros sobrantes,
// con coma decimal.
func FormatNumber(v float64) string {
	s := decimal.NewFromFloat(v).String()
	return strings.ReplaceAll(s, ".", ",")
}

// groupThousands inserta puntos de miles en un string de dígitos.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
