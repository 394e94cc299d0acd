package export

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackRef nombre usado cuando el presupuesto no tiene referencia.
const fallbackRef = "sin_numero"

// deaccent elimina marcas diacríticas y signos de compatibilidad
// (año → ano, Nº → No) antes de sanear la referencia para el nombre de
// fichero.
var deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Filename construye el nombre del fichero exportado con el patrón
// presupuesto_<referencia>.<ext>; sin referencia usa "sin_numero".
func Filename(reference string, format Format) string {
	ref := sanitizeReference(reference)
	if ref == "" {
		ref = fallbackRef
	}
	return fmt.Sprintf("presupuesto_%s.%s", ref, format)
}

// sanitizeReference deja la referencia apta para un nombre de fichero:
// sin acentos y solo [A-Za-z0-9_-]; cualquier otro carácter pasa a "_".
func sanitizeReference(ref string) string {
	ref = strings.TrimSpace(ref)
	if s, _, err := transform.String(deaccent, ref); err == nil {
		ref = s
	}
	var b strings.Builder
	for _, r := range ref {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
