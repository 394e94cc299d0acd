// Package export orquesta la generación bajo demanda de los tres formatos de
// documento del presupuesto. Cada exportación es una transformación pura de
// una instantánea del ledger: nunca muta el presupuesto, de modo que tras un
// fallo el usuario puede reintentar sin volver a introducir datos.
package export

import (
	"context"

	"github.com/Allvasc/orcamento/internal/domain/entity"
)

// Format identifica el tipo de documento a generar. Coincide con la extensión
// del fichero resultante.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatWord  Format = "docx"
	FormatExcel Format = "xlsx"
)

// Logo imagen de la empresa ya descargada y verificada, lista para incrustar.
type Logo struct {
	Bytes []byte
	Ext   string // "png" o "jpg"
}

// Snapshot estado inmutable que reciben los generadores: líneas en orden de
// inserción más el agregado calculado sobre esas mismas líneas. Los tres
// formatos y la tabla en pantalla comparten estas cifras.
type Snapshot struct {
	Company entity.CompanyInfo
	Client  entity.ClientInfo
	Items   []entity.LineItem
	Totals  entity.Totals
	Logo    *Logo // solo se rellena para el PDF; nil en los demás formatos
}

// DocumentGenerator genera los bytes de un documento a partir de la
// instantánea. Implementado por internal/infrastructure/{pdf,excel,word}.
type DocumentGenerator interface {
	Generate(ctx context.Context, snap Snapshot) ([]byte, error)
}

// LogoFetcher descarga y verifica el logo de la empresa. Sus errores llegan
// etiquetados con la etapa (StageFetch o StageDecode).
type LogoFetcher interface {
	Fetch(ctx context.Context) (Logo, error)
}
