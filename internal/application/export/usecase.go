package export

import (
	"context"
	"fmt"

	appbudget "github.com/Allvasc/orcamento/internal/application/budget"
	"github.com/Allvasc/orcamento/internal/domain"
	"github.com/Allvasc/orcamento/internal/domain/entity"
)

// UseCase resuelve una exportación de principio a fin: instantánea del
// ledger, descarga del logo cuando el formato lo incrusta y generación del
// documento. Cada adaptador recibe exactamente las mismas cifras que la tabla
// en pantalla (las de Ledger.Snapshot).
type UseCase struct {
	company    entity.CompanyInfo
	logo       LogoFetcher
	generators map[Format]DocumentGenerator
}

// NewUseCase construye el caso de uso. logo puede ser nil (no se incrusta
// imagen en el PDF).
func NewUseCase(company entity.CompanyInfo, logo LogoFetcher, pdf, word, excel DocumentGenerator) *UseCase {
	return &UseCase{
		company: company,
		logo:    logo,
		generators: map[Format]DocumentGenerator{
			FormatPDF:   pdf,
			FormatWord:  word,
			FormatExcel: excel,
		},
	}
}

// ParseFormat valida el formato pedido por la API.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatWord, FormatExcel:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: formato de exportación %q", domain.ErrInvalidInput, s)
	}
}

// Export genera el documento del formato pedido y devuelve sus bytes junto
// con el nombre de fichero. El ledger solo se lee (vía Snapshot); cualquier
// fallo deja el presupuesto intacto y llega etiquetado con su etapa para que
// la capa HTTP lo presente como notificación.
func (uc *UseCase) Export(
	ctx context.Context,
	format Format,
	ledger *appbudget.Ledger,
	client entity.ClientInfo,
) (doc []byte, filename string, err error) {
	gen, ok := uc.generators[format]
	if !ok || gen == nil {
		return nil, "", fmt.Errorf("%w: formato de exportación %q", domain.ErrInvalidInput, format)
	}

	items, totals := ledger.Snapshot()
	snap := Snapshot{
		Company: uc.company,
		Client:  client,
		Items:   items,
		Totals:  totals,
	}

	// El logo solo se incrusta en el PDF; su descarga debe completarse (o
	// fallar) antes de montar el documento.
	if format == FormatPDF && uc.logo != nil {
		logo, err := uc.logo.Fetch(ctx)
		if err != nil {
			return nil, "", err // ya viene etiquetado con StageFetch/StageDecode
		}
		snap.Logo = &logo
	}

	doc, err = gen.Generate(ctx, snap)
	if err != nil {
		return nil, "", &StageError{Stage: StageRender, Err: err}
	}
	return doc, Filename(client.Reference, format), nil
}
