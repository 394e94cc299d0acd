// Package assets descarga recursos externos del documento; hoy, solo el logo
// de la empresa que se incrusta en el PDF.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	// Decoders registrados para verificar el formato del logo.
	_ "image/jpeg"
	_ "image/png"

	"github.com/Allvasc/orcamento/internal/application/export"
)

// maxLogoBytes límite de descarga del logo.
const maxLogoBytes = 2 << 20 // 2 MiB

// HTTPLogoFetcher implementa export.LogoFetcher descargando el logo por HTTP.
// Los fallos llegan etiquetados con su etapa: transporte o respuesta no-200 →
// StageFetch; contenido que no es PNG/JPEG → StageDecode.
type HTTPLogoFetcher struct {
	url    string
	client *http.Client
}

// NewHTTPLogoFetcher construye el fetcher para la URL dada.
func NewHTTPLogoFetcher(url string) *HTTPLogoFetcher {
	return &HTTPLogoFetcher{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch descarga y verifica el logo.
func (f *HTTPLogoFetcher) Fetch(ctx context.Context) (export.Logo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return export.Logo{}, &export.StageError{Stage: export.StageFetch, Err: err}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return export.Logo{}, &export.StageError{Stage: export.StageFetch, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return export.Logo{}, &export.StageError{
			Stage: export.StageFetch,
			Err:   fmt.Errorf("logo %s: HTTP %d", f.url, resp.StatusCode),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return export.Logo{}, &export.StageError{Stage: export.StageFetch, Err: err}
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return export.Logo{}, &export.StageError{
			Stage: export.StageDecode,
			Err:   fmt.Errorf("logo %s: %w", f.url, err),
		}
	}
	switch format {
	case "png":
		return export.Logo{Bytes: data, Ext: "png"}, nil
	case "jpeg":
		return export.Logo{Bytes: data, Ext: "jpg"}, nil
	default:
		return export.Logo{}, &export.StageError{
			Stage: export.StageDecode,
			Err:   fmt.Errorf("logo %s: formato %q no soportado", f.url, format),
		}
	}
}
