package pdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbudget "github.com/Allvasc/orcamento/internal/application/budget"
	"github.com/Allvasc/orcamento/internal/application/export"
	"github.com/Allvasc/orcamento/internal/domain/entity"
)

func testSnapshot(t *testing.T) export.Snapshot {
	t.Helper()
	l := appbudget.NewLedger()
	l.AddItem("Consulting", 2, 100, 21, 10)
	l.AddItem("Material", 3, 15.5, 10, 0)
	items, totals := l.Snapshot()

	return export.Snapshot{
		Company: entity.CompanyInfo{Name: "Empresa Exemplo S.L.", Address: "Calle Mayor, 123, 28001 Madrid", Phone: "+34 91 123 45 67"},
		Client: entity.ClientInfo{
			Reference:    "2024-001",
			Name:         "Cliente Ejemplo",
			Address:      "Av. Pruebas 9",
			City:         "Madrid",
			Date:         time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ValidityDays: 30,
		},
		Items:  items,
		Totals: totals,
	}
}

// tinyPNG codifica un PNG de 1x1 para incrustar como logo.
func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 37, G: 99, B: 235, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestGenerate_DocumentoPDF(t *testing.T) {
	snap := testSnapshot(t)
	doc, err := NewMarotoBudgetGenerator().Generate(context.Background(), snap)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "el resultado debe empezar por la firma %%PDF")
}

func TestGenerate_ConLogo(t *testing.T) {
	snap := testSnapshot(t)
	snap.Logo = &export.Logo{Bytes: tinyPNG(t), Ext: "png"}

	doc, err := NewMarotoBudgetGenerator().Generate(context.Background(), snap)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerate_SinLineas(t *testing.T) {
	snap := testSnapshot(t)
	snap.Items = nil
	snap.Totals = entity.Totals{}

	doc, err := NewMarotoBudgetGenerator().Generate(context.Background(), snap)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
