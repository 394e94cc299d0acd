package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbudget "github.com/Allvasc/orcamento/internal/application/budget"
	"github.com/Allvasc/orcamento/internal/application/dto"
	"github.com/Allvasc/orcamento/internal/application/export"
	"github.com/Allvasc/orcamento/internal/application/notify"
	"github.com/Allvasc/orcamento/internal/domain/entity"
	apphttp "github.com/Allvasc/orcamento/internal/interfaces/http"
	"github.com/Allvasc/orcamento/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubGenerator generador de documentos controlable desde los tests.
type stubGenerator struct {
	doc []byte
	err error
}

func (g *stubGenerator) Generate(_ context.Context, _ export.Snapshot) ([]byte, error) {
	return g.doc, g.err
}

// testApp aplicación Fiber con el router completo y generadores de stub.
type testApp struct {
	app    *fiber.App
	store  *appbudget.Store
	center *notify.Center
	pdf    *stubGenerator
}

// buildTestApp monta el router con un store nuevo, sin logo y generadores de
// stub (los adaptadores reales se prueban en sus propios paquetes).
func buildTestApp(t *testing.T) *testApp {
	t.Helper()

	store := appbudget.NewStore(time.Hour)
	center := notify.NewCenter(notify.DefaultTTL)
	pdf := &stubGenerator{doc: []byte("%PDF-stub")}
	word := &stubGenerator{doc: []byte("docx-stub")}
	excel := &stubGenerator{doc: []byte("xlsx-stub")}

	company := entity.CompanyInfo{Name: "Empresa Exemplo S.L."}
	uc := export.NewUseCase(company, nil, pdf, word, excel)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:  store,
		Export: uc,
		Notify: center,
		Log:    logger.New(logger.Config{Env: "production", Level: "error"}),
	})
	return &testApp{app: app, store: store, center: center, pdf: pdf}
}

// do lanza una petición y devuelve la respuesta. cookie vacía = sesión nueva.
func (ta *testApp) do(t *testing.T, method, target, cookie string, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: cookie})
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// sessionOf extrae el id de sesión asignado en la respuesta.
func sessionOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			return c.Value
		}
	}
	t.Fatal("la respuesta no asigna cookie de sesión")
	return ""
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de líneas del presupuesto
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: alta válida → 201 con las columnas calculadas y formateadas.
func TestAddItem_AltaValida(t *testing.T) {
	ta := buildTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/presupuesto/items", "",
		`{"description":"Consulting","quantity":"2","unit_price":"100","tax_rate":"21","discount_rate":"10"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var item dto.LineItemResponse
	decode(t, resp, &item)
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "Consulting", item.Description)
	assert.InDelta(t, 200, item.Subtotal, 1e-9)
	assert.InDelta(t, 20, item.DiscountAmount, 1e-9)
	assert.InDelta(t, 180, item.NetAfterDiscount, 1e-9)
	assert.InDelta(t, 37.8, item.TaxAmount, 1e-9)
	assert.InDelta(t, 217.8, item.Total, 1e-9)
	assert.Equal(t, "217,80 €", item.TotalText)
}

// Caso 2: la puerta de validación rechaza sin tocar el ledger → 422.
func TestAddItem_EntradaInvalida(t *testing.T) {
	ta := buildTestApp(t)

	cases := []string{
		`{"description":"   ","quantity":"2","unit_price":"100"}`,
		`{"description":"X","quantity":"0","unit_price":"100"}`,
		`{"description":"X","quantity":"abc","unit_price":"100"}`,
		`{"description":"X","quantity":"2","unit_price":"-5"}`,
	}
	var sid string
	for _, body := range cases {
		resp := ta.do(t, http.MethodPost, "/api/presupuesto/items", sid, body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, body)
		if sid == "" {
			sid = sessionOf(t, resp)
		}
		resp.Body.Close()
	}

	// El presupuesto de la sesión sigue vacío.
	resp := ta.do(t, http.MethodGet, "/api/presupuesto/", sid, "")
	var budget dto.BudgetResponse
	decode(t, resp, &budget)
	assert.Empty(t, budget.Items)
	assert.Equal(t, "0,00 €", budget.Totals.TotalText)
}

// Caso 3: tasas ausentes cuentan como cero, no como inválidas.
func TestAddItem_TasasOpcionales(t *testing.T) {
	ta := buildTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/presupuesto/items", "",
		`{"description":"Material","quantity":"3","unit_price":"15.5"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var item dto.LineItemResponse
	decode(t, resp, &item)
	assert.Zero(t, item.TaxRate)
	assert.Zero(t, item.DiscountRate)
	assert.InDelta(t, 46.5, item.Total, 1e-9)
}

// Caso 4: GET devuelve la tabla y el resumen de la sesión.
func TestGet_TablaYResumen(t *testing.T) {
	ta := buildTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/presupuesto/items", "",
		`{"description":"Consulting","quantity":"2","unit_price":"100","tax_rate":"21","discount_rate":"10"}`)
	sid := sessionOf(t, resp)
	resp.Body.Close()
	resp = ta.do(t, http.MethodPost, "/api/presupuesto/items", sid,
		`{"description":"Material","quantity":"3","unit_price":"15.5","tax_rate":"10"}`)
	resp.Body.Close()

	resp = ta.do(t, http.MethodGet, "/api/presupuesto/", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var budget dto.BudgetResponse
	decode(t, resp, &budget)
	require.Len(t, budget.Items, 2)
	assert.InDelta(t, 226.5, budget.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 268.95, budget.Totals.Total, 1e-9)
	assert.Equal(t, "268,95 €", budget.Totals.TotalText)
}

// Caso 5: cada sesión tiene su propio presupuesto.
func TestGet_SesionesAisladas(t *testing.T) {
	ta := buildTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/presupuesto/items", "",
		`{"description":"Consulting","quantity":"1","unit_price":"100"}`)
	resp.Body.Close()

	// Sesión nueva, sin cookie: presupuesto vacío.
	resp = ta.do(t, http.MethodGet, "/api/presupuesto/", "", "")
	var budget dto.BudgetResponse
	decode(t, resp, &budget)
	assert.Empty(t, budget.Items)
}

// Caso 6: eliminar es idempotente; el id nunca se reutiliza.
func TestRemoveItem_Idempotente(t *testing.T) {
	ta := buildTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/presupuesto/items", "",
		`{"description":"Consulting","quantity":"1","unit_price":"100"}`)
	sid := sessionOf(t, resp)
	resp.Body.Close()

	resp = ta.do(t, http.MethodDelete, "/api/presupuesto/items/1", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var removed dto.RemoveItemResponse
	decode(t, resp, &removed)
	assert.True(t, removed.Removed)

	// Repetir la eliminación no es un error.
	resp = ta.do(t, http.MethodDelete, "/api/presupuesto/items/1", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &removed)
	assert.False(t, removed.Removed)

	// Un alta posterior recibe un id nuevo.
	resp = ta.do(t, http.MethodPost, "/api/presupuesto/items", sid,
		`{"description":"Material","quantity":"1","unit_price":"10"}`)
	var item dto.LineItemResponse
	decode(t, resp, &item)
	assert.Equal(t, int64(2), item.ID)
}

// Caso 7: id no numérico o no positivo → 400.
func TestRemoveItem_IDInvalido(t *testing.T) {
	ta := buildTestApp(t)

	resp := ta.do(t, http.MethodDelete, "/api/presupuesto/items/abc", "", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = ta.do(t, http.MethodDelete, "/api/presupuesto/items/0", "", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de exportación y notificaciones
// ──────────────────────────────────────────────────────────────────────────────

// Caso 8: exportar un PDF descarga el documento con su nombre de fichero y
// publica la notificación de éxito.
func TestExport_DescargaYNotifica(t *testing.T) {
	ta := buildTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/presupuesto/items", "",
		`{"description":"Consulting","quantity":"2","unit_price":"100"}`)
	sid := sessionOf(t, resp)
	resp.Body.Close()

	resp = ta.do(t, http.MethodGet, "/api/presupuesto/export/pdf?presupuesto=2024-001", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="presupuesto_2024-001.pdf"`,
		resp.Header.Get(fiber.HeaderContentDisposition))
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), body)

	resp = ta.do(t, http.MethodGet, "/api/notifications", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var n dto.NotificationResponse
	decode(t, resp, &n)
	assert.Equal(t, "success", n.Kind)
	assert.Equal(t, "PDF generado con éxito!", n.Message)
}

// Caso 9: formato desconocido → 400, sin notificación.
func TestExport_FormatoNoSoportado(t *testing.T) {
	ta := buildTestApp(t)

	resp := ta.do(t, http.MethodGet, "/api/presupuesto/export/csv", "", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	sid := sessionOf(t, resp)
	resp.Body.Close()

	resp = ta.do(t, http.MethodGet, "/api/notifications", sid, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

// Caso 10: fallo del generador → 502, notificación de error y el presupuesto
// intacto para reintentar.
func TestExport_FalloDelGenerador(t *testing.T) {
	ta := buildTestApp(t)
	ta.pdf.err = errors.New("sin memoria para el documento")

	resp := ta.do(t, http.MethodPost, "/api/presupuesto/items", "",
		`{"description":"Consulting","quantity":"2","unit_price":"100"}`)
	sid := sessionOf(t, resp)
	resp.Body.Close()

	resp = ta.do(t, http.MethodGet, "/api/presupuesto/export/pdf", sid, "")
	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	var fail dto.ErrorResponse
	decode(t, resp, &fail)
	assert.Equal(t, "EXPORT_FAILED", fail.Code)

	resp = ta.do(t, http.MethodGet, "/api/notifications", sid, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var n dto.NotificationResponse
	decode(t, resp, &n)
	assert.Equal(t, "error", n.Kind)
	assert.Equal(t, "Error al generar PDF. Inténtelo de nuevo.", n.Message)

	// El ledger no se ha mutado por el fallo.
	resp = ta.do(t, http.MethodGet, "/api/presupuesto/", sid, "")
	var budget dto.BudgetResponse
	decode(t, resp, &budget)
	assert.Len(t, budget.Items, 1)
}

// Caso 11: sin cabecera de presupuesto, el nombre de fichero usa el fallback.
func TestExport_SinReferencia(t *testing.T) {
	ta := buildTestApp(t)

	resp := ta.do(t, http.MethodGet, "/api/presupuesto/export/xlsx", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="presupuesto_sin_numero.xlsx"`,
		resp.Header.Get(fiber.HeaderContentDisposition))
	resp.Body.Close()
}

// Caso 12: sin notificación viva → 204.
func TestNotifications_SinAvisos(t *testing.T) {
	ta := buildTestApp(t)

	resp := ta.do(t, http.MethodGet, "/api/notifications", "", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}
