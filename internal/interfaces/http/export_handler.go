package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appbudget "github.com/Allvasc/orcamento/internal/application/budget"
	"github.com/Allvasc/orcamento/internal/application/dto"
	"github.com/Allvasc/orcamento/internal/application/export"
	"github.com/Allvasc/orcamento/internal/application/notify"
	"github.com/Allvasc/orcamento/internal/domain"
	"github.com/Allvasc/orcamento/pkg/logger"
)

// Content-Type por formato exportado.
var contentTypes = map[export.Format]string{
	export.FormatPDF:   "application/pdf",
	export.FormatWord:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	export.FormatExcel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Mensajes de notificación por formato.
var (
	successMessages = map[export.Format]string{
		export.FormatPDF:   "PDF generado con éxito!",
		export.FormatWord:  "Documento Word generado con éxito!",
		export.FormatExcel: "Hoja de cálculo Excel generada con éxito!",
	}
	errorMessages = map[export.Format]string{
		export.FormatPDF:   "Error al generar PDF. Inténtelo de nuevo.",
		export.FormatWord:  "Error al generar documento Word. Inténtelo de nuevo.",
		export.FormatExcel: "Error al generar hoja de cálculo Excel. Inténtelo de nuevo.",
	}
)

// ExportHandler maneja la descarga de documentos. Cada exportación lee una
// instantánea del ledger y nunca lo muta: tras un fallo el usuario reintenta
// sin perder datos.
type ExportHandler struct {
	store  *appbudget.Store
	uc     *export.UseCase
	notify *notify.Center
	log    *logger.Logger
}

// NewExportHandler construye el handler.
func NewExportHandler(store *appbudget.Store, uc *export.UseCase, center *notify.Center, log *logger.Logger) *ExportHandler {
	return &ExportHandler{store: store, uc: uc, notify: center, log: log}
}

// Export genera y descarga el documento del formato pedido.
// GET /api/presupuesto/export/:format
//
// Los datos de cabecera (referencia, cliente, fecha, validez) van en la query;
// los ausentes toman los defaults del formulario.
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Params("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "formato no soportado: use pdf, docx o xlsx",
		})
	}

	var q dto.ClientInfoQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	client := q.ClientInfo(time.Now())

	sessionID := GetSessionID(c)
	ledger := h.store.Get(sessionID)

	doc, filename, err := h.uc.Export(c.Context(), format, ledger, client)
	if err != nil {
		h.notify.Publish(sessionID, notify.KindError, errorMessages[format])
		h.log.Error().Err(err).
			Str("format", string(format)).
			Str("stage", string(export.StageOf(err))).
			Msg("exportación fallida")

		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: errorMessages[format]})
	}

	h.notify.Publish(sessionID, notify.KindSuccess, successMessages[format])

	c.Set(fiber.HeaderContentType, contentTypes[format])
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(doc)
}
