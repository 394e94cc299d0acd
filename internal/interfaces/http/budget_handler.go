package http

import (
	"github.com/gofiber/fiber/v2"

	appbudget "github.com/Allvasc/orcamento/internal/application/budget"
	"github.com/Allvasc/orcamento/internal/application/dto"
)

// BudgetHandler maneja las peticiones del presupuesto en edición.
type BudgetHandler struct {
	store *appbudget.Store
}

// NewBudgetHandler construye el handler.
func NewBudgetHandler(store *appbudget.Store) *BudgetHandler {
	return &BudgetHandler{store: store}
}

// AddItem añade una línea al presupuesto de la sesión.
// POST /api/presupuesto/items
//
// La puerta de validación se evalúa aquí, antes de tocar el ledger: un body
// inválido responde 422 y el ledger nunca recibe la entrada (equivalente al
// botón de añadir deshabilitado).
func (h *BudgetHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	form := in.FormInput()
	if !form.Valid() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "descripción vacía, cantidad <= 0 o precio unitario < 0",
		})
	}

	ledger := h.store.Get(GetSessionID(c))
	item := ledger.AddItem(form.Values())
	return c.Status(fiber.StatusCreated).JSON(dto.NewLineItemResponse(item))
}

// RemoveItem elimina una línea por id. Idempotente: un id inexistente
// responde removed:false, no error.
// DELETE /api/presupuesto/items/:id
func (h *BudgetHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}

	ledger := h.store.Get(GetSessionID(c))
	removed := ledger.RemoveItem(int64(id))
	return c.JSON(dto.RemoveItemResponse{Removed: removed})
}

// Get devuelve la tabla y el resumen actuales de la sesión.
// GET /api/presupuesto
func (h *BudgetHandler) Get(c *fiber.Ctx) error {
	ledger := h.store.Get(GetSessionID(c))
	items, totals := ledger.Snapshot()

	resp := dto.BudgetResponse{
		Items:  make([]dto.LineItemResponse, 0, len(items)),
		Totals: dto.NewTotalsResponse(totals),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.NewLineItemResponse(it))
	}
	return c.JSON(resp)
}
