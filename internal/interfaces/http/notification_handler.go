package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Allvasc/orcamento/internal/application/dto"
	"github.com/Allvasc/orcamento/internal/application/notify"
)

// NotificationHandler expone la notificación transitoria de la sesión.
type NotificationHandler struct {
	center *notify.Center
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(center *notify.Center) *NotificationHandler {
	return &NotificationHandler{center: center}
}

// Get devuelve la notificación viva de la sesión, o 204 si no hay ninguna
// (o si la última ya se autodescartó).
// GET /api/notifications
func (h *NotificationHandler) Get(c *fiber.Ctx) error {
	n, ok := h.center.Current(GetSessionID(c))
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(dto.NotificationResponse{Kind: string(n.Kind), Message: n.Message})
}
