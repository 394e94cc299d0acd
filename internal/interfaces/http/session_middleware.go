package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionCookie cookie que identifica la sesión de edición del presupuesto.
// Cada sesión tiene su propio ledger en memoria; no hay nada persistido.
const SessionCookie = "presupuesto_session"

const sessionLocal = "session_id"

// SessionMiddleware asigna un id de sesión nuevo (uuid v4) cuando la petición
// no trae cookie, y lo deja en Locals para los handlers.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(sessionLocal, sid)
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión de la petición.
func GetSessionID(c *fiber.Ctx) string {
	if sid, ok := c.Locals(sessionLocal).(string); ok {
		return sid
	}
	return ""
}
