// Package notify implementa el aviso transitorio de resultado de las
// exportaciones: una sola notificación visible por sesión, que se autodescarta
// por tiempo (no por acción del usuario).
package notify

import (
	"sync"
	"time"
)

// Kind tipo de notificación.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// DefaultTTL tiempo de vida de una notificación antes de autodescartarse.
const DefaultTTL = 3 * time.Second

// Notification aviso transitorio para una sesión.
type Notification struct {
	Kind    Kind
	Message string
	At      time.Time
}

// Center guarda la última notificación de cada sesión. Publicar reemplaza la
// anterior: no hay pila de notificaciones.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	current map[string]Notification
	now     func() time.Time
}

// NewCenter crea el centro de notificaciones; ttl <= 0 usa DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		ttl:     ttl,
		current: make(map[string]Notification),
		now:     time.Now,
	}
}

// Publish registra la notificación de la sesión, descartando la anterior.
func (c *Center) Publish(sessionID string, kind Kind, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current[sessionID] = Notification{Kind: kind, Message: message, At: c.now()}
}

// Current devuelve la notificación viva de la sesión, si la hay. Una
// notificación caducada se descarta y no se vuelve a entregar.
func (c *Center) Current(sessionID string) (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.current[sessionID]
	if !ok {
		return Notification{}, false
	}
	if c.now().Sub(n.At) > c.ttl {
		delete(c.current, sessionID)
		return Notification{}, false
	}
	return n, true
}
