package budget

import (
	"sync"
	"time"
)

// Store mantiene un ledger por sesión, solo en memoria: no hay persistencia y
// reiniciar el proceso pierde todos los presupuestos. Las sesiones inactivas
// caducan tras ttl; la limpieza es perezosa, al consultar el almacén.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*storeEntry
	now     func() time.Time // inyectable en tests
}

type storeEntry struct {
	ledger   *Ledger
	lastSeen time.Time
}

// NewStore crea el almacén de sesiones con el TTL de inactividad dado.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*storeEntry),
		now:     time.Now,
	}
}

// Get devuelve el ledger de la sesión, creándolo si no existe o si caducó.
func (s *Store) Get(sessionID string) *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	e, ok := s.entries[sessionID]
	if !ok {
		e = &storeEntry{ledger: NewLedger()}
		s.entries[sessionID] = e
	}
	e.lastSeen = now
	return e.ledger
}

// Sessions número de sesiones vivas.
func (s *Store) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(s.now())
	return len(s.entries)
}

func (s *Store) pruneLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, id)
		}
	}
}
