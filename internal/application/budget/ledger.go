// Package budget (capa de aplicación) gestiona el estado vivo del
// presupuesto: el ledger de líneas de cada sesión y su almacén en memoria.
package budget

import (
	"sync"

	dombudget "github.com/Allvasc/orcamento/internal/domain/budget"
	"github.com/Allvasc/orcamento/internal/domain/entity"
)

// Ledger es la colección ordenada y mutable de líneas de un presupuesto.
// El orden de inserción es el orden de presentación. Los ids son crecientes,
// únicos dentro de la sesión y nunca se reutilizan, ni tras eliminar.
//
// Los handlers de Fiber se ejecutan concurrentemente, así que toda mutación y
// lectura pasa por el mutex.
type Ledger struct {
	mu      sync.Mutex
	items   []entity.LineItem
	counter int64
}

// NewLedger crea un ledger vacío.
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem asigna el siguiente id, calcula los importes derivados y añade la
// línea al final. Confía en que el caller ya pasó la puerta de validación
// (budget.FormInput.Valid); aquí no se re-valida.
func (l *Ledger) AddItem(description string, quantity, unitPrice, taxRate, discountRate float64) entity.LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counter++
	item := entity.LineItem{
		ID:           l.counter,
		Description:  description,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TaxRate:      taxRate,
		DiscountRate: discountRate,
	}
	dombudget.ComputeDerived(&item)
	l.items = append(l.items, item)
	return item
}

// RemoveItem elimina la línea con el id dado si existe y devuelve si hubo
// eliminación. Es idempotente: eliminar un id inexistente es un no-op.
func (l *Ledger) RemoveItem(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, it := range l.items {
		if it.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Aggregate recalcula el resumen desde el conjunto completo de líneas.
// Función pura del estado actual; sin caché.
func (l *Ledger) Aggregate() entity.Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return dombudget.SumTotals(l.items)
}

// Snapshot devuelve una copia inmutable de las líneas junto con el agregado
// calculado sobre esa misma copia. Es la única fuente de cifras para la tabla
// en pantalla y para los tres exportadores, de modo que nunca puedan divergir.
func (l *Ledger) Snapshot() ([]entity.LineItem, entity.Totals) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]entity.LineItem, len(l.items))
	copy(items, l.items)
	return items, dombudget.SumTotals(items)
}

// Len número de líneas actuales.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
