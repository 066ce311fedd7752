// Package memory implementa los puertos de persistencia sobre memoria de
// proceso. Es el backend volátil del sistema: no hay durabilidad, todo vive
// mientras viva el proceso.
//
// Una colección por tipo de entidad, cada una con su propio RWMutex y su
// contador de ids monótono (arranca en 1, nunca se reutiliza, ni siquiera
// tras borrar). Las mutaciones se serializan por colección; las lecturas
// pueden correr en paralelo entre sí.
package memory

import (
	"sort"
	"sync"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
)

// collection es una colección de entidades indexada por id.
// Guarda valores (no punteros): lo que entra y sale son copias, de modo que
// ningún llamador puede mutar el estado interno sin pasar por la colección.
type collection[T any] struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[int64]T)}
}

// insert asigna el siguiente id y guarda el registro que devuelva build.
// El contador se incrementa exactamente una vez por llamada.
func (c *collection[T]) insert(build func(id int64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	item := build(c.seq)
	c.items[c.seq] = item
	return item
}

func (c *collection[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// list devuelve todos los registros ordenados por id ascendente.
func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]int64, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.items[id])
	}
	return out
}

// replace sobrescribe el registro completo. Devuelve false si el id no existe.
func (c *collection[T]) replace(id int64, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = item
	return true
}

// remove borra el registro y devuelve si existía. No toca el contador de ids.
func (c *collection[T]) remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// removeWhere borra todos los registros que cumplan match y devuelve cuántos.
func (c *collection[T]) removeWhere(match func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for id, item := range c.items {
		if match(item) {
			delete(c.items, id)
			n++
		}
	}
	return n
}

// Store agrupa todas las colecciones del libro contable. Se construye una vez
// al arrancar el proceso y se inyecta en los repositorios; no hay teardown
// porque el almacenamiento es volátil.
type Store struct {
	customers      *collection[entity.Customer]
	suppliers      *collection[entity.Supplier]
	products       *collection[entity.Product]
	incomes        *collection[entity.Income]
	expenses       *collection[entity.Expense]
	invoices       *collection[entity.Invoice]
	invoiceItems   *collection[entity.InvoiceItem]
	taxes          *collection[entity.Tax]
	schedules      *collection[entity.PaymentSchedule]
	bankAccounts   *collection[entity.BankAccount]
	paymentMethods *collection[entity.PaymentMethod]
	paymentPlans   *collection[entity.PaymentPlan]
	payments       *collection[entity.Payment]

	// Settings es singleton: no tiene colección ni contador.
	settingsMu sync.RWMutex
	settings   *entity.Settings
}

// NewStore construye el almacén vacío con todos los contadores en cero
// (el primer id asignado de cada tipo es 1).
func NewStore() *Store {
	return &Store{
		customers:      newCollection[entity.Customer](),
		suppliers:      newCollection[entity.Supplier](),
		products:       newCollection[entity.Product](),
		incomes:        newCollection[entity.Income](),
		expenses:       newCollection[entity.Expense](),
		invoices:       newCollection[entity.Invoice](),
		invoiceItems:   newCollection[entity.InvoiceItem](),
		taxes:          newCollection[entity.Tax](),
		schedules:      newCollection[entity.PaymentSchedule](),
		bankAccounts:   newCollection[entity.BankAccount](),
		paymentMethods: newCollection[entity.PaymentMethod](),
		paymentPlans:   newCollection[entity.PaymentPlan](),
		payments:       newCollection[entity.Payment](),
	}
}
