package entity

import (
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Lifecycle es el mixin de soft-delete compartido por Category, Product y Tag.
// La máquina de estados tiene dos estados {Activo, Eliminado}: Delete pasa a
// Eliminado (guardado por ErrAlreadyDeleted) y Restore vuelve a Activo
// (guardado por ErrNotDeleted). Cualquier otro mutador debe llamar primero
// a guardMutable.
type Lifecycle struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// newLifecycle inicializa los timestamps de una entidad recién creada.
func newLifecycle() Lifecycle {
	now := time.Now().UTC()
	return Lifecycle{CreatedAt: now, UpdatedAt: now}
}

// IsDeleted indica si la entidad está soft-eliminada.
func (l *Lifecycle) IsDeleted() bool {
	return l.DeletedAt != nil
}

// guardMutable bloquea cualquier mutación sobre una entidad eliminada.
// Restore es la única operación que no pasa por aquí.
func (l *Lifecycle) guardMutable() error {
	if l.IsDeleted() {
		return domain.ErrEntityDeleted
	}
	return nil
}

// markDeleted ejecuta la transición Activo→Eliminado.
func (l *Lifecycle) markDeleted() error {
	if l.IsDeleted() {
		return domain.ErrAlreadyDeleted
	}
	now := time.Now().UTC()
	l.DeletedAt = &now
	l.UpdatedAt = now
	return nil
}

// markRestored ejecuta la transición Eliminado→Activo.
func (l *Lifecycle) markRestored() error {
	if !l.IsDeleted() {
		return domain.ErrNotDeleted
	}
	l.DeletedAt = nil
	l.UpdatedAt = time.Now().UTC()
	return nil
}

// touch avanza UpdatedAt tras una mutación exitosa. Los no-ops verdaderos
// (membresía sin cambio, por ejemplo) no deben llamarlo.
func (l *Lifecycle) touch() {
	l.UpdatedAt = time.Now().UTC()
}
