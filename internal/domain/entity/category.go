package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// MaxCategoryNameLen longitud máxima del nombre de una categoría.
const MaxCategoryNameLen = 100

// Category agrupa productos bajo un nombre único (entre categorías no eliminadas).
// Products es un set por ID: la pertenencia es idempotente y la comprobación O(1).
// La colección se hidrata por el repositorio antes de las operaciones que la
// necesitan (Delete, RemoveProduct).
type Category struct {
	ID       string              `json:"categoryId"`
	Name     string              `json:"name"`
	Products map[string]*Product `json:"-"`
	Lifecycle
}

// NewCategory crea una categoría activa con nombre validado.
func NewCategory(name string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	return &Category{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Products:  make(map[string]*Product),
		Lifecycle: newLifecycle(),
	}, nil
}

func validateCategoryName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > MaxCategoryNameLen {
		return domain.ErrInvalidArgument
	}
	return nil
}

// Rename cambia el nombre de la categoría.
func (c *Category) Rename(newName string) error {
	if err := c.guardMutable(); err != nil {
		return err
	}
	if err := validateCategoryName(newName); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(newName)
	c.touch()
	return nil
}

// AddProduct incorpora un producto al set. Reincorporar un producto ya
// presente es un no-op (sin error y sin avance de UpdatedAt).
func (c *Category) AddProduct(p *Product) error {
	if err := c.guardMutable(); err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNullArgument
	}
	if c.Products == nil {
		c.Products = make(map[string]*Product)
	}
	if _, ok := c.Products[p.ID]; ok {
		return nil
	}
	c.Products[p.ID] = p
	c.touch()
	return nil
}

// RemoveProduct quita un producto del set. Quitar uno ausente es un no-op.
func (c *Category) RemoveProduct(p *Product) error {
	if err := c.guardMutable(); err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNullArgument
	}
	if _, ok := c.Products[p.ID]; !ok {
		return nil
	}
	delete(c.Products, p.ID)
	c.touch()
	return nil
}

// Delete soft-elimina la categoría. Falla con ErrHasActiveDependents si algún
// producto asociado sigue no eliminado: la comprobación ocurre ANTES de mutar
// (check-then-act), de modo que un fallo deja la categoría intacta.
func (c *Category) Delete() error {
	if c.IsDeleted() {
		return domain.ErrAlreadyDeleted
	}
	for _, p := range c.Products {
		if !p.IsDeleted() {
			return domain.ErrHasActiveDependents
		}
	}
	return c.markDeleted()
}

// Restore revierte el soft-delete.
func (c *Category) Restore() error {
	return c.markRestored()
}
