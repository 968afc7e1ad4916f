package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Longitudes máximas de los campos de texto de Product.
const (
	MaxProductNameLen        = 200
	MaxProductDescriptionLen = 1000
)

// Product es el agregado central del catálogo: pertenece a exactamente una
// categoría (CategoryID requerido) y mantiene un set de tags por ID. La
// existencia de la categoría referenciada la verifica el caso de uso que
// orquesta, no el agregado (evita lookups cruzados aquí).
type Product struct {
	ID          string          `json:"productId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	CategoryID  string          `json:"categoryId"`
	Tags        map[string]*Tag `json:"-"`
	Lifecycle
}

// NewProduct crea un producto activo o inactivo con todos los campos validados.
func NewProduct(name, description string, price decimal.Decimal, active bool, categoryID string) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateProductDescription(description); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, domain.ErrInvalidArgument
	}
	if categoryID == "" {
		return nil, domain.ErrInvalidArgument
	}
	return &Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
		Active:      active,
		CategoryID:  categoryID,
		Tags:        make(map[string]*Tag),
		Lifecycle:   newLifecycle(),
	}, nil
}

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > MaxProductNameLen {
		return domain.ErrInvalidArgument
	}
	return nil
}

func validateProductDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" || len(trimmed) > MaxProductDescriptionLen {
		return domain.ErrInvalidArgument
	}
	return nil
}

// Rename cambia el nombre del producto.
func (p *Product) Rename(newName string) error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	if err := validateProductName(newName); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(newName)
	p.touch()
	return nil
}

// Redescribe cambia la descripción del producto.
func (p *Product) Redescribe(newDescription string) error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	if err := validateProductDescription(newDescription); err != nil {
		return err
	}
	p.Description = strings.TrimSpace(newDescription)
	p.touch()
	return nil
}

// Reprice cambia el precio. No se admiten precios negativos.
func (p *Product) Reprice(newPrice decimal.Decimal) error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	if newPrice.IsNegative() {
		return domain.ErrInvalidArgument
	}
	p.Price = newPrice
	p.touch()
	return nil
}

// Activate marca el producto como activo. Idempotente.
func (p *Product) Activate() error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	p.Active = true
	p.touch()
	return nil
}

// Deactivate marca el producto como inactivo. Idempotente.
func (p *Product) Deactivate() error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	p.Active = false
	p.touch()
	return nil
}

// ChangeCategory reasigna el producto a otra categoría. Solo valida que el
// identificador no sea vacío; que la categoría exista lo comprueba el caso
// de uso antes de llamar aquí (falla con ErrNotFound en ese nivel).
func (p *Product) ChangeCategory(newCategoryID string) error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	if newCategoryID == "" {
		return domain.ErrInvalidArgument
	}
	p.CategoryID = newCategoryID
	p.touch()
	return nil
}

// AddTag incorpora un tag al set. Reincorporar un tag ya presente es un
// no-op sin avance de UpdatedAt.
func (p *Product) AddTag(t *Tag) error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNullArgument
	}
	if p.Tags == nil {
		p.Tags = make(map[string]*Tag)
	}
	if _, ok := p.Tags[t.ID]; ok {
		return nil
	}
	p.Tags[t.ID] = t
	p.touch()
	return nil
}

// RemoveTag quita un tag del set. Quitar uno ausente es un no-op.
func (p *Product) RemoveTag(t *Tag) error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNullArgument
	}
	if _, ok := p.Tags[t.ID]; !ok {
		return nil
	}
	delete(p.Tags, t.ID)
	p.touch()
	return nil
}

// ClearTags vacía el set de tags. Sobre un set ya vacío es un no-op.
func (p *Product) ClearTags() error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	if len(p.Tags) == 0 {
		return nil
	}
	p.Tags = make(map[string]*Tag)
	p.touch()
	return nil
}

// Delete soft-elimina el producto.
func (p *Product) Delete() error {
	return p.markDeleted()
}

// Restore revierte el soft-delete.
func (p *Product) Restore() error {
	return p.markRestored()
}
