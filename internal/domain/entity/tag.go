package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// MaxTagNameLen longitud máxima del nombre de un tag.
const MaxTagNameLen = 100

// Tag etiqueta asignable a lo sumo a un producto. Nace sin asignación
// (ProductID vacío) y se asocia vía AssignToProduct.
type Tag struct {
	ID        string `json:"tagId"`
	Name      string `json:"name"`
	ProductID string `json:"productId,omitempty"`
	Lifecycle
}

// NewTag crea un tag activo sin producto asignado.
func NewTag(name string) (*Tag, error) {
	if err := validateTagName(name); err != nil {
		return nil, err
	}
	return &Tag{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Lifecycle: newLifecycle(),
	}, nil
}

func validateTagName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > MaxTagNameLen {
		return domain.ErrInvalidArgument
	}
	return nil
}

// Rename cambia el nombre del tag.
func (t *Tag) Rename(newName string) error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	if err := validateTagName(newName); err != nil {
		return err
	}
	t.Name = strings.TrimSpace(newName)
	t.touch()
	return nil
}

// AssignToProduct asocia el tag al producto indicado. La existencia del
// producto la verifica el caso de uso.
func (t *Tag) AssignToProduct(productID string) error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	if productID == "" {
		return domain.ErrInvalidArgument
	}
	t.ProductID = productID
	t.touch()
	return nil
}

// Unassign desasocia el tag de su producto. Sin asignación previa es un no-op.
func (t *Tag) Unassign() error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	if t.ProductID == "" {
		return nil
	}
	t.ProductID = ""
	t.touch()
	return nil
}

// Delete soft-elimina el tag.
func (t *Tag) Delete() error {
	return t.markDeleted()
}

// Restore revierte el soft-delete.
func (t *Tag) Restore() error {
	return t.markRestored()
}
