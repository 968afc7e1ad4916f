package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// TagRepository define el puerto de persistencia para Tag (DIP).
// GetByID devuelve (nil, nil) cuando no existe.
type TagRepository interface {
	Create(tag *entity.Tag) error
	GetByID(id string) (*entity.Tag, error)
	Update(tag *entity.Tag) error
	List(includeDeleted bool) ([]*entity.Tag, error)
	ListDeleted() ([]*entity.Tag, error)
	ListByProduct(productID string) ([]*entity.Tag, error)
}
