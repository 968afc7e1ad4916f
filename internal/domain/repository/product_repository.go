package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando no existe. Los métodos que hidratan
// tags lo indican en su nombre.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetWithTags hidrata además el set de tags del producto.
	GetWithTags(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(includeDeleted bool) ([]*entity.Product, error)
	ListDeleted() ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	ListByActive(active bool) ([]*entity.Product, error)
	// ListCandidates devuelve todos los productos no eliminados con sus tags
	// hidratados: es el set candidato que consume el motor de búsqueda.
	ListCandidates() ([]*entity.Product, error)
}
