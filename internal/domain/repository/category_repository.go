package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID/GetByName devuelven (nil, nil) cuando no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetWithProducts hidrata además el set de productos de la categoría,
	// necesario para evaluar la regla HasActiveDependents antes de eliminar.
	GetWithProducts(id string) (*entity.Category, error)
	// GetByName busca por nombre exacto entre categorías NO eliminadas
	// (la unicidad de nombre solo aplica a las vivas).
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(includeDeleted bool) ([]*entity.Category, error)
	ListDeleted() ([]*entity.Category, error)
}
