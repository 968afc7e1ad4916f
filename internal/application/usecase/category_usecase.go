package usecase

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase orquesta los comandos sobre el agregado Category. Es la
// pieza más transversal del dominio: Delete depende del estado de los
// productos asociados, que se hidratan ANTES de evaluar la regla
// (check-then-act, nunca al revés).
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	tx    TxRunner
	audit ports.AuditLogger
}

// NewCategoryUseCase construye el caso de uso. tx se usa en los comandos que
// tocan más de un agregado (Delete, AddProduct).
func NewCategoryUseCase(repo repository.CategoryRepository, tx TxRunner, audit ports.AuditLogger) *CategoryUseCase {
	if audit == nil {
		audit = ports.NopAuditLogger{}
	}
	return &CategoryUseCase{repo: repo, tx: tx, audit: audit}
}

// Create crea una categoría. El nombre debe ser único entre las no eliminadas.
func (uc *CategoryUseCase) Create(userID string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category, err := entity.NewCategory(in.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	uc.audit.Log(ports.ActionCategoryCreated, userID, map[string]any{
		"categoryId": category.ID,
		"name":       category.Name,
	})
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetWithProducts(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List lista categorías; includeDeleted incluye las soft-eliminadas.
func (uc *CategoryUseCase) List(includeDeleted bool) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(includeDeleted)
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// ListDeleted lista solo las categorías soft-eliminadas.
func (uc *CategoryUseCase) ListDeleted() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListDeleted()
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// Rename renombra la categoría manteniendo la unicidad entre no eliminadas.
func (uc *CategoryUseCase) Rename(userID, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != category.ID {
		return nil, domain.ErrDuplicate
	}
	if err := category.Rename(in.Name); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	uc.audit.Log(ports.ActionCategoryUpdated, userID, map[string]any{
		"categoryId": category.ID,
		"name":       category.Name,
	})
	return toCategoryResponse(category), nil
}

// Delete soft-elimina la categoría. Falla con ErrHasActiveDependents si algún
// producto asociado sigue vivo. Hidratación, evaluación de la regla y
// escritura ocurren dentro de una misma transacción: el snapshot de
// dependientes que se evalúa es el mismo que respalda el commit.
func (uc *CategoryUseCase) Delete(userID, id string) error {
	var deleted *entity.Category
	err := uc.tx.Run(func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		category, err := categories.GetWithProducts(id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		if err := category.Delete(); err != nil {
			return err
		}
		deleted = category
		return categories.Update(category)
	})
	if err != nil {
		return err
	}
	uc.audit.Log(ports.ActionCategoryDeleted, userID, map[string]any{
		"categoryId": deleted.ID,
		"name":       deleted.Name,
	})
	return nil
}

// Restore revierte el soft-delete de la categoría.
func (uc *CategoryUseCase) Restore(userID, id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if err := category.Restore(); err != nil {
		return err
	}
	if err := uc.repo.Update(category); err != nil {
		return err
	}
	uc.audit.Log(ports.ActionCategoryRestored, userID, map[string]any{
		"categoryId": category.ID,
	})
	return nil
}

// AddProduct asocia un producto a la categoría y lo recategoriza si venía de
// otra. Asociar uno ya presente es un no-op. Lectura y doble escritura
// (producto recategorizado + categoría tocada) comparten transacción.
func (uc *CategoryUseCase) AddProduct(userID, categoryID, productID string) error {
	err := uc.tx.Run(func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		category, err := categories.GetWithProducts(categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		product, err := products.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if _, ok := category.Products[product.ID]; ok {
			return nil
		}
		if err := category.AddProduct(product); err != nil {
			return err
		}
		if product.CategoryID != category.ID {
			if err := product.ChangeCategory(category.ID); err != nil {
				return err
			}
			if err := products.Update(product); err != nil {
				return err
			}
		}
		return categories.Update(category)
	})
	if err != nil {
		return err
	}
	uc.audit.Log(ports.ActionCategoryUpdated, userID, map[string]any{
		"categoryId": categoryID,
		"productId":  productID,
		"op":         "add_product",
	})
	return nil
}

// RemoveProduct desasocia un producto de la categoría. Sobre uno ausente es
// un no-op (la referencia CategoryID del producto no se anula: es requerida
// y solo cambia vía recategorización).
func (uc *CategoryUseCase) RemoveProduct(userID, categoryID, productID string) error {
	category, err := uc.repo.GetWithProducts(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	product, ok := category.Products[productID]
	if !ok {
		return nil
	}
	if err := category.RemoveProduct(product); err != nil {
		return err
	}
	if err := uc.repo.Update(category); err != nil {
		return err
	}
	uc.audit.Log(ports.ActionCategoryUpdated, userID, map[string]any{
		"categoryId": category.ID,
		"productId":  productID,
		"op":         "remove_product",
	})
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		CategoryID:   c.ID,
		Name:         c.Name,
		ProductCount: len(c.Products),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		DeletedAt:    c.DeletedAt,
	}
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items
}
