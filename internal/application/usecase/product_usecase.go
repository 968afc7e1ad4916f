package usecase

import (
	"sort"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/domain/search"
	"github.com/shopspring/decimal"
)

// ProductUseCase orquesta los comandos sobre el agregado Product y expone la
// búsqueda. Las verificaciones cruzadas (existencia de la categoría destino,
// existencia del tag) ocurren aquí, no dentro del agregado.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	audit        ports.AuditLogger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, tagRepo repository.TagRepository, audit ports.AuditLogger) *ProductUseCase {
	if audit == nil {
		audit = ports.NopAuditLogger{}
	}
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, tagRepo: tagRepo, audit: audit}
}

// Create crea un producto. La categoría referenciada debe existir y no estar
// eliminada; si no, ErrNotFound.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.IsDeleted() {
		return nil, domain.ErrNotFound
	}
	product, err := entity.NewProduct(in.Name, in.Description, in.Price, in.Active, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.audit.Log(ports.ActionProductCreated, userID, map[string]any{
		"productId":  product.ID,
		"name":       product.Name,
		"price":      product.Price,
		"categoryId": product.CategoryID,
	})
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID con sus tags. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetWithTags(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos; includeDeleted incluye los soft-eliminados.
func (uc *ProductUseCase) List(includeDeleted bool) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(includeDeleted)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListDeleted lista solo los productos soft-eliminados.
func (uc *ProductUseCase) ListDeleted() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListDeleted()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByCategory lista los productos no eliminados de una categoría.
func (uc *ProductUseCase) ListByCategory(categoryID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByActive lista productos no eliminados por estado activo/inactivo.
func (uc *ProductUseCase) ListByActive(active bool) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByActive(active)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Rename renombra el producto.
func (uc *ProductUseCase) Rename(userID, id, newName string) (*dto.ProductResponse, error) {
	return uc.mutate(userID, id, func(p *entity.Product) error { return p.Rename(newName) })
}

// Redescribe cambia la descripción del producto.
func (uc *ProductUseCase) Redescribe(userID, id, newDescription string) (*dto.ProductResponse, error) {
	return uc.mutate(userID, id, func(p *entity.Product) error { return p.Redescribe(newDescription) })
}

// Reprice cambia el precio del producto.
func (uc *ProductUseCase) Reprice(userID, id string, newPrice decimal.Decimal) (*dto.ProductResponse, error) {
	return uc.mutate(userID, id, func(p *entity.Product) error { return p.Reprice(newPrice) })
}

// Activate marca el producto como activo.
func (uc *ProductUseCase) Activate(userID, id string) (*dto.ProductResponse, error) {
	return uc.mutate(userID, id, func(p *entity.Product) error { return p.Activate() })
}

// Deactivate marca el producto como inactivo.
func (uc *ProductUseCase) Deactivate(userID, id string) (*dto.ProductResponse, error) {
	return uc.mutate(userID, id, func(p *entity.Product) error { return p.Deactivate() })
}

// ChangeCategory recategoriza el producto. La categoría destino debe existir
// y no estar eliminada; ese lookup es responsabilidad de este comando, no
// del agregado.
func (uc *ProductUseCase) ChangeCategory(userID, id, newCategoryID string) (*dto.ProductResponse, error) {
	if newCategoryID == "" {
		return nil, domain.ErrInvalidArgument
	}
	category, err := uc.categoryRepo.GetByID(newCategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.IsDeleted() {
		return nil, domain.ErrNotFound
	}
	return uc.mutate(userID, id, func(p *entity.Product) error { return p.ChangeCategory(newCategoryID) })
}

// mutate aplica un mutador del agregado y persiste. Factoriza el patrón
// lookup→mutar→update→audit de los comandos de un solo agregado.
func (uc *ProductUseCase) mutate(userID, id string, fn func(*entity.Product) error) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetWithTags(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := fn(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.audit.Log(ports.ActionProductUpdated, userID, map[string]any{
		"productId": product.ID,
	})
	return toProductResponse(product), nil
}

// AddTag asocia un tag existente al producto. Asociar uno ya presente es un
// no-op que no avanza UpdatedAt de ninguno de los dos.
func (uc *ProductUseCase) AddTag(userID, productID, tagID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetWithTags(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	tag, err := uc.tagRepo.GetByID(tagID)
	if err != nil {
		return nil, err
	}
	if tag == nil || tag.IsDeleted() {
		return nil, domain.ErrNotFound
	}
	if _, ok := product.Tags[tag.ID]; ok {
		return toProductResponse(product), nil
	}
	if err := product.AddTag(tag); err != nil {
		return nil, err
	}
	if err := tag.AssignToProduct(product.ID); err != nil {
		return nil, err
	}
	if err := uc.tagRepo.Update(tag); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// RemoveTag desasocia un tag del producto. Sobre uno ausente es un no-op.
func (uc *ProductUseCase) RemoveTag(userID, productID, tagID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetWithTags(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	tag, ok := product.Tags[tagID]
	if !ok {
		return toProductResponse(product), nil
	}
	if err := product.RemoveTag(tag); err != nil {
		return nil, err
	}
	if err := tag.Unassign(); err != nil {
		return nil, err
	}
	if err := uc.tagRepo.Update(tag); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ClearTags desasocia todos los tags del producto.
func (uc *ProductUseCase) ClearTags(userID, productID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetWithTags(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	tags := make([]*entity.Tag, 0, len(product.Tags))
	for _, t := range product.Tags {
		tags = append(tags, t)
	}
	if err := product.ClearTags(); err != nil {
		return nil, err
	}
	for _, t := range tags {
		if err := t.Unassign(); err != nil {
			return nil, err
		}
		if err := uc.tagRepo.Update(t); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete soft-elimina el producto.
func (uc *ProductUseCase) Delete(userID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := product.Delete(); err != nil {
		return err
	}
	if err := uc.repo.Update(product); err != nil {
		return err
	}
	uc.audit.Log(ports.ActionProductDeleted, userID, map[string]any{
		"productId": product.ID,
		"name":      product.Name,
	})
	return nil
}

// Restore revierte el soft-delete del producto.
func (uc *ProductUseCase) Restore(userID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := product.Restore(); err != nil {
		return err
	}
	if err := uc.repo.Update(product); err != nil {
		return err
	}
	uc.audit.Log(ports.ActionProductRestored, userID, map[string]any{
		"productId": product.ID,
	})
	return nil
}

// Search ejecuta el motor de búsqueda/agregación sobre el set candidato de
// productos no eliminados.
func (uc *ProductUseCase) Search(in dto.ProductSearchRequest) (*dto.ProductSearchResponse, error) {
	in.DefaultPage()
	candidates, err := uc.repo.ListCandidates()
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List(true)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	result := search.Run(candidates, categoryNames, search.Spec{
		Term:           in.Term,
		CategoryID:     in.CategoryID,
		MinPrice:       in.MinPrice,
		MaxPrice:       in.MaxPrice,
		Active:         in.Active,
		Tags:           in.Tags,
		Sort:           search.ParseSortKey(in.SortBy),
		SortDescending: in.SortDescending,
		Page:           in.Page,
		PageSize:       in.PageSize,
	})

	return &dto.ProductSearchResponse{
		Items:           toProductResponses(result.Items),
		TotalItems:      result.TotalItems,
		TotalPages:      result.TotalPages,
		CurrentPage:     result.CurrentPage,
		PageSize:        result.PageSize,
		AveragePrice:    result.AveragePrice,
		ItemsByCategory: result.ItemsByCategory,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	var tags []string
	for _, t := range p.Tags {
		tags = append(tags, t.Name)
	}
	sort.Strings(tags)
	return &dto.ProductResponse{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Active:      p.Active,
		CategoryID:  p.CategoryID,
		Tags:        tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		DeletedAt:   p.DeletedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
