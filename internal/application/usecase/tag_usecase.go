package usecase

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TagUseCase orquesta los comandos sobre el agregado Tag.
type TagUseCase struct {
	repo        repository.TagRepository
	productRepo repository.ProductRepository
	audit       ports.AuditLogger
}

// NewTagUseCase construye el caso de uso.
func NewTagUseCase(repo repository.TagRepository, productRepo repository.ProductRepository, audit ports.AuditLogger) *TagUseCase {
	if audit == nil {
		audit = ports.NopAuditLogger{}
	}
	return &TagUseCase{repo: repo, productRepo: productRepo, audit: audit}
}

// Create crea un tag sin producto asignado.
func (uc *TagUseCase) Create(userID string, in dto.TagRequest) (*dto.TagResponse, error) {
	tag, err := entity.NewTag(in.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(tag); err != nil {
		return nil, err
	}
	uc.audit.Log(ports.ActionTagCreated, userID, map[string]any{
		"tagId": tag.ID,
		"name":  tag.Name,
	})
	return toTagResponse(tag), nil
}

// GetByID obtiene un tag por ID. Devuelve (nil, nil) si no existe.
func (uc *TagUseCase) GetByID(id string) (*dto.TagResponse, error) {
	tag, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, nil
	}
	return toTagResponse(tag), nil
}

// List lista tags; includeDeleted incluye los soft-eliminados.
func (uc *TagUseCase) List(includeDeleted bool) ([]dto.TagResponse, error) {
	list, err := uc.repo.List(includeDeleted)
	if err != nil {
		return nil, err
	}
	return toTagResponses(list), nil
}

// ListDeleted lista solo los tags soft-eliminados.
func (uc *TagUseCase) ListDeleted() ([]dto.TagResponse, error) {
	list, err := uc.repo.ListDeleted()
	if err != nil {
		return nil, err
	}
	return toTagResponses(list), nil
}

// ListByProduct lista los tags no eliminados asignados a un producto.
func (uc *TagUseCase) ListByProduct(productID string) ([]dto.TagResponse, error) {
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toTagResponses(list), nil
}

// Rename renombra el tag.
func (uc *TagUseCase) Rename(userID, id string, in dto.TagRequest) (*dto.TagResponse, error) {
	tag, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}
	if err := tag.Rename(in.Name); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(tag); err != nil {
		return nil, err
	}
	uc.audit.Log(ports.ActionTagUpdated, userID, map[string]any{
		"tagId": tag.ID,
		"name":  tag.Name,
	})
	return toTagResponse(tag), nil
}

// AssignToProduct asigna el tag a un producto existente y no eliminado.
func (uc *TagUseCase) AssignToProduct(userID, tagID, productID string) (*dto.TagResponse, error) {
	tag, err := uc.repo.GetByID(tagID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.IsDeleted() {
		return nil, domain.ErrNotFound
	}
	if err := tag.AssignToProduct(product.ID); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(tag); err != nil {
		return nil, err
	}
	uc.audit.Log(ports.ActionTagUpdated, userID, map[string]any{
		"tagId":     tag.ID,
		"productId": product.ID,
		"op":        "assign",
	})
	return toTagResponse(tag), nil
}

// Delete soft-elimina el tag.
func (uc *TagUseCase) Delete(userID, id string) error {
	tag, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tag == nil {
		return domain.ErrNotFound
	}
	if err := tag.Delete(); err != nil {
		return err
	}
	if err := uc.repo.Update(tag); err != nil {
		return err
	}
	uc.audit.Log(ports.ActionTagDeleted, userID, map[string]any{
		"tagId": tag.ID,
		"name":  tag.Name,
	})
	return nil
}

// Restore revierte el soft-delete del tag.
func (uc *TagUseCase) Restore(userID, id string) error {
	tag, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tag == nil {
		return domain.ErrNotFound
	}
	if err := tag.Restore(); err != nil {
		return err
	}
	if err := uc.repo.Update(tag); err != nil {
		return err
	}
	uc.audit.Log(ports.ActionTagRestored, userID, map[string]any{
		"tagId": tag.ID,
	})
	return nil
}

func toTagResponse(t *entity.Tag) *dto.TagResponse {
	if t == nil {
		return nil
	}
	return &dto.TagResponse{
		TagID:     t.ID,
		Name:      t.Name,
		ProductID: t.ProductID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		DeletedAt: t.DeletedAt,
	}
}

func toTagResponses(list []*entity.Tag) []dto.TagResponse {
	items := make([]dto.TagResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTagResponse(t))
	}
	return items
}
