package importer

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// defaultCategoryName categoría asignada cuando la fuente externa no trae una.
const defaultCategoryName = "General"

// ImportUseCase job de importación desde el catálogo externo: normaliza
// nombres de categoría, crea las categorías ausentes, descarta duplicados
// (nombre+categoría, case-insensitive, entre no eliminados) e importa el
// resto como productos activos.
type ImportUseCase struct {
	catalog      ports.ExternalCatalog
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	audit        ports.AuditLogger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(catalog ports.ExternalCatalog, productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, audit ports.AuditLogger) *ImportUseCase {
	if audit == nil {
		audit = ports.NopAuditLogger{}
	}
	return &ImportUseCase{catalog: catalog, productRepo: productRepo, categoryRepo: categoryRepo, audit: audit}
}

// Run ejecuta la importación completa. Los errores por producto no abortan
// la corrida: se acumulan en Messages.
func (uc *ImportUseCase) Run(ctx context.Context, userID string) (*dto.ImportResult, error) {
	result := &dto.ImportResult{Messages: []string{}}

	external, err := uc.catalog.FetchProducts(ctx)
	if err != nil {
		result.Messages = append(result.Messages, fmt.Sprintf("error al consumir la API externa: %v", err))
		return result, nil
	}
	if len(external) == 0 {
		result.Messages = append(result.Messages, "ningún producto encontrado en la API externa")
		return result, nil
	}
	result.TotalFetched = len(external)

	for _, ep := range external {
		if err := uc.importOne(ep, result); err != nil {
			result.Messages = append(result.Messages, fmt.Sprintf("error al procesar el producto '%s': %v", ep.Title, err))
		}
	}

	uc.audit.Log(ports.ActionImportExecuted, userID, map[string]any{
		"totalFetched": result.TotalFetched,
		"imported":     result.Imported,
		"skipped":      result.Skipped,
	})
	return result, nil
}

func (uc *ImportUseCase) importOne(ep ports.ExternalProduct, result *dto.ImportResult) error {
	categoryName := normalizeCategoryName(ep.Category)

	category, err := uc.categoryRepo.GetByName(categoryName)
	if err != nil {
		return err
	}
	if category == nil {
		category, err = entity.NewCategory(categoryName)
		if err != nil {
			return err
		}
		if err := uc.categoryRepo.Create(category); err != nil {
			return err
		}
	}

	duplicate, err := uc.isDuplicate(ep.Title, category.ID)
	if err != nil {
		return err
	}
	if duplicate {
		result.Skipped++
		result.Messages = append(result.Messages, fmt.Sprintf("el producto '%s' ya existe (categoría: %s)", ep.Title, categoryName))
		return nil
	}

	product, err := entity.NewProduct(ep.Title, ep.Description, ep.Price, true, category.ID)
	if err != nil {
		return err
	}
	if err := uc.productRepo.Create(product); err != nil {
		return err
	}
	result.Imported++
	result.Messages = append(result.Messages, fmt.Sprintf("producto '%s' importado correctamente", ep.Title))
	return nil
}

// isDuplicate comprueba nombre (case-insensitive) + categoría entre los
// productos no eliminados.
func (uc *ImportUseCase) isDuplicate(name, categoryID string) (bool, error) {
	existing, err := uc.productRepo.ListByCategory(categoryID)
	if err != nil {
		return false, err
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, p := range existing {
		if strings.ToLower(p.Name) == lower {
			return true, nil
		}
	}
	return false, nil
}

// normalizeCategoryName capitaliza la primera letra y baja el resto;
// vacío cae en la categoría por defecto.
func normalizeCategoryName(category string) string {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return defaultCategoryName
	}
	runes := []rune(strings.ToLower(trimmed))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
