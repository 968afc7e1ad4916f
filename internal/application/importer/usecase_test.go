package importer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/importer"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// stubCatalog catálogo externo controlado por el test.
type stubCatalog struct {
	products []ports.ExternalProduct
	err      error
}

func (s *stubCatalog) FetchProducts(context.Context) ([]ports.ExternalProduct, error) {
	return s.products, s.err
}

// Fakes de persistencia en memoria, suficientes para el job.

type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}
func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) { return r.categories[id], nil }
func (r *memCategoryRepo) GetWithProducts(id string) (*entity.Category, error) {
	return r.categories[id], nil
}
func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name && !c.IsDeleted() {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCategoryRepo) Update(c *entity.Category) error { return nil }
func (r *memCategoryRepo) List(bool) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}
func (r *memCategoryRepo) ListDeleted() ([]*entity.Category, error) { return nil, nil }

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}
func (r *memProductRepo) GetByID(id string) (*entity.Product, error)     { return r.products[id], nil }
func (r *memProductRepo) GetWithTags(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *memProductRepo) Update(p *entity.Product) error                 { return nil }
func (r *memProductRepo) List(bool) ([]*entity.Product, error)           { return nil, nil }
func (r *memProductRepo) ListDeleted() ([]*entity.Product, error)        { return nil, nil }
func (r *memProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.CategoryID == categoryID && !p.IsDeleted() {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProductRepo) ListByActive(bool) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) ListCandidates() ([]*entity.Product, error)   { return nil, nil }

func externalProduct(id int, title, category string, price float64) ports.ExternalProduct {
	return ports.ExternalProduct{
		ID:          id,
		Title:       title,
		Price:       decimal.NewFromFloat(price),
		Description: "Descripción de " + title,
		Category:    category,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestImportRun_CreaCategoriaYProductos(t *testing.T) {
	catalog := &stubCatalog{products: []ports.ExternalProduct{
		externalProduct(1, "Teclado retro", "electronics", 59.90),
		externalProduct(2, "Lámpara", "home decor", 19.90),
	}}
	catRepo := newMemCategoryRepo()
	prodRepo := newMemProductRepo()
	uc := importer.NewImportUseCase(catalog, prodRepo, catRepo, nil)

	result, err := uc.Run(context.Background(), "user-import")
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalFetched)
	assert.Equal(t, 2, result.Imported)
	assert.Zero(t, result.Skipped)
	assert.Len(t, prodRepo.products, 2)

	// El nombre de categoría se normaliza: primera letra mayúscula, resto minúscula.
	electronics, err := catRepo.GetByName("Electronics")
	require.NoError(t, err)
	require.NotNil(t, electronics, "la categoría ausente debe crearse con nombre normalizado")

	home, err := catRepo.GetByName("Home decor")
	require.NoError(t, err)
	require.NotNil(t, home)

	// Los importados nacen activos.
	for _, p := range prodRepo.products {
		assert.True(t, p.Active)
	}
}

func TestImportRun_DuplicadoCaseInsensitiveSeSalta(t *testing.T) {
	catRepo := newMemCategoryRepo()
	prodRepo := newMemProductRepo()

	existente, err := entity.NewCategory("Electronics")
	require.NoError(t, err)
	require.NoError(t, catRepo.Create(existente))
	previo, err := entity.NewProduct("Teclado Retro", "Ya estaba", decimal.NewFromInt(10), true, existente.ID)
	require.NoError(t, err)
	require.NoError(t, prodRepo.Create(previo))

	catalog := &stubCatalog{products: []ports.ExternalProduct{
		externalProduct(1, "teclado retro", "electronics", 59.90), // mismo nombre, otra caja
	}}
	uc := importer.NewImportUseCase(catalog, prodRepo, catRepo, nil)

	result, err := uc.Run(context.Background(), "user-import")
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalFetched)
	assert.Zero(t, result.Imported)
	assert.Equal(t, 1, result.Skipped, "el duplicado por nombre+categoría se descarta")
	assert.Len(t, prodRepo.products, 1, "no debe crearse un segundo producto")
	assert.Len(t, catRepo.categories, 1, "la categoría existente se reutiliza")
}

func TestImportRun_CategoriaVaciaUsaDefault(t *testing.T) {
	catalog := &stubCatalog{products: []ports.ExternalProduct{
		externalProduct(1, "Misterioso", "   ", 5),
	}}
	catRepo := newMemCategoryRepo()
	uc := importer.NewImportUseCase(catalog, newMemProductRepo(), catRepo, nil)

	result, err := uc.Run(context.Background(), "user-import")
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	general, err := catRepo.GetByName("General")
	require.NoError(t, err)
	assert.NotNil(t, general, "sin categoría de origen cae en General")
}

func TestImportRun_FalloDeAPIDevuelveResultadoNoError(t *testing.T) {
	catalog := &stubCatalog{err: errors.New("timeout")}
	uc := importer.NewImportUseCase(catalog, newMemProductRepo(), newMemCategoryRepo(), nil)

	result, err := uc.Run(context.Background(), "user-import")
	require.NoError(t, err, "un fallo de la fuente externa no es un error del job")

	assert.Zero(t, result.TotalFetched)
	require.NotEmpty(t, result.Messages)
	assert.Contains(t, result.Messages[0], "error al consumir la API externa")
}

func TestImportRun_CatalogoVacio(t *testing.T) {
	uc := importer.NewImportUseCase(&stubCatalog{}, newMemProductRepo(), newMemCategoryRepo(), nil)

	result, err := uc.Run(context.Background(), "user-import")
	require.NoError(t, err)

	assert.Zero(t, result.TotalFetched)
	require.Len(t, result.Messages, 1)
	assert.Contains(t, result.Messages[0], "ningún producto")
}
