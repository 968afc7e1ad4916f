package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

type productFixture struct {
	uc       *usecase.ProductUseCase
	tagUC    *usecase.TagUseCase
	catUC    *usecase.CategoryUseCase
	prodRepo *fakeProductRepo
	tagRepo  *fakeTagRepo
}

func newProductFixture() *productFixture {
	prodRepo := newFakeProductRepo()
	catRepo := newFakeCategoryRepo(prodRepo)
	tagRepo := newFakeTagRepo()
	tx := &fakeTxRunner{categories: catRepo, products: prodRepo}
	audit := &recordingAudit{}
	return &productFixture{
		uc:       usecase.NewProductUseCase(prodRepo, catRepo, tagRepo, audit),
		tagUC:    usecase.NewTagUseCase(tagRepo, prodRepo, audit),
		catUC:    usecase.NewCategoryUseCase(catRepo, tx, audit),
		prodRepo: prodRepo,
		tagRepo:  tagRepo,
	}
}

func (f *productFixture) mustCategory(t *testing.T, name string) string {
	t.Helper()
	out, err := f.catUC.Create(testUserID, dto.CategoryRequest{Name: name})
	require.NoError(t, err)
	return out.CategoryID
}

func (f *productFixture) mustProduct(t *testing.T, name string, price int64, active bool, categoryID string) *dto.ProductResponse {
	t.Helper()
	out, err := f.uc.Create(testUserID, dto.CreateProductRequest{
		Name:        name,
		Description: "Descripción de " + name,
		Price:       decimal.NewFromInt(price),
		Active:      active,
		CategoryID:  categoryID,
	})
	require.NoError(t, err)
	return out
}

func (f *productFixture) mustTag(t *testing.T, name string) string {
	t.Helper()
	out, err := f.tagUC.Create(testUserID, dto.TagRequest{Name: name})
	require.NoError(t, err)
	return out.TagID
}

// ──────────────────────────────────────────────────────────────────────────────
// Create con verificación cruzada de categoría
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	f := newProductFixture()

	_, err := f.uc.Create(testUserID, dto.CreateProductRequest{
		Name:        "Teclado",
		Description: "Mecánico",
		Price:       decimal.NewFromInt(100),
		Active:      true,
		CategoryID:  "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_CategoriaEliminada(t *testing.T) {
	f := newProductFixture()
	catID := f.mustCategory(t, "Periféricos")
	require.NoError(t, f.catUC.Delete(testUserID, catID))

	_, err := f.uc.Create(testUserID, dto.CreateProductRequest{
		Name:        "Teclado",
		Description: "Mecánico",
		Price:       decimal.NewFromInt(100),
		Active:      true,
		CategoryID:  catID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una categoría soft-eliminada no acepta productos nuevos")
}

func TestProductChangeCategory_DestinoDebeExistir(t *testing.T) {
	f := newProductFixture()
	catID := f.mustCategory(t, "Periféricos")
	prod := f.mustProduct(t, "Teclado", 100, true, catID)

	_, err := f.uc.ChangeCategory(testUserID, prod.ProductID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	otra := f.mustCategory(t, "Monitores")
	out, err := f.uc.ChangeCategory(testUserID, prod.ProductID, otra)
	require.NoError(t, err)
	assert.Equal(t, otra, out.CategoryID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tags vía producto
// ──────────────────────────────────────────────────────────────────────────────

func TestProductAddTag_DobleAddDejaUno(t *testing.T) {
	f := newProductFixture()
	catID := f.mustCategory(t, "Periféricos")
	prod := f.mustProduct(t, "Teclado", 100, true, catID)
	tagID := f.mustTag(t, "oferta")

	out, err := f.uc.AddTag(testUserID, prod.ProductID, tagID)
	require.NoError(t, err)
	assert.Equal(t, []string{"oferta"}, out.Tags)

	// Segundo add del mismo tag: no-op, sigue habiendo exactamente uno.
	out, err = f.uc.AddTag(testUserID, prod.ProductID, tagID)
	require.NoError(t, err)
	assert.Equal(t, []string{"oferta"}, out.Tags)

	// El tag quedó asignado al producto.
	stored, err := f.tagRepo.GetByID(tagID)
	require.NoError(t, err)
	assert.Equal(t, prod.ProductID, stored.ProductID)
}

func TestProductAddTag_TagInexistenteOEliminado(t *testing.T) {
	f := newProductFixture()
	catID := f.mustCategory(t, "Periféricos")
	prod := f.mustProduct(t, "Teclado", 100, true, catID)

	_, err := f.uc.AddTag(testUserID, prod.ProductID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	tagID := f.mustTag(t, "oferta")
	require.NoError(t, f.tagUC.Delete(testUserID, tagID))
	_, err = f.uc.AddTag(testUserID, prod.ProductID, tagID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "un tag soft-eliminado no es asociable")
}

func TestProductRemoveTag_DesasignaElTag(t *testing.T) {
	f := newProductFixture()
	catID := f.mustCategory(t, "Periféricos")
	prod := f.mustProduct(t, "Teclado", 100, true, catID)
	tagID := f.mustTag(t, "oferta")

	_, err := f.uc.AddTag(testUserID, prod.ProductID, tagID)
	require.NoError(t, err)

	out, err := f.uc.RemoveTag(testUserID, prod.ProductID, tagID)
	require.NoError(t, err)
	assert.Empty(t, out.Tags)

	stored, err := f.tagRepo.GetByID(tagID)
	require.NoError(t, err)
	assert.Empty(t, stored.ProductID, "remover del producto desasigna el tag")

	// Remover un tag ausente es un no-op.
	_, err = f.uc.RemoveTag(testUserID, prod.ProductID, tagID)
	assert.NoError(t, err)
}

func TestProductClearTags(t *testing.T) {
	f := newProductFixture()
	catID := f.mustCategory(t, "Periféricos")
	prod := f.mustProduct(t, "Teclado", 100, true, catID)
	tagA := f.mustTag(t, "oferta")
	tagB := f.mustTag(t, "nuevo")

	_, err := f.uc.AddTag(testUserID, prod.ProductID, tagA)
	require.NoError(t, err)
	_, err = f.uc.AddTag(testUserID, prod.ProductID, tagB)
	require.NoError(t, err)

	out, err := f.uc.ClearTags(testUserID, prod.ProductID)
	require.NoError(t, err)
	assert.Empty(t, out.Tags)

	for _, id := range []string{tagA, tagB} {
		stored, err := f.tagRepo.GetByID(id)
		require.NoError(t, err)
		assert.Empty(t, stored.ProductID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / restore / listados
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDeleteRestore_Listados(t *testing.T) {
	f := newProductFixture()
	catID := f.mustCategory(t, "Periféricos")
	prod := f.mustProduct(t, "Teclado", 100, true, catID)

	require.NoError(t, f.uc.Delete(testUserID, prod.ProductID))

	vivos, err := f.uc.List(false)
	require.NoError(t, err)
	assert.Empty(t, vivos, "un producto eliminado no aparece en el listado normal")

	todos, err := f.uc.List(true)
	require.NoError(t, err)
	assert.Len(t, todos, 1)

	eliminados, err := f.uc.ListDeleted()
	require.NoError(t, err)
	assert.Len(t, eliminados, 1)

	require.NoError(t, f.uc.Restore(testUserID, prod.ProductID))
	eliminados, err = f.uc.ListDeleted()
	require.NoError(t, err)
	assert.Empty(t, eliminados)
}

func TestProductMutarEliminado(t *testing.T) {
	f := newProductFixture()
	catID := f.mustCategory(t, "Periféricos")
	prod := f.mustProduct(t, "Teclado", 100, true, catID)
	require.NoError(t, f.uc.Delete(testUserID, prod.ProductID))

	_, err := f.uc.Rename(testUserID, prod.ProductID, "Otro")
	assert.ErrorIs(t, err, domain.ErrEntityDeleted)

	_, err = f.uc.Reprice(testUserID, prod.ProductID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrEntityDeleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda a través del caso de uso
// ──────────────────────────────────────────────────────────────────────────────

func TestProductSearch_FiltraYAgrega(t *testing.T) {
	f := newProductFixture()
	perifericos := f.mustCategory(t, "Periféricos")
	monitores := f.mustCategory(t, "Monitores")

	f.mustProduct(t, "Alfombrilla", 10, true, perifericos)
	f.mustProduct(t, "Teclado", 20, true, perifericos)
	f.mustProduct(t, "Monitor", 30, false, monitores)

	// Un producto eliminado no entra al set candidato.
	borrado := f.mustProduct(t, "Descatalogado", 99, true, perifericos)
	require.NoError(t, f.uc.Delete(testUserID, borrado.ProductID))

	out, err := f.uc.Search(dto.ProductSearchRequest{Page: 1, PageSize: 2, SortBy: "price"})
	require.NoError(t, err)

	assert.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.TotalItems)
	assert.Equal(t, 2, out.TotalPages)
	assert.True(t, out.AveragePrice.Equal(decimal.NewFromInt(20)),
		"el promedio se calcula sobre el set filtrado completo")
	assert.Equal(t, map[string]int{"Periféricos": 2, "Monitores": 1}, out.ItemsByCategory)
	assert.Equal(t, "Alfombrilla", out.Items[0].Name)
	assert.Equal(t, "Teclado", out.Items[1].Name)
}

func TestProductSearch_DefaultsDePagina(t *testing.T) {
	f := newProductFixture()

	out, err := f.uc.Search(dto.ProductSearchRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 20, out.PageSize)
	assert.Empty(t, out.Items)
}
