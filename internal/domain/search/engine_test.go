package search_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/search"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	catPerifericos = "00000000-0000-0000-0000-0000000000aa"
	catMonitores   = "00000000-0000-0000-0000-0000000000bb"
)

var testCategoryNames = map[string]string{
	catPerifericos: "Periféricos",
	catMonitores:   "Monitores",
}

// buildProduct crea un producto con ID y CreatedAt controlados para poder
// afirmar orden y desempates de forma determinista.
func buildProduct(t *testing.T, id, name string, price int64, active bool, categoryID string, createdOffset time.Duration, tags ...string) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(name, "Descripción de "+name, decimal.NewFromInt(price), active, categoryID)
	require.NoError(t, err)
	p.ID = id
	p.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(createdOffset)
	for _, name := range tags {
		tag, err := entity.NewTag(name)
		require.NoError(t, err)
		require.NoError(t, p.AddTag(tag))
	}
	return p
}

// tresCandidatos set de referencia: precios 10, 20 y 30.
func tresCandidatos(t *testing.T) []*entity.Product {
	t.Helper()
	return []*entity.Product{
		buildProduct(t, "p-1", "Alfombrilla", 10, true, catPerifericos, 0, "oferta"),
		buildProduct(t, "p-2", "Teclado", 20, true, catPerifericos, time.Hour),
		buildProduct(t, "p-3", "Monitor", 30, false, catMonitores, 2*time.Hour, "premium"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación y agregados
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_PaginaYAgrega(t *testing.T) {
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{
		Page:     1,
		PageSize: 2,
	})

	assert.Len(t, res.Items, 2, "la primera página con pageSize=2 debe traer 2 ítems")
	assert.Equal(t, 3, res.TotalItems)
	assert.Equal(t, 2, res.TotalPages, "3 ítems con pageSize=2 son 2 páginas (ceiling)")
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 2, res.PageSize)

	// El promedio es sobre el set filtrado COMPLETO (10+20+30)/3, no sobre la página.
	assert.True(t, res.AveragePrice.Equal(decimal.NewFromInt(20)),
		"AveragePrice debe ser 20, fue %s", res.AveragePrice)

	// Igual para el agrupado por categoría.
	assert.Equal(t, map[string]int{"Periféricos": 2, "Monitores": 1}, res.ItemsByCategory)
}

func TestRun_SegundaPaginaParcial(t *testing.T) {
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Page: 2, PageSize: 2})

	require.Len(t, res.Items, 1)
	assert.Equal(t, 3, res.TotalItems)
	assert.Equal(t, 2, res.TotalPages)
}

func TestRun_PaginaFueraDeRango(t *testing.T) {
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Page: 9, PageSize: 2})

	assert.Empty(t, res.Items, "una página fuera de rango devuelve slice vacío, no error")
	assert.Equal(t, 3, res.TotalItems, "los agregados no dependen de la página pedida")
	assert.Equal(t, 2, res.TotalPages)
}

func TestRun_SetVacio(t *testing.T) {
	res := search.Run(nil, testCategoryNames, search.Spec{})

	assert.Empty(t, res.Items)
	assert.Zero(t, res.TotalItems)
	assert.Zero(t, res.TotalPages, "sin resultados no hay páginas")
	assert.True(t, res.AveragePrice.IsZero(), "promedio de set vacío es 0, sin división por cero")
	assert.Empty(t, res.ItemsByCategory)
}

func TestRun_NormalizaPaginacionInvalida(t *testing.T) {
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Page: -3, PageSize: 0})

	assert.Equal(t, 1, res.CurrentPage, "página inválida degrada a 1")
	assert.Equal(t, search.DefaultPageSize, res.PageSize, "pageSize inválido degrada al default")

	res = search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Page: 1, PageSize: 5000})
	assert.Equal(t, search.MaxPageSize, res.PageSize, "pageSize excesivo se acota al máximo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros (composición AND)
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_FiltroTerm_CaseInsensitive(t *testing.T) {
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Term: "TECLADO"})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Teclado", res.Items[0].Name)

	// El término también matchea sobre la descripción.
	res = search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Term: "descripción de monitor"})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Monitor", res.Items[0].Name)
}

func TestRun_FiltroCategoria(t *testing.T) {
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{CategoryID: catMonitores})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "p-3", res.Items[0].ID)
}

func TestRun_FiltroRangoPrecio_Inclusivo(t *testing.T) {
	min := decimal.NewFromInt(20)
	max := decimal.NewFromInt(30)

	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{MinPrice: &min, MaxPrice: &max})
	require.Len(t, res.Items, 2, "las cotas son inclusivas: 20 y 30 entran")

	// Cota exacta por ambos lados deja solo el precio igual.
	res = search.Run(tresCandidatos(t), testCategoryNames, search.Spec{MinPrice: &min, MaxPrice: &min})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "p-2", res.Items[0].ID)
}

func TestRun_FiltroActive(t *testing.T) {
	inactivo := false
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Active: &inactivo})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "p-3", res.Items[0].ID)
}

func TestRun_FiltroTags_BastaUno(t *testing.T) {
	// Basta que el producto tenga UNO de los tags pedidos.
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Tags: []string{"oferta", "inexistente"}})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "p-1", res.Items[0].ID)

	// El match de tags es case-sensitive.
	res = search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Tags: []string{"OFERTA"}})
	assert.Empty(t, res.Items)
}

func TestRun_FiltrosCompuestosEnAND(t *testing.T) {
	activo := true
	min := decimal.NewFromInt(15)

	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{
		CategoryID: catPerifericos,
		Active:     &activo,
		MinPrice:   &min,
	})
	require.Len(t, res.Items, 1, "solo el Teclado cumple categoría+activo+precio a la vez")
	assert.Equal(t, "p-2", res.Items[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ordenación y desempate
// ──────────────────────────────────────────────────────────────────────────────

func ids(items []*entity.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestRun_OrdenPorNombre(t *testing.T) {
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Sort: search.SortByName})
	assert.Equal(t, []string{"p-1", "p-3", "p-2"}, ids(res.Items), "Alfombrilla, Monitor, Teclado")

	res = search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Sort: search.SortByName, SortDescending: true})
	assert.Equal(t, []string{"p-2", "p-3", "p-1"}, ids(res.Items))
}

func TestRun_OrdenPorPrecio(t *testing.T) {
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Sort: search.SortByPrice})
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, ids(res.Items))

	res = search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Sort: search.SortByPrice, SortDescending: true})
	assert.Equal(t, []string{"p-3", "p-2", "p-1"}, ids(res.Items))
}

func TestRun_OrdenPorFecha(t *testing.T) {
	res := search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Sort: search.SortByDate})
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, ids(res.Items))

	res = search.Run(tresCandidatos(t), testCategoryNames, search.Spec{Sort: search.SortByDate, SortDescending: true})
	assert.Equal(t, []string{"p-3", "p-2", "p-1"}, ids(res.Items))
}

func TestRun_DesempatePorID_NoSeInvierte(t *testing.T) {
	// Tres productos con el MISMO precio: el orden cae siempre al ID ascendente,
	// incluso en descendente (solo se invierte la comparación primaria).
	candidatos := []*entity.Product{
		buildProduct(t, "p-c", "Gamma", 50, true, catPerifericos, 0),
		buildProduct(t, "p-a", "Alfa", 50, true, catPerifericos, time.Hour),
		buildProduct(t, "p-b", "Beta", 50, true, catPerifericos, 2*time.Hour),
	}

	res := search.Run(candidatos, testCategoryNames, search.Spec{Sort: search.SortByPrice})
	assert.Equal(t, []string{"p-a", "p-b", "p-c"}, ids(res.Items))

	res = search.Run(candidatos, testCategoryNames, search.Spec{Sort: search.SortByPrice, SortDescending: true})
	assert.Equal(t, []string{"p-a", "p-b", "p-c"}, ids(res.Items),
		"con empate total el desempate por ID no se invierte en descendente")
}

func TestRun_Determinista(t *testing.T) {
	candidatos := tresCandidatos(t)
	spec := search.Spec{Sort: search.SortByPrice, Page: 1, PageSize: 10}

	primera := search.Run(candidatos, testCategoryNames, spec)
	segunda := search.Run(candidatos, testCategoryNames, spec)

	assert.Equal(t, ids(primera.Items), ids(segunda.Items), "el mismo input produce siempre la misma salida")
	assert.Equal(t, primera.ItemsByCategory, segunda.ItemsByCategory)
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseSortKey y categorías sin nombre
// ──────────────────────────────────────────────────────────────────────────────

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, search.SortByName, search.ParseSortKey("name"))
	assert.Equal(t, search.SortByPrice, search.ParseSortKey(" PRICE "))
	assert.Equal(t, search.SortByDate, search.ParseSortKey("Date"))
	assert.Equal(t, search.SortDefault, search.ParseSortKey(""))
	assert.Equal(t, search.SortDefault, search.ParseSortKey("rating"))
}

func TestRun_CategoriaSinNombre(t *testing.T) {
	candidatos := []*entity.Product{
		buildProduct(t, "p-x", "Huérfano", 10, true, "cat-desconocida", 0),
	}
	res := search.Run(candidatos, testCategoryNames, search.Spec{})

	assert.Equal(t, map[string]int{search.UncategorizedLabel: 1}, res.ItemsByCategory,
		"una categoría sin nombre resuelto agrupa bajo la etiqueta de sin categoría")
}
