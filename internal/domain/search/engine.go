package search

import (
	"sort"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel etiqueta para productos cuya categoría no resuelve nombre.
const UncategorizedLabel = "Sin categoría"

// Result resultado de una búsqueda: la página solicitada más los agregados
// calculados sobre el set filtrado completo (pre-paginación).
type Result struct {
	Items           []*entity.Product
	TotalItems      int
	TotalPages      int
	CurrentPage     int
	PageSize        int
	AveragePrice    decimal.Decimal
	ItemsByCategory map[string]int
}

// Run filtra, ordena, agrega y pagina el set candidato. Es un cálculo puro y
// re-entrante: no retiene estado y puede invocarse concurrentemente.
//
// candidates debe contener solo productos no eliminados (lo garantiza el
// persistence boundary); categoryNames mapea CategoryID→nombre para el
// agrupado por categoría.
//
// Invariante clave: AveragePrice e ItemsByCategory se calculan sobre el set
// filtrado SIN paginar, de modo que describen el resultado completo de la
// consulta y no la página actual.
func Run(candidates []*entity.Product, categoryNames map[string]string, spec Spec) Result {
	spec = spec.normalized()

	filtered := applyFilters(candidates, spec)
	sortProducts(filtered, spec.Sort, spec.SortDescending)

	totalItems := len(filtered)
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + spec.PageSize - 1) / spec.PageSize
	}

	return Result{
		Items:           paginate(filtered, spec.Page, spec.PageSize),
		TotalItems:      totalItems,
		TotalPages:      totalPages,
		CurrentPage:     spec.Page,
		PageSize:        spec.PageSize,
		AveragePrice:    averagePrice(filtered),
		ItemsByCategory: groupByCategory(filtered, categoryNames),
	}
}

// applyFilters compone en AND todos los filtros presentes en la spec.
func applyFilters(candidates []*entity.Product, spec Spec) []*entity.Product {
	term := strings.ToLower(strings.TrimSpace(spec.Term))
	tagSet := make(map[string]struct{}, len(spec.Tags))
	for _, name := range spec.Tags {
		tagSet[name] = struct{}{}
	}

	filtered := make([]*entity.Product, 0, len(candidates))
	for _, p := range candidates {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if spec.CategoryID != "" && p.CategoryID != spec.CategoryID {
			continue
		}
		if spec.MinPrice != nil && p.Price.LessThan(*spec.MinPrice) {
			continue
		}
		if spec.MaxPrice != nil && p.Price.GreaterThan(*spec.MaxPrice) {
			continue
		}
		if spec.Active != nil && p.Active != *spec.Active {
			continue
		}
		if len(tagSet) > 0 && !hasAnyTag(p, tagSet) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func hasAnyTag(p *entity.Product, tagSet map[string]struct{}) bool {
	for _, t := range p.Tags {
		if _, ok := tagSet[t.Name]; ok {
			return true
		}
	}
	return false
}

// sortProducts ordena in-place según la clave primaria. SortDescending
// invierte la comparación primaria, no la lista final: los empates se
// resuelven siempre por ProductID ascendente, lo que hace la salida
// determinista para un mismo input.
func sortProducts(products []*entity.Product, key SortKey, descending bool) {
	sort.Slice(products, func(i, j int) bool {
		a, b := products[i], products[j]
		cmp := 0
		switch key {
		case SortByPrice:
			cmp = a.Price.Cmp(b.Price)
		case SortByDate:
			switch {
			case a.CreatedAt.Before(b.CreatedAt):
				cmp = -1
			case a.CreatedAt.After(b.CreatedAt):
				cmp = 1
			}
		default: // SortByName y SortDefault
			cmp = strings.Compare(a.Name, b.Name)
		}
		if descending {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		return a.ID < b.ID
	})
}

// averagePrice media aritmética sobre el set filtrado; 0 con set vacío
// (nunca se divide por cero).
func averagePrice(products []*entity.Product) decimal.Decimal {
	if len(products) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range products {
		sum = sum.Add(p.Price)
	}
	return sum.Div(decimal.NewFromInt(int64(len(products))))
}

// groupByCategory cuenta productos del set filtrado por nombre de categoría.
func groupByCategory(products []*entity.Product, categoryNames map[string]string) map[string]int {
	counts := make(map[string]int, len(categoryNames))
	for _, p := range products {
		name, ok := categoryNames[p.CategoryID]
		if !ok || name == "" {
			name = UncategorizedLabel
		}
		counts[name]++
	}
	return counts
}

// paginate recorta la página solicitada [(page-1)*size, page*size). Páginas
// fuera de rango devuelven un slice vacío, no un error.
func paginate(products []*entity.Product, page, pageSize int) []*entity.Product {
	start := (page - 1) * pageSize
	if start >= len(products) {
		return []*entity.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
