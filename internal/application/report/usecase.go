package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/domain/search"
	"github.com/shopspring/decimal"
)

const topExpensiveCount = 3

// ReportUseCase genera el reporte de productos activos (no eliminados) con
// estadísticas, renderizable como CSV o JSON.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// BuildReport arma el reporte: productos activos ordenados por nombre más
// total, precio medio, conteo por categoría y top-3 más caros.
func (uc *ReportUseCase) BuildReport() (*dto.ProductReport, error) {
	candidates, err := uc.productRepo.ListCandidates()
	if err != nil {
		return nil, err
	}
	active := make([]*entity.Product, 0, len(candidates))
	for _, p := range candidates {
		if p.Active {
			active = append(active, p)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].Name != active[j].Name {
			return active[i].Name < active[j].Name
		}
		return active[i].ID < active[j].ID
	})

	categories, err := uc.categoryRepo.List(true)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	report := &dto.ProductReport{
		Products: make([]dto.ProductReportItem, 0, len(active)),
		Statistics: dto.ReportStatistics{
			AveragePrice:       decimal.Zero,
			ProductsByCategory: map[string]int{},
			Top3MostExpensive:  []dto.TopProduct{},
		},
	}
	for _, p := range active {
		categoryName, ok := categoryNames[p.CategoryID]
		if !ok || categoryName == "" {
			categoryName = search.UncategorizedLabel
		}
		report.Products = append(report.Products, dto.ProductReportItem{
			Name:        p.Name,
			Description: p.Description,
			Category:    categoryName,
			Price:       p.Price,
			Tags:        joinTagNames(p),
			CreatedAt:   p.CreatedAt,
		})
	}

	if len(active) == 0 {
		return report, nil
	}

	sum := decimal.Zero
	byCategory := make(map[string]int)
	for _, item := range report.Products {
		byCategory[item.Category]++
	}
	for _, p := range active {
		sum = sum.Add(p.Price)
	}
	report.Statistics.TotalActiveProducts = len(active)
	report.Statistics.AveragePrice = sum.Div(decimal.NewFromInt(int64(len(active))))
	report.Statistics.ProductsByCategory = byCategory
	report.Statistics.Top3MostExpensive = topExpensive(active)
	return report, nil
}

// GenerateCSV renderiza el reporte como CSV con secciones de estadísticas.
func (uc *ReportUseCase) GenerateCSV() ([]byte, error) {
	report, err := uc.BuildReport()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"Nombre", "Descripción", "Categoría", "Precio", "Tags", "Fecha de Creación"})
	for _, p := range report.Products {
		_ = w.Write([]string{
			p.Name, p.Description, p.Category,
			p.Price.StringFixed(2), p.Tags,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	_ = w.Write([]string{})
	_ = w.Write([]string{"=== ESTADÍSTICAS ==="})
	_ = w.Write([]string{"Total de Productos Activos", intToField(report.Statistics.TotalActiveProducts)})
	_ = w.Write([]string{"Precio Medio", report.Statistics.AveragePrice.StringFixed(2)})

	_ = w.Write([]string{})
	_ = w.Write([]string{"=== PRODUCTOS POR CATEGORÍA ==="})
	for _, name := range sortedKeys(report.Statistics.ProductsByCategory) {
		_ = w.Write([]string{name, intToField(report.Statistics.ProductsByCategory[name])})
	}

	_ = w.Write([]string{})
	_ = w.Write([]string{"=== TOP 3 MÁS CAROS ==="})
	_ = w.Write([]string{"Nombre", "Precio"})
	for _, top := range report.Statistics.Top3MostExpensive {
		_ = w.Write([]string{top.Name, top.Price.StringFixed(2)})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateJSON renderiza el reporte como JSON indentado.
func (uc *ReportUseCase) GenerateJSON() ([]byte, error) {
	report, err := uc.BuildReport()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(report, "", "  ")
}

// topExpensive devuelve los N productos más caros (desempate por ID).
func topExpensive(products []*entity.Product) []dto.TopProduct {
	sorted := make([]*entity.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool {
		cmp := sorted[i].Price.Cmp(sorted[j].Price)
		if cmp != 0 {
			return cmp > 0
		}
		return sorted[i].ID < sorted[j].ID
	})
	n := topExpensiveCount
	if len(sorted) < n {
		n = len(sorted)
	}
	top := make([]dto.TopProduct, 0, n)
	for _, p := range sorted[:n] {
		top = append(top, dto.TopProduct{Name: p.Name, Price: p.Price})
	}
	return top
}

func joinTagNames(p *entity.Product) string {
	var names []string
	for _, t := range p.Tags {
		if !t.IsDeleted() {
			names = append(names, t.Name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func intToField(n int) string {
	return strconv.Itoa(n)
}
