package dto

import (
	"github.com/shopspring/decimal"
)

// ProductSearchRequest parámetros de búsqueda de productos. Las reglas de
// rango replican el validador del lado de escritura: página positiva,
// pageSize 1..100, precios no negativos y min ≤ max.
type ProductSearchRequest struct {
	Term           string           `query:"term"`
	CategoryID     string           `query:"categoryId" validate:"omitempty,uuid4"`
	MinPrice       *decimal.Decimal `query:"minPrice"`
	MaxPrice       *decimal.Decimal `query:"maxPrice"`
	Active         *bool            `query:"active"`
	Tags           []string         `query:"tags"`
	SortBy         string           `query:"sortBy" validate:"omitempty,oneof=name price date"`
	SortDescending bool             `query:"sortDescending"`
	Page           int              `query:"page" validate:"gt=0"`
	PageSize       int              `query:"pageSize" validate:"gt=0,lte=100"`
}

// DefaultPage aplica valores por defecto si Page/PageSize vienen en cero.
func (r *ProductSearchRequest) DefaultPage() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = 20
	}
}

// ProductSearchResponse página de resultados más agregados calculados sobre
// el set filtrado completo (no solo la página actual).
type ProductSearchResponse struct {
	Items           []ProductResponse `json:"items"`
	TotalItems      int               `json:"totalItems"`
	TotalPages      int               `json:"totalPages"`
	CurrentPage     int               `json:"currentPage"`
	PageSize        int               `json:"pageSize"`
	AveragePrice    decimal.Decimal   `json:"averagePrice"`
	ItemsByCategory map[string]int    `json:"itemsByCategory"`
}
