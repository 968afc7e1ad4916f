package search

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SortKey clave de ordenación cerrada, resuelta una sola vez en el borde
// (handler/DTO) en lugar de comparar strings dentro del motor.
type SortKey int

const (
	SortDefault SortKey = iota // sin clave reconocida: alfabético por nombre
	SortByName
	SortByPrice
	SortByDate
)

// ParseSortKey resuelve el parámetro sortBy del request. Valores no
// reconocidos (o vacíos) caen en SortDefault.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortByName
	case "price":
		return SortByPrice
	case "date":
		return SortByDate
	default:
		return SortDefault
	}
}

// Valores por defecto y tope de paginación.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Spec especificación de búsqueda sobre el set candidato de productos no
// eliminados. Los filtros ausentes (cero/nil) no imponen restricción y se
// componen en AND lógico.
type Spec struct {
	Term           string           // substring case-insensitive sobre nombre O descripción
	CategoryID     string           // igualdad exacta
	MinPrice       *decimal.Decimal // cota inferior inclusiva
	MaxPrice       *decimal.Decimal // cota superior inclusiva
	Active         *bool            // igualdad exacta
	Tags           []string         // match = el producto tiene al menos un tag con uno de estos nombres
	Sort           SortKey
	SortDescending bool
	Page           int // 1-based
	PageSize       int
}

// normalized devuelve una copia con page/pageSize acotados a sus rangos
// válidos. La validación de los valores del request ocurre en el borde.
func (s Spec) normalized() Spec {
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.PageSize > MaxPageSize {
		s.PageSize = MaxPageSize
	}
	return s
}
