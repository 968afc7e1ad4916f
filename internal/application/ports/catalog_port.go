package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExternalProduct producto tal como lo expone el catálogo externo
// (compatible con fakestoreapi).
type ExternalProduct struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// ExternalCatalog puerto hacia la fuente externa de productos que consume
// el job de importación.
type ExternalCatalog interface {
	FetchProducts(ctx context.Context) ([]ExternalProduct, error)
}
