package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest cuerpo de creación de producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"required,max=1000"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	CategoryID  string          `json:"categoryId" validate:"required,uuid4"`
}

// RenameProductRequest cuerpo de renombrado.
type RenameProductRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// RedescribeProductRequest cuerpo de cambio de descripción.
type RedescribeProductRequest struct {
	Description string `json:"description" validate:"required,max=1000"`
}

// RepriceProductRequest cuerpo de cambio de precio.
type RepriceProductRequest struct {
	Price decimal.Decimal `json:"price"`
}

// ChangeCategoryRequest cuerpo de recategorización.
type ChangeCategoryRequest struct {
	CategoryID string `json:"categoryId" validate:"required,uuid4"`
}

// ProductResponse representación de lectura de un producto.
type ProductResponse struct {
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	CategoryID  string          `json:"categoryId"`
	Tags        []string        `json:"tags,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   *time.Time      `json:"deletedAt,omitempty"`
}
