package dto

import "time"

// CategoryRequest cuerpo de creación/renombrado de categoría.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryResponse representación de lectura de una categoría.
type CategoryResponse struct {
	CategoryID   string     `json:"categoryId"`
	Name         string     `json:"name"`
	ProductCount int        `json:"productCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}
