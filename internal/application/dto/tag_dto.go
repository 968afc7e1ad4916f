package dto

import "time"

// TagRequest cuerpo de creación/renombrado de tag.
type TagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// TagResponse representación de lectura de un tag.
type TagResponse struct {
	TagID     string     `json:"tagId"`
	Name      string     `json:"name"`
	ProductID string     `json:"productId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
