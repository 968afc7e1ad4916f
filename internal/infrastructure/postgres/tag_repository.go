package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.TagRepository = (*TagRepo)(nil)

const tagColumns = "id, name, product_id, created_at, updated_at, deleted_at"

// TagRepo implementación del puerto TagRepository sobre PostgreSQL
// (usable con pool o tx). product_id es NULL cuando el tag no está asignado.
type TagRepo struct {
	q Querier
}

// NewTagRepository construye el adaptador de persistencia para tags.
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

// Create persiste un nuevo tag.
func (r *TagRepo) Create(tag *entity.Tag) error {
	query := `
		INSERT INTO tags (id, name, product_id, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		tag.ID, tag.Name, nullableID(tag.ProductID), tag.CreatedAt, tag.UpdatedAt, tag.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// GetByID obtiene un tag por ID (incluidos los eliminados).
func (r *TagRepo) GetByID(id string) (*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	t, err := scanTag(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return t, nil
}

// Update persiste nombre, asignación y timestamps (incluido deleted_at).
func (r *TagRepo) Update(tag *entity.Tag) error {
	query := `
		UPDATE tags SET name = $2, product_id = $3, updated_at = $4, deleted_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tag.ID, tag.Name, nullableID(tag.ProductID), tag.UpdatedAt, tag.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("update tag: %w", err)
	}
	return nil
}

// List lista tags; con includeDeleted=false excluye los soft-eliminados.
func (r *TagRepo) List(includeDeleted bool) ([]*entity.Tag, error) {
	if includeDeleted {
		return r.listWhere("TRUE")
	}
	return r.listWhere("deleted_at IS NULL")
}

// ListDeleted lista solo los tags soft-eliminados.
func (r *TagRepo) ListDeleted() ([]*entity.Tag, error) {
	return r.listWhere("deleted_at IS NOT NULL")
}

// ListByProduct lista los tags no eliminados asignados a un producto.
func (r *TagRepo) ListByProduct(productID string) ([]*entity.Tag, error) {
	return r.listWhere("product_id = $1 AND deleted_at IS NULL", productID)
}

func (r *TagRepo) listWhere(cond string, args ...any) ([]*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE ` + cond + ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// scanTag escanea una fila de tags normalizando product_id NULL a vacío.
func scanTag(row pgx.Row) (*entity.Tag, error) {
	var t entity.Tag
	var productID *string
	if err := row.Scan(&t.ID, &t.Name, &productID, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan tag: %w", err)
	}
	if productID != nil {
		t.ProductID = *productID
	}
	return &t, nil
}

// nullableID traduce el identificador vacío del dominio a NULL en la DB.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
