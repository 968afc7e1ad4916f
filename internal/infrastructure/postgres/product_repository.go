package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = "id, name, description, price, active, category_id, created_at, updated_at, deleted_at"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, active, category_id, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Active,
		product.CategoryID, product.CreatedAt, product.UpdatedAt, product.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (incluidos los eliminados), sin tags.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Active,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetWithTags obtiene el producto con su set de tags hidratado.
func (r *ProductRepo) GetWithTags(id string) (*entity.Product, error) {
	product, err := r.GetByID(id)
	if err != nil || product == nil {
		return product, err
	}
	tags := NewTagRepository(r.q)
	list, err := tags.ListByProduct(product.ID)
	if err != nil {
		return nil, fmt.Errorf("hydrate product tags: %w", err)
	}
	product.Tags = make(map[string]*entity.Tag, len(list))
	for _, t := range list {
		product.Tags[t.ID] = t
	}
	return product, nil
}

// Update persiste los campos mutables y los timestamps (incluido deleted_at).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, active = $5,
			category_id = $6, updated_at = $7, deleted_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Active,
		product.CategoryID, product.UpdatedAt, product.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos; con includeDeleted=false excluye los soft-eliminados.
func (r *ProductRepo) List(includeDeleted bool) ([]*entity.Product, error) {
	if includeDeleted {
		return r.listWhere("TRUE")
	}
	return r.listWhere("deleted_at IS NULL")
}

// ListDeleted lista solo los productos soft-eliminados.
func (r *ProductRepo) ListDeleted() ([]*entity.Product, error) {
	return r.listWhere("deleted_at IS NOT NULL")
}

// ListByCategory lista los productos no eliminados de una categoría.
func (r *ProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	return r.listWhere("category_id = $1 AND deleted_at IS NULL", categoryID)
}

// ListByActive lista productos no eliminados por estado activo/inactivo.
func (r *ProductRepo) ListByActive(active bool) ([]*entity.Product, error) {
	return r.listWhere("active = $1 AND deleted_at IS NULL", active)
}

// ListCandidates devuelve el set candidato del motor de búsqueda: todos los
// productos no eliminados con sus tags hidratados en una segunda consulta.
func (r *ProductRepo) ListCandidates() ([]*entity.Product, error) {
	products, err := r.listWhere("deleted_at IS NULL")
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return products, nil
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		p.Tags = make(map[string]*entity.Tag)
		byID[p.ID] = p
	}

	query := `SELECT ` + tagColumns + ` FROM tags WHERE product_id IS NOT NULL AND deleted_at IS NULL`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list candidate tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		if p, ok := byID[t.ProductID]; ok {
			p.Tags[t.ID] = t
		}
	}
	return products, rows.Err()
}

// listWhere ejecuta el SELECT estándar de productos con la condición dada.
func (r *ProductRepo) listWhere(cond string, args ...any) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + cond + ` ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Active,
			&p.CategoryID, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
