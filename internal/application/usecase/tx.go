package usecase

import "github.com/jhoicas/catalogo-api/internal/domain/repository"

// TxRunner ejecuta fn con repositorios atados a una misma transacción. Lo
// usan los comandos que leen y mutan más de un agregado (el delete de
// categoría evalúa su regla sobre el snapshot de productos de la MISMA
// transacción que escribe el soft-delete).
type TxRunner interface {
	Run(fn func(categories repository.CategoryRepository, products repository.ProductRepository) error) error
}
