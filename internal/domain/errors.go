package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// Comunes a todos los agregados.
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidArgument = errors.New("argumento inválido")
	ErrNullArgument    = errors.New("argumento requerido ausente")
	ErrDuplicate       = errors.New("recurso duplicado")

	// Ciclo de vida (soft-delete / restore).
	ErrEntityDeleted  = errors.New("no es posible modificar una entidad eliminada")
	ErrAlreadyDeleted = errors.New("la entidad ya fue eliminada")
	ErrNotDeleted     = errors.New("la entidad no está eliminada")

	// Regla cruzada Category→Product.
	ErrHasActiveDependents = errors.New("la categoría tiene productos activos asociados")

	// Auth.
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
