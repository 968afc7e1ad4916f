package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// CanWrite indica si el rol puede crear/actualizar recursos del catálogo.
func CanWrite(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}

// CanDelete indica si el rol puede eliminar/restaurar recursos del catálogo.
func CanDelete(role string) bool {
	return role == RoleAdmin
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Name         string
	Role         string // admin, editor, viewer
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
