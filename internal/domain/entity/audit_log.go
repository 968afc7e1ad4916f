package entity

import "time"

// AuditLog registro de auditoría de una mutación del catálogo.
// Payload se serializa como JSON al persistir.
type AuditLog struct {
	ID        string
	Action    string
	UserID    string
	Payload   any
	Timestamp time.Time
}
