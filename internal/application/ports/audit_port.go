package ports

// Acciones auditables del catálogo.
const (
	ActionProductCreated   = "PRODUCT_CREATED"
	ActionProductUpdated   = "PRODUCT_UPDATED"
	ActionProductDeleted   = "PRODUCT_DELETED"
	ActionProductRestored  = "PRODUCT_RESTORED"
	ActionCategoryCreated  = "CATEGORY_CREATED"
	ActionCategoryUpdated  = "CATEGORY_UPDATED"
	ActionCategoryDeleted  = "CATEGORY_DELETED"
	ActionCategoryRestored = "CATEGORY_RESTORED"
	ActionTagCreated       = "TAG_CREATED"
	ActionTagUpdated       = "TAG_UPDATED"
	ActionTagDeleted       = "TAG_DELETED"
	ActionTagRestored      = "TAG_RESTORED"
	ActionImportExecuted   = "IMPORT_EXECUTED"
)

// AuditLogger puerto de auditoría fire-and-forget: el dominio emite un evento
// por mutación exitosa de tipo create/delete y NO depende de que la escritura
// tenga éxito. Las implementaciones no devuelven error; los fallos se
// resuelven internamente (log + fallback), nunca revierten la mutación.
type AuditLogger interface {
	Log(action, userID string, payload any)
}

// NopAuditLogger implementación nula, útil en tests y cuando la auditoría
// está deshabilitada.
type NopAuditLogger struct{}

// Log descarta el evento.
func (NopAuditLogger) Log(action, userID string, payload any) {}
