package audit

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// Logger escribe eventos de auditoría en la tabla audit_logs. Si la escritura
// en Postgres falla, el evento se anexa como línea JSON a un archivo de
// respaldo; ningún fallo de auditoría se propaga al llamador.
type Logger struct {
	q            postgres.Querier
	fallbackPath string
	log          *logger.Logger
}

// NewLogger crea el logger de auditoría respaldado por Postgres.
func NewLogger(q postgres.Querier, fallbackPath string, log *logger.Logger) *Logger {
	return &Logger{q: q, fallbackPath: fallbackPath, log: log}
}

var _ ports.AuditLogger = (*Logger)(nil)

// Log persiste el evento. El payload se serializa a JSON antes de insertarlo
// en la columna JSONB; si no es serializable se registra como null.
func (l *Logger) Log(action, userID string, payload any) {
	entry := entity.AuditLog{
		ID:        uuid.NewString(),
		Action:    action,
		UserID:    userID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		l.log.Warn().Err(err).Str("action", action).Msg("payload de auditoría no serializable")
		raw = []byte("null")
	}

	_, err = l.q.Exec(context.Background(), `
		INSERT INTO audit_logs (id, action, user_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Action, entry.UserID, raw, entry.Timestamp,
	)
	if err == nil {
		return
	}

	l.log.Warn().Err(err).Str("action", action).Msg("auditoría en DB falló, usando respaldo en archivo")
	if err := l.appendFallback(entry); err != nil {
		l.log.Error().Err(err).Str("action", action).Msg("respaldo de auditoría también falló, evento perdido")
	}
}

// appendFallback anexa el evento como una línea JSON al archivo de respaldo.
func (l *Logger) appendFallback(entry entity.AuditLog) error {
	f, err := os.OpenFile(l.fallbackPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	line = append(line, '\n')
	_, err = f.Write(line)
	return err
}
