package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/baharkarakas/marina-backend/internal/dbx"
	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/repository"
)

var _ repository.AuditLogs = (*auditLogsRepo)(nil)

type auditLogsRepo struct{ db dbx.DBTX }

func NewAuditLogs(db dbx.DBTX) repository.AuditLogs {
	return &auditLogsRepo{db: db}
}

func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	var details []byte
	if l.Details != nil {
		b, err := json.Marshal(l.Details)
		if err != nil {
			return fmt.Errorf("failed to encode audit details: %w", err)
		}
		details = b
	}
	actor := sql.NullString{String: l.ActorID, Valid: l.ActorID != ""}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_logs (id, entity_type, entity_id, action, actor_id, details)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.EntityType, l.EntityID, string(l.Action), actor, details,
	)
	return mapErr(err, "create audit log", nil, nil)
}
