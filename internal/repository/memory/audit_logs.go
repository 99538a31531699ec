package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/repository"
)

var _ repository.AuditLogs = (*AuditLogs)(nil)

type AuditLogs struct{ s *store }

func (r *AuditLogs) Create(ctx context.Context, l models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = r.s.now()
	r.s.audit = append(r.s.audit, l)
	return nil
}

// Entries returns a copy of the recorded audit trail, oldest first.
func (r *AuditLogs) Entries() []models.AuditLog {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]models.AuditLog(nil), r.s.audit...)
}
