package services

import (
	"context"
	"log/slog"

	"github.com/baharkarakas/marina-backend/internal/auth"
	"github.com/baharkarakas/marina-backend/internal/metrics"
	"github.com/baharkarakas/marina-backend/internal/models"
	repo "github.com/baharkarakas/marina-backend/internal/repository"
	"github.com/baharkarakas/marina-backend/internal/worker"
)

const (
	entityCatway      = "catway"
	entityReservation = "reservation"
	entityUser        = "user"
)

// Auditor records successful writes. Entries go through the worker pool when
// one is set, synchronously otherwise. A failed audit write never fails the
// operation that caused it.
type Auditor struct {
	logs repo.AuditLogs
	pool *worker.Pool
	log  *slog.Logger
}

func NewAuditor(logs repo.AuditLogs, pool *worker.Pool, log *slog.Logger) *Auditor {
	return &Auditor{logs: logs, pool: pool, log: log}
}

func (a *Auditor) record(ctx context.Context, entity, id string, action models.AuditAction, details map[string]any) {
	metrics.EntityWrites.WithLabelValues(entity, string(action)).Inc()
	if a == nil || a.logs == nil {
		return
	}

	entry := models.AuditLog{EntityType: entity, EntityID: id, Action: action, Details: details}
	if caller, ok := auth.FromContext(ctx); ok {
		entry.ActorID = caller.UserID
	}
	write := func(ctx context.Context) error { return a.logs.Create(ctx, entry) }

	if a.pool == nil {
		if err := write(context.WithoutCancel(ctx)); err != nil {
			a.log.Error("audit write failed",
				slog.String("entity", entity), slog.String("id", id), slog.Any("err", err))
		}
		return
	}
	a.pool.Submit("audit "+entity, write)
}
