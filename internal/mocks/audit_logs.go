package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/baharkarakas/marina-backend/internal/models"
)

type AuditLogs struct {
	mock.Mock
}

func (m *AuditLogs) Create(ctx context.Context, l models.AuditLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
