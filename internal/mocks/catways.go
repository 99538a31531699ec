// Package mocks holds testify doubles of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/baharkarakas/marina-backend/internal/models"
)

type Catways struct {
	mock.Mock
}

func (m *Catways) Create(ctx context.Context, c models.Catway) (models.Catway, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.Catway), args.Error(1)
}

func (m *Catways) GetByNumber(ctx context.Context, number int) (models.Catway, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(models.Catway), args.Error(1)
}

func (m *Catways) Exists(ctx context.Context, number int) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *Catways) List(ctx context.Context) ([]models.Catway, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Catway), args.Error(1)
}

func (m *Catways) Update(ctx context.Context, c models.Catway) (models.Catway, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.Catway), args.Error(1)
}

func (m *Catways) Delete(ctx context.Context, number int, activeAfter time.Time) error {
	args := m.Called(ctx, number, activeAfter)
	return args.Error(0)
}

func (m *Catways) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
