package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/baharkarakas/marina-backend/internal/models"
)

type Reservations struct {
	mock.Mock
}

func (m *Reservations) Create(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(models.Reservation), args.Error(1)
}

func (m *Reservations) GetByID(ctx context.Context, id string) (models.Reservation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Reservation), args.Error(1)
}

func (m *Reservations) List(ctx context.Context) ([]models.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *Reservations) ListByCatway(ctx context.Context, number int) ([]models.Reservation, error) {
	args := m.Called(ctx, number)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *Reservations) ListActiveAt(ctx context.Context, at time.Time) ([]models.Reservation, error) {
	args := m.Called(ctx, at)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *Reservations) Update(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(models.Reservation), args.Error(1)
}

func (m *Reservations) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Reservations) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
