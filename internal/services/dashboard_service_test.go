package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/marina-backend/internal/mocks"
	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/repository/memory"
)

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	now := time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC)

	for _, n := range []int{1, 2, 3} {
		_, err := repos.Catways.Create(ctx, models.Catway{CatwayNumber: n, CatwayType: models.CatwayLong, CatwayState: "ok"})
		require.NoError(t, err)
	}
	_, err := repos.Reservations.Create(ctx, models.Reservation{CatwayNumber: 1, ClientName: "a", BoatName: "b",
		StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)})
	require.NoError(t, err)
	_, err = repos.Reservations.Create(ctx, models.Reservation{CatwayNumber: 2, ClientName: "a", BoatName: "b",
		StartDate: now.Add(24 * time.Hour), EndDate: now.Add(48 * time.Hour)})
	require.NoError(t, err)
	_, err = repos.Users.Create(ctx, models.User{Username: "ana", Email: "a@b.com", PasswordHash: "h"})
	require.NoError(t, err)

	svc := NewDashboardService(repos.Catways, repos.Reservations, repos.Users)
	svc.now = func() time.Time { return now }

	d, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, d.At)
	assert.Equal(t, 3, d.Catways)
	assert.Equal(t, 2, d.Reservations)
	assert.Equal(t, 1, d.Users)
	require.Len(t, d.CurrentReservations, 1)
	assert.Equal(t, 1, d.CurrentReservations[0].CatwayNumber)
}

func TestDashboardService_StatsError(t *testing.T) {
	c := &mocks.Catways{}
	r := &mocks.Reservations{}
	u := &mocks.Users{}
	c.On("Count", mock.Anything).Return(0, errors.New("db down"))
	r.On("Count", mock.Anything).Return(1, nil)
	r.On("ListActiveAt", mock.Anything, mock.Anything).Return([]models.Reservation{}, nil)
	u.On("Count", mock.Anything).Return(1, nil)

	_, err := NewDashboardService(c, r, u).Stats(context.Background())
	assert.EqualError(t, err, "db down")
}
