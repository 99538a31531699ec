package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/validate"
)

func TestCatways_CRUD(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	_, err := repos.Catways.Create(ctx, models.Catway{CatwayNumber: 2, CatwayType: models.CatwayShort, CatwayState: "ok"})
	require.NoError(t, err)
	c, err := repos.Catways.Create(ctx, models.Catway{CatwayNumber: 1, CatwayType: models.CatwayLong, CatwayState: "ok"})
	require.NoError(t, err)
	assert.False(t, c.CreatedAt.IsZero())

	_, err = repos.Catways.Create(ctx, models.Catway{CatwayNumber: 1, CatwayType: models.CatwayShort, CatwayState: "x"})
	assert.ErrorIs(t, err, models.ErrDuplicateKey)

	list, err := repos.Catways.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].CatwayNumber)

	updated, err := repos.Catways.Update(ctx, models.Catway{CatwayNumber: 1, CatwayType: models.CatwayLong, CatwayState: "en travaux"})
	require.NoError(t, err)
	assert.Equal(t, "en travaux", updated.CatwayState)
	assert.Equal(t, c.CreatedAt, updated.CreatedAt)

	_, err = repos.Catways.Update(ctx, models.Catway{CatwayNumber: 99, CatwayType: models.CatwayLong})
	assert.ErrorIs(t, err, models.ErrCatwayNotFound)

	n, err := repos.Catways.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCatways_RejectsInvalidRows(t *testing.T) {
	repos := NewRepositories()
	_, err := repos.Catways.Create(context.Background(), models.Catway{CatwayNumber: 0, CatwayType: models.CatwayLong})
	assert.ErrorIs(t, err, validate.ErrValidation)
	_, err = repos.Catways.Create(context.Background(), models.Catway{CatwayNumber: 3, CatwayType: "medium"})
	assert.ErrorIs(t, err, validate.ErrValidation)
}

func TestCatways_DeleteRestricted(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	_, err := repos.Catways.Create(ctx, models.Catway{CatwayNumber: 4, CatwayType: models.CatwayLong, CatwayState: "ok"})
	require.NoError(t, err)
	res, err := repos.Reservations.Create(ctx, models.Reservation{
		CatwayNumber: 4, ClientName: "Ana", BoatName: "Sirena",
		StartDate: now.Add(-24 * time.Hour), EndDate: now.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, repos.Catways.Delete(ctx, 4, now), models.ErrCatwayInUse)
	ok, _ := repos.Catways.Exists(ctx, 4)
	assert.True(t, ok, "catway must survive a refused delete")

	// Past reservations do not block.
	assert.NoError(t, repos.Catways.Delete(ctx, 4, now.Add(48*time.Hour)))
	assert.ErrorIs(t, repos.Catways.Delete(ctx, 4, now), models.ErrCatwayNotFound)

	_, err = repos.Reservations.GetByID(ctx, res.ID)
	assert.NoError(t, err, "reservations are not cascaded")
}

func TestReservations_Queries(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	mk := func(catway int, start time.Time, days int) models.Reservation {
		r, err := repos.Reservations.Create(ctx, models.Reservation{
			CatwayNumber: catway, ClientName: "c", BoatName: "b",
			StartDate: start, EndDate: start.Add(time.Duration(days) * 24 * time.Hour),
		})
		require.NoError(t, err)
		return r
	}
	late := mk(1, base.Add(10*24*time.Hour), 2)
	early := mk(1, base, 3)
	other := mk(2, base.Add(24*time.Hour), 1)

	all, err := repos.Reservations.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{early.ID, other.ID, late.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	byCatway, err := repos.Reservations.ListByCatway(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCatway, 2)

	active, err := repos.Reservations.ListActiveAt(ctx, base.Add(36*time.Hour))
	require.NoError(t, err)
	require.Len(t, active, 2)

	// Bounds are inclusive.
	active, err = repos.Reservations.ListActiveAt(ctx, early.EndDate)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, early.ID, active[0].ID)
}

func TestReservations_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	r, err := repos.Reservations.Create(ctx, models.Reservation{
		CatwayNumber: 1, ClientName: "Ana", BoatName: "Sirena", StartDate: start, EndDate: start.Add(time.Hour),
	})
	require.NoError(t, err)

	r.BoatName = "Sirena II"
	got, err := repos.Reservations.Update(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, "Sirena II", got.BoatName)

	r.EndDate = r.StartDate
	_, err = repos.Reservations.Update(ctx, r)
	assert.ErrorIs(t, err, validate.ErrValidation)

	require.NoError(t, repos.Reservations.Delete(ctx, r.ID))
	assert.ErrorIs(t, repos.Reservations.Delete(ctx, r.ID), models.ErrReservationNotFound)
	_, err = repos.Reservations.Update(ctx, got)
	assert.ErrorIs(t, err, models.ErrReservationNotFound)
}

func TestUsers_EmailUnique(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	u, err := repos.Users.Create(ctx, models.User{Username: "capitaine", Email: "cap@port.fr", PasswordHash: "h"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	_, err = repos.Users.Create(ctx, models.User{Username: "autre", Email: "cap@port.fr", PasswordHash: "h"})
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	byEmail, err := repos.Users.GetByEmail(ctx, "cap@port.fr")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	updated, err := repos.Users.Update(ctx, models.User{ID: u.ID, Username: "amiral", PasswordHash: "h2"})
	require.NoError(t, err)
	assert.Equal(t, "cap@port.fr", updated.Email)
	assert.Equal(t, "h2", updated.PasswordHash)

	require.NoError(t, repos.Users.DeleteByEmail(ctx, "cap@port.fr"))
	_, err = repos.Users.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	// The email is free again.
	_, err = repos.Users.Create(ctx, models.User{Username: "nouveau", Email: "cap@port.fr", PasswordHash: "h"})
	assert.NoError(t, err)
}

func TestUsers_ConcurrentRegistrationSameEmail(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repos.Users.Create(ctx, models.User{Username: fmt.Sprintf("u%d", i), Email: "same@port.fr"})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, created)
}

func TestAuditLogs_Entries(t *testing.T) {
	repos := NewRepositories()
	require.NoError(t, repos.AuditLogs.Create(context.Background(), models.AuditLog{EntityType: "catway", EntityID: "1", Action: models.AuditCreated}))

	entries := repos.AuditLogs.Entries()
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestPing(t *testing.T) {
	repos := NewRepositories()
	assert.NoError(t, repos.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, repos.Ping(ctx), context.Canceled)
}
