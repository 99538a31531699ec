package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/marina-backend/internal/mocks"
	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/repository/memory"
	"github.com/baharkarakas/marina-backend/internal/validate"
)

var (
	day0 = time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	day3 = day0.Add(72 * time.Hour)
)

func validReservation(catway int) models.Reservation {
	return models.Reservation{CatwayNumber: catway, ClientName: "Ana", BoatName: "Sirena", StartDate: day0, EndDate: day3}
}

func newReservationSvcMocks() (*ReservationService, *mocks.Reservations, *mocks.Catways) {
	r := &mocks.Reservations{}
	c := &mocks.Catways{}
	return NewReservationService(r, c, nil), r, c
}

func TestReservationService_Create_InvalidDateRange(t *testing.T) {
	for _, end := range []time.Time{day0, day0.Add(-time.Hour)} {
		svc, r, c := newReservationSvcMocks()
		in := validReservation(5)
		in.EndDate = end

		_, err := svc.Create(context.Background(), in)
		var errs validate.Errs
		require.ErrorAs(t, err, &errs)
		assert.True(t, errs.Has(validate.RuleInvalidDateRange))
		c.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
		r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestReservationService_Create_MissingFields(t *testing.T) {
	svc, r, _ := newReservationSvcMocks()

	_, err := svc.Create(context.Background(), models.Reservation{})
	var errs validate.Errs
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 5)
	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReservationService_Create_UnknownCatway(t *testing.T) {
	ctx := context.Background()
	svc, r, c := newReservationSvcMocks()
	c.On("Exists", ctx, 999).Return(false, nil)

	_, err := svc.Create(ctx, validReservation(999))
	assert.ErrorIs(t, err, models.ErrCatwayNotFound)
	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReservationService_Create_IgnoresClientID(t *testing.T) {
	ctx := context.Background()
	svc, r, c := newReservationSvcMocks()
	in := validReservation(5)
	in.ID = "chosen-by-client"

	c.On("Exists", ctx, 5).Return(true, nil)
	r.On("Create", ctx, mock.MatchedBy(func(res models.Reservation) bool { return res.ID == "" })).
		Return(models.Reservation{ID: "generated"}, nil)

	got, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "generated", got.ID)
}

func TestReservationService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	_, err := repos.Catways.Create(ctx, models.Catway{CatwayNumber: 5, CatwayType: models.CatwayLong, CatwayState: "ok"})
	require.NoError(t, err)
	svc := NewReservationService(repos.Reservations, repos.Catways, nil)

	in := validReservation(5)
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.CatwayNumber, got.CatwayNumber)
	assert.Equal(t, in.ClientName, got.ClientName)
	assert.Equal(t, in.BoatName, got.BoatName)
	assert.True(t, in.StartDate.Equal(got.StartDate))
	assert.True(t, in.EndDate.Equal(got.EndDate))
}

func TestReservationService_Update(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	for _, n := range []int{1, 2} {
		_, err := repos.Catways.Create(ctx, models.Catway{CatwayNumber: n, CatwayType: models.CatwayLong, CatwayState: "ok"})
		require.NoError(t, err)
	}
	svc := NewReservationService(repos.Reservations, repos.Catways, nil)
	created, err := svc.Create(ctx, validReservation(1))
	require.NoError(t, err)

	t.Run("partial merge", func(t *testing.T) {
		got, err := svc.Update(ctx, created.ID, models.ReservationPatch{BoatName: ptr("Sirena II")})
		require.NoError(t, err)
		assert.Equal(t, "Sirena II", got.BoatName)
		assert.Equal(t, "Ana", got.ClientName)
	})

	t.Run("end before merged start", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, models.ReservationPatch{StartDate: ptr(day3.Add(time.Hour))})
		assert.ErrorIs(t, err, validate.ErrValidation)

		stored, _ := svc.Get(ctx, created.ID)
		assert.True(t, stored.StartDate.Equal(day0), "no write on rejected update")
	})

	t.Run("clearing a name is a validation error", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, models.ReservationPatch{ClientName: ptr("")})
		assert.ErrorIs(t, err, validate.ErrValidation)
	})

	t.Run("move to missing catway", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, models.ReservationPatch{CatwayNumber: ptr(999)})
		assert.ErrorIs(t, err, models.ErrCatwayNotFound)

		stored, _ := svc.Get(ctx, created.ID)
		assert.Equal(t, 1, stored.CatwayNumber)
	})

	t.Run("move to existing catway", func(t *testing.T) {
		got, err := svc.Update(ctx, created.ID, models.ReservationPatch{CatwayNumber: ptr(2)})
		require.NoError(t, err)
		assert.Equal(t, 2, got.CatwayNumber)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, "not-a-uuid", models.ReservationPatch{})
		assert.ErrorIs(t, err, models.ErrReservationNotFound)
	})
}

func TestReservationService_Update_SameCatwaySkipsLookup(t *testing.T) {
	ctx := context.Background()
	svc, r, c := newReservationSvcMocks()
	id := "0b9d8c1e-7f1a-4a55-9d0e-1d2f3a4b5c6d"
	cur := validReservation(1)
	cur.ID = id
	r.On("GetByID", ctx, id).Return(cur, nil)
	r.On("Update", ctx, mock.Anything).Return(cur, nil)

	_, err := svc.Update(ctx, id, models.ReservationPatch{CatwayNumber: ptr(1)})
	require.NoError(t, err)
	c.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestReservationService_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	_, err := repos.Catways.Create(ctx, models.Catway{CatwayNumber: 1, CatwayType: models.CatwayLong, CatwayState: "ok"})
	require.NoError(t, err)
	svc := NewReservationService(repos.Reservations, repos.Catways, nil)
	created, err := svc.Create(ctx, validReservation(1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), models.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), models.ErrNotFound)
}

func TestReservationService_CanonicalID(t *testing.T) {
	ctx := context.Background()
	svc, r, _ := newReservationSvcMocks()
	id := "3f0c2b6e-8d1a-4c55-a1f0-6b2e9d4c7a10"
	stored := validReservation(1)
	stored.ID = id

	r.On("GetByID", ctx, id).Return(stored, nil).Twice()
	r.On("Delete", ctx, id).Return(nil).Once()

	for _, in := range []string{strings.ToUpper(id), "urn:uuid:" + id} {
		got, err := svc.Get(ctx, in)
		require.NoError(t, err, in)
		assert.Equal(t, id, got.ID)
	}
	require.NoError(t, svc.Delete(ctx, "{"+id+"}"))

	_, err := svc.Get(ctx, "urn:uuid:nope")
	assert.ErrorIs(t, err, models.ErrReservationNotFound)
	r.AssertExpectations(t)
}

func TestReservationService_CatwayScoped(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	for _, n := range []int{1, 2} {
		_, err := repos.Catways.Create(ctx, models.Catway{CatwayNumber: n, CatwayType: models.CatwayShort, CatwayState: "ok"})
		require.NoError(t, err)
	}
	svc := NewReservationService(repos.Reservations, repos.Catways, nil)

	in := validReservation(2)
	created, err := svc.CreateForCatway(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, 1, created.CatwayNumber, "path catway wins over body")

	_, err = svc.GetForCatway(ctx, 1, created.ID)
	require.NoError(t, err)

	_, err = svc.GetForCatway(ctx, 2, created.ID)
	assert.ErrorIs(t, err, models.ErrReservationNotFound)

	_, err = svc.GetForCatway(ctx, 42, created.ID)
	assert.ErrorIs(t, err, models.ErrCatwayNotFound)

	assert.ErrorIs(t, svc.DeleteForCatway(ctx, 2, created.ID), models.ErrReservationNotFound)

	list, err := svc.ListByCatway(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListByCatway(ctx, 42)
	assert.ErrorIs(t, err, models.ErrCatwayNotFound)

	updated, err := svc.UpdateForCatway(ctx, 1, created.ID, models.ReservationPatch{ClientName: ptr("Bo")})
	require.NoError(t, err)
	assert.Equal(t, "Bo", updated.ClientName)

	require.NoError(t, svc.DeleteForCatway(ctx, 1, created.ID))
}
