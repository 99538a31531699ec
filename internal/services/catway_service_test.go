package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/marina-backend/internal/logger"
	"github.com/baharkarakas/marina-backend/internal/mocks"
	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/validate"
)

func ptr[T any](v T) *T { return &v }

func newCatwaySvc() (*CatwayService, *mocks.Catways, *mocks.AuditLogs) {
	c := &mocks.Catways{}
	a := &mocks.AuditLogs{}
	return NewCatwayService(c, NewAuditor(a, nil, logger.Discard())), c, a
}

func TestCatwayService_Create(t *testing.T) {
	ctx := context.Background()
	svc, c, a := newCatwaySvc()
	in := models.Catway{CatwayNumber: 5, CatwayType: models.CatwayLong, CatwayState: "good"}

	c.On("Exists", ctx, 5).Return(false, nil)
	c.On("Create", ctx, in).Return(in, nil)
	a.On("Create", mock.Anything, mock.MatchedBy(func(l models.AuditLog) bool {
		return l.EntityType == "catway" && l.EntityID == "5" && l.Action == models.AuditCreated
	})).Return(nil)

	got, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	c.AssertExpectations(t)
	a.AssertExpectations(t)
}

func TestCatwayService_Create_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		in    models.Catway
		rule  validate.Rule
		field string
	}{
		{"missing number", models.Catway{CatwayType: models.CatwayLong, CatwayState: "ok"}, validate.RuleRequired, "catwayNumber"},
		{"negative number", models.Catway{CatwayNumber: -2, CatwayType: models.CatwayLong, CatwayState: "ok"}, validate.RuleMin, "catwayNumber"},
		{"unknown type", models.Catway{CatwayNumber: 1, CatwayType: "medium", CatwayState: "ok"}, validate.RuleOneOf, "catwayType"},
		{"blank state", models.Catway{CatwayNumber: 1, CatwayType: models.CatwayShort, CatwayState: "  "}, validate.RuleRequired, "catwayState"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, c, _ := newCatwaySvc()
			_, err := svc.Create(context.Background(), tt.in)

			var errs validate.Errs
			require.ErrorAs(t, err, &errs)
			assert.True(t, errs.Has(tt.rule))
			assert.Equal(t, tt.field, errs[0].Field)
			c.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
			c.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCatwayService_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc, c, _ := newCatwaySvc()
	c.On("Exists", ctx, 5).Return(true, nil)

	_, err := svc.Create(ctx, models.Catway{CatwayNumber: 5, CatwayType: models.CatwayLong, CatwayState: "ok"})
	assert.ErrorIs(t, err, models.ErrDuplicateKey)
	c.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatwayService_Update(t *testing.T) {
	ctx := context.Background()
	cur := models.Catway{CatwayNumber: 3, CatwayType: models.CatwayShort, CatwayState: "ok"}

	t.Run("state changes", func(t *testing.T) {
		svc, c, a := newCatwaySvc()
		want := cur
		want.CatwayState = "en réparation"
		c.On("GetByNumber", ctx, 3).Return(cur, nil)
		c.On("Update", ctx, want).Return(want, nil)
		a.On("Create", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.Update(ctx, 3, models.CatwayPatch{
			CatwayType:  ptr(models.CatwayShort),
			CatwayState: ptr("en réparation"),
		})
		require.NoError(t, err)
		assert.Equal(t, "en réparation", got.CatwayState)
		c.AssertExpectations(t)
	})

	t.Run("type is immutable", func(t *testing.T) {
		svc, c, _ := newCatwaySvc()
		c.On("GetByNumber", ctx, 3).Return(cur, nil)

		_, err := svc.Update(ctx, 3, models.CatwayPatch{CatwayType: ptr(models.CatwayLong)})
		var errs validate.Errs
		require.ErrorAs(t, err, &errs)
		assert.True(t, errs.Has(validate.RuleImmutable))
		c.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("number is immutable", func(t *testing.T) {
		svc, c, _ := newCatwaySvc()
		c.On("GetByNumber", ctx, 3).Return(cur, nil)

		_, err := svc.Update(ctx, 3, models.CatwayPatch{CatwayNumber: ptr(4), CatwayState: ptr("x")})
		assert.ErrorIs(t, err, validate.ErrValidation)
		c.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("empty patch writes nothing", func(t *testing.T) {
		svc, c, _ := newCatwaySvc()
		c.On("GetByNumber", ctx, 3).Return(cur, nil)

		got, err := svc.Update(ctx, 3, models.CatwayPatch{})
		require.NoError(t, err)
		assert.Equal(t, cur, got)
		c.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown catway", func(t *testing.T) {
		svc, c, _ := newCatwaySvc()
		c.On("GetByNumber", ctx, 9).Return(models.Catway{}, models.ErrCatwayNotFound)

		_, err := svc.Update(ctx, 9, models.CatwayPatch{CatwayState: ptr("x")})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestCatwayService_Delete(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("uses current time as cutoff", func(t *testing.T) {
		svc, c, a := newCatwaySvc()
		svc.now = func() time.Time { return at }
		c.On("Delete", ctx, 4, at).Return(nil)
		a.On("Create", mock.Anything, mock.MatchedBy(func(l models.AuditLog) bool {
			return l.Action == models.AuditDeleted
		})).Return(nil)

		require.NoError(t, svc.Delete(ctx, 4))
		c.AssertExpectations(t)
		a.AssertExpectations(t)
	})

	t.Run("in use", func(t *testing.T) {
		svc, c, a := newCatwaySvc()
		svc.now = func() time.Time { return at }
		c.On("Delete", ctx, 4, at).Return(models.ErrCatwayInUse)

		assert.ErrorIs(t, svc.Delete(ctx, 4), models.ErrCatwayInUse)
		a.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCatwayService_AuditFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	svc, c, a := newCatwaySvc()
	in := models.Catway{CatwayNumber: 7, CatwayType: models.CatwayShort, CatwayState: "ok"}
	c.On("Exists", ctx, 7).Return(false, nil)
	c.On("Create", ctx, in).Return(in, nil)
	a.On("Create", mock.Anything, mock.Anything).Return(errors.New("audit table missing"))

	_, err := svc.Create(ctx, in)
	assert.NoError(t, err)
}
