//go:build integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/infra/readstore"
	"reservation-service/internal/infra/repository"
	sqlc "reservation-service/internal/infra/sqlc/generated"
	"reservation-service/tests/common/builder"
	"reservation-service/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationRepository_Integration(t *testing.T) {
	pool, _ := dbtest.NewTestDatabase(t)
	queries := sqlc.New()
	repo := repository.NewReservationRepository(queries, pool)
	reads := readstore.NewReservationReadStore(queries, pool)
	ctx := context.Background()

	reset := func(t *testing.T) {
		t.Helper()
		require.NoError(t, dbtest.ResetDB(pool))
	}

	t.Run("create assigns an id and stores pending", func(t *testing.T) {
		reset(t)
		pending, err := builder.NewReservationBuilder().BuildNew()
		require.NoError(t, err)

		created, err := repo.Create(ctx, pending)
		require.NoError(t, err)

		assert.Equal(t, int64(1), created.ID())
		assert.Equal(t, reservation.StatusPending, created.Status())
		assert.True(t, created.Window().Start().Equal(pending.Window().Start()))
		assert.True(t, created.Window().End().Equal(pending.Window().End()))
		assert.False(t, created.CreatedAt().IsZero())
	})

	t.Run("overlapping window on the same resource conflicts", func(t *testing.T) {
		reset(t)
		start := time.Date(2022, 12, 25, 22, 0, 0, 0, time.UTC)
		first, err := builder.NewReservationBuilder().WithWindow(start, start.Add(69*time.Hour)).BuildNew()
		require.NoError(t, err)
		_, err = repo.Create(ctx, first)
		require.NoError(t, err)

		secondStart := time.Date(2022, 12, 26, 22, 0, 0, 0, time.UTC)
		second, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.UserID = "aliceid" }).
			WithWindow(secondStart, secondStart.Add(93*time.Hour)).
			BuildNew()
		require.NoError(t, err)

		_, err = repo.Create(ctx, second)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)

		var conflict *reservation.ConflictError
		require.True(t, errors.As(err, &conflict))
		require.True(t, conflict.Info.IsParsed(), "raw detail: %s", conflict.Info.Raw)
		assert.Equal(t, "ocean-view-room-713", conflict.Info.Conflict.Old.ResourceID)
		assert.Equal(t, start, conflict.Info.Conflict.Old.Start)
		assert.Equal(t, secondStart, conflict.Info.Conflict.New.Start)
	})

	t.Run("adjacent windows and other resources do not conflict", func(t *testing.T) {
		reset(t)
		b := builder.NewReservationBuilder()
		first, err := b.BuildNew()
		require.NoError(t, err)
		_, err = repo.Create(ctx, first)
		require.NoError(t, err)

		adjacent, err := builder.NewReservationBuilder().WithWindow(b.End, b.End.Add(time.Hour)).BuildNew()
		require.NoError(t, err)
		_, err = repo.Create(ctx, adjacent)
		assert.NoError(t, err)

		elsewhere, err := builder.NewReservationBuilder().WithResource("mountain-view-room-101").BuildNew()
		require.NoError(t, err)
		_, err = repo.Create(ctx, elsewhere)
		assert.NoError(t, err)
	})

	t.Run("blocked rows do not take part in exclusion", func(t *testing.T) {
		reset(t)
		b := builder.NewReservationBuilder()
		dbtest.InsertReservation(t, pool, "someone", b.ResourceID, b.Start, b.End, "blocked")

		pending, err := b.BuildNew()
		require.NoError(t, err)
		_, err = repo.Create(ctx, pending)
		assert.NoError(t, err)
	})

	t.Run("confirm twice yields not found the second time", func(t *testing.T) {
		reset(t)
		pending, err := builder.NewReservationBuilder().BuildNew()
		require.NoError(t, err)
		created, err := repo.Create(ctx, pending)
		require.NoError(t, err)

		confirmed, err := repo.TransitionStatus(ctx, created.ID(), reservation.StatusPending, reservation.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, confirmed.Status())

		_, err = repo.TransitionStatus(ctx, created.ID(), reservation.StatusPending, reservation.StatusConfirmed)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("update note keeps status", func(t *testing.T) {
		reset(t)
		pending, err := builder.NewReservationBuilder().BuildNew()
		require.NoError(t, err)
		created, err := repo.Create(ctx, pending)
		require.NoError(t, err)

		updated, err := repo.UpdateNote(ctx, created.ID(), "late check-in")
		require.NoError(t, err)
		assert.Equal(t, "late check-in", updated.Note())
		assert.Equal(t, reservation.StatusPending, updated.Status())

		_, err = repo.UpdateNote(ctx, created.ID()+100, "x")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("cancel then get is not found", func(t *testing.T) {
		reset(t)
		pending, err := builder.NewReservationBuilder().BuildNew()
		require.NoError(t, err)
		created, err := repo.Create(ctx, pending)
		require.NoError(t, err)

		removed, err := repo.Delete(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, created.ID(), removed.ID())
		assert.Equal(t, int64(0), dbtest.CountReservations(t, pool))

		_, err = reads.FindByID(ctx, created.ID())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		_, err = repo.Delete(ctx, created.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
