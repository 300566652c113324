//go:build unit

package converter_test

import (
	"testing"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra/converter"
	sqlc "reservation-service/internal/infra/sqlc/generated"
	"reservation-service/internal/pkg/errs"
	"reservation-service/tests/common/builder"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	for _, s := range []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusBlocked,
	} {
		infraStatus, err := converter.StatusToInfra(s)
		require.NoError(t, err)
		back, err := converter.StatusFromInfra(infraStatus)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}

	_, err := converter.StatusToInfra(reservation.Status(99))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidStatus))

	_, err = converter.StatusToInfra(reservation.StatusUnknown)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidStatus))

	_, err = converter.StatusFromInfra(sqlc.RsvpReservationStatus("archived"))
	assert.Error(t, err)

	_, err = converter.StatusFromInfra(sqlc.RsvpReservationStatusUnknown)
	assert.Error(t, err)
}

func TestReservationToCreateParams(t *testing.T) {
	b := builder.NewReservationBuilder()
	res, err := b.BuildNew()
	require.NoError(t, err)

	params, err := converter.ReservationToCreateParams(res)
	require.NoError(t, err)

	assert.Equal(t, b.UserID, params.UserID)
	assert.Equal(t, b.ResourceID, params.ResourceID)
	assert.Equal(t, b.Note, params.Note)
	assert.Equal(t, sqlc.RsvpReservationStatusPending, params.Status)
	assert.True(t, params.Timespan.Valid)
	assert.Equal(t, b.Start, params.Timespan.Lower.Time)
	assert.Equal(t, b.End, params.Timespan.Upper.Time)

	_, err = converter.ReservationToCreateParams(b.WithID(3).BuildStored())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidReservationID))
}

func TestReservationFromRow(t *testing.T) {
	b := builder.NewReservationBuilder().WithID(5).WithStatus(reservation.StatusBlocked)

	t.Run("decodes a stored row", func(t *testing.T) {
		res, err := converter.ReservationFromRow(b.BuildInfra())
		require.NoError(t, err)

		assert.Equal(t, int64(5), res.ID())
		assert.Equal(t, reservation.StatusBlocked, res.Status())
		assert.Equal(t, b.Start, res.Window().Start())
		assert.Equal(t, b.End, res.Window().End())
		assert.Equal(t, b.CreatedAt, res.CreatedAt())
	})

	t.Run("rejects an unbounded timespan", func(t *testing.T) {
		row := b.BuildInfra()
		row.Timespan.LowerType = pgtype.Unbounded

		_, err := converter.ReservationFromRow(row)
		assert.Error(t, err)
	})

	t.Run("rejects an infinite bound", func(t *testing.T) {
		row := b.BuildInfra()
		row.Timespan.Upper = pgtype.Timestamptz{InfinityModifier: pgtype.Infinity, Valid: true}

		_, err := converter.ReservationFromRow(row)
		assert.Error(t, err)
	})

	t.Run("rejects a stored unknown status", func(t *testing.T) {
		row := b.BuildInfra()
		row.Status = sqlc.RsvpReservationStatusUnknown

		res, err := converter.ReservationFromRow(row)
		require.Error(t, err)
		assert.Nil(t, res)
	})

	t.Run("rejects an empty window", func(t *testing.T) {
		row := b.BuildInfra()
		row.Timespan.Upper = pgtype.Timestamptz{Time: b.Start.Add(-time.Hour), Valid: true}

		_, err := converter.ReservationFromRow(row)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidTime))
	})
}
