//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/pkg/metrics"
	"reservation-service/tests/common/builder"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type streamFunc = func(context.Context, reservation.Query, func(*reservation.Reservation, error) bool) error

// yieldAll streams the given items and stops early when the consumer does.
func yieldAll(items []*reservation.Reservation, errsAt map[int]error, tail error) streamFunc {
	return func(_ context.Context, _ reservation.Query, yield func(*reservation.Reservation, error) bool) error {
		for i, res := range items {
			if err, ok := errsAt[i]; ok {
				if !yield(nil, err) {
					return nil
				}
				continue
			}
			if !yield(res, nil) {
				return nil
			}
		}
		return tail
	}
}

func TestReservationManager_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers every row in order", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		f := newFixture(t)
		f.reads.EXPECT().StreamByQuery(gomock.Any(), reservation.Query{UserID: "luckychacha-id"}, gomock.Any()).
			DoAndReturn(yieldAll(builder.Sequence(1, 5), nil, nil))

		seq, err := f.manager.Query(ctx, reservation.Query{UserID: "luckychacha-id"})
		require.NoError(t, err)

		var ids []int64
		for res, err := range seq {
			require.NoError(t, err)
			ids = append(ids, res.ID())
		}

		assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids)
		assert.Equal(t, 5.0, testutil.ToFloat64(f.metrics.Streamed()))
		assert.Equal(t, 1.0, f.count("query", metrics.OutcomeOK))
	})

	t.Run("invalid query is rejected before streaming", func(t *testing.T) {
		f := newFixture(t)
		start := builder.NewReservationBuilder().Start
		end := start.Add(-1)

		seq, err := f.manager.Query(ctx, reservation.Query{Start: &start, End: &end})

		require.Error(t, err)
		assert.Nil(t, seq)
		assert.True(t, errs.Is(err, errs.ErrInvalidTime))
		assert.Equal(t, 1.0, f.count("query", metrics.OutcomeInvalid))
	})

	t.Run("decode failure is an item and streaming continues", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		f := newFixture(t)
		decodeErr := infra.WrapRepoErr("failed to decode reservation row", errors.New("bad status"), infra.KindDecodeFailure)
		f.reads.EXPECT().StreamByQuery(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(yieldAll(builder.Sequence(1, 3), map[int]error{1: decodeErr}, nil))

		seq, err := f.manager.Query(ctx, reservation.Query{})
		require.NoError(t, err)

		var got []string
		for res, err := range seq {
			if err != nil {
				assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
				got = append(got, "err")
				continue
			}
			got = append(got, res.ResourceID())
		}

		assert.Equal(t, []string{"ocean-view-room-713", "err", "ocean-view-room-713"}, got)
	})

	t.Run("storage failure is the final item", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		f := newFixture(t)
		f.reads.EXPECT().StreamByQuery(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(yieldAll(builder.Sequence(1, 2), nil, infra.WrapRepoErr("failed to stream", errors.New("connection reset"))))

		seq, err := f.manager.Query(ctx, reservation.Query{})
		require.NoError(t, err)

		var rows int
		var last error
		for res, err := range seq {
			if err != nil {
				last = err
				continue
			}
			require.Nil(t, last, "no rows after the storage failure")
			assert.NotNil(t, res)
			rows++
		}

		assert.Equal(t, 2, rows)
		require.Error(t, last)
		assert.True(t, errs.Is(last, errs.ErrDatabaseOperationFailed))
		assert.Equal(t, 1.0, f.count("query", metrics.OutcomeStorageError))
	})

	t.Run("early break stops the producer and leaks nothing", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		f := newFixture(t)

		var producerCtx context.Context
		var yieldedAfterBreak bool
		f.reads.EXPECT().StreamByQuery(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ reservation.Query, yield func(*reservation.Reservation, error) bool) error {
				producerCtx = ctx
				for id := int64(1); id <= 10_000; id++ {
					if !yield(builder.NewReservationBuilder().WithID(id).BuildStored(), nil) {
						return nil
					}
				}
				yieldedAfterBreak = true
				return nil
			})

		seq, err := f.manager.Query(ctx, reservation.Query{})
		require.NoError(t, err)

		var seen int
		for _, err := range seq {
			require.NoError(t, err)
			seen++
			if seen == 3 {
				break
			}
		}

		assert.Equal(t, 3, seen)
		require.NotNil(t, producerCtx)
		assert.ErrorIs(t, producerCtx.Err(), context.Canceled)
		assert.False(t, yieldedAfterBreak, "producer must stop once the consumer leaves")
		assert.Equal(t, 1.0, f.count("query", metrics.OutcomeCanceled))
	})

	t.Run("each range starts a fresh producer", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		f := newFixture(t)
		f.reads.EXPECT().StreamByQuery(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(yieldAll(builder.Sequence(1, 4), nil, nil)).
			Times(2)

		seq, err := f.manager.Query(ctx, reservation.Query{})
		require.NoError(t, err)

		for range 2 {
			var n int
			for _, err := range seq {
				require.NoError(t, err)
				n++
			}
			assert.Equal(t, 4, n)
		}
	})

	t.Run("canceled caller context ends the stream with its error", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		f := newFixture(t)
		cctx, cancel := context.WithCancel(ctx)
		f.reads.EXPECT().StreamByQuery(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ reservation.Query, yield func(*reservation.Reservation, error) bool) error {
				if !yield(builder.NewReservationBuilder().WithID(1).BuildStored(), nil) {
					return nil
				}
				cancel()
				<-ctx.Done()
				yield(builder.NewReservationBuilder().WithID(2).BuildStored(), nil)
				return ctx.Err()
			})

		seq, err := f.manager.Query(cctx, reservation.Query{})
		require.NoError(t, err)

		var ids []int64
		var failures []error
		for res, err := range seq {
			if err != nil {
				failures = append(failures, err)
				continue
			}
			ids = append(ids, res.ID())
		}

		assert.Equal(t, []int64{1}, ids)
		require.Len(t, failures, 1, "truncation is reported exactly once")
		assert.ErrorIs(t, failures[0], context.Canceled)
		assert.Equal(t, 1.0, f.count("query", metrics.OutcomeCanceled))
		assert.Equal(t, 0.0, f.count("query", metrics.OutcomeOK))
	})

	t.Run("completed stream reports no error once the caller cancels afterwards", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		f := newFixture(t)
		cctx, cancel := context.WithCancel(ctx)
		defer cancel()
		f.reads.EXPECT().StreamByQuery(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(yieldAll(builder.Sequence(1, 2), nil, nil))

		seq, err := f.manager.Query(cctx, reservation.Query{})
		require.NoError(t, err)

		var n int
		for _, err := range seq {
			require.NoError(t, err)
			n++
		}
		cancel()

		assert.Equal(t, 2, n)
		assert.Equal(t, 1.0, f.count("query", metrics.OutcomeOK))
	})
}
