package usecase

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/pkg/metrics"
)

type streamItem struct {
	res *reservation.Reservation
	err error
}

// Query validates q and returns a sequence over the matching reservations.
// Every range over the sequence runs its own producer; breaking out of the
// loop stops the producer, closes the storage cursor and waits for the
// producer to exit before the range statement returns. When ctx ends before
// the producer finishes, the last item carries ctx's error.
func (m *reservationManagerImpl) Query(ctx context.Context, q reservation.Query) (iter.Seq2[*reservation.Reservation, error], error) {
	if err := q.Validate(); err != nil {
		m.observe(opQuery, err, time.Now())
		return nil, err
	}

	return func(yield func(*reservation.Reservation, error) bool) {
		started := time.Now()
		streamCtx, cancel := context.WithCancel(ctx)
		items := m.produce(streamCtx, q)

		outcome := metrics.OutcomeOK
		defer func() {
			cancel()
			for range items {
			}
			if m.metrics != nil {
				m.metrics.Observe(opQuery, outcome, started)
			}
		}()

		for item := range items {
			if item.err != nil {
				outcome = outcomeOf(item.err)
			}
			if !yield(item.res, item.err) {
				outcome = metrics.OutcomeCanceled
				return
			}
		}

		if err := ctx.Err(); err != nil {
			outcome = metrics.OutcomeCanceled
			yield(nil, errs.Wrap(err, "reservation stream interrupted"))
		}
	}, nil
}

// produce streams rows into a buffered channel. A full channel blocks the
// producer until the consumer catches up or ctx is canceled.
func (m *reservationManagerImpl) produce(ctx context.Context, q reservation.Query) <-chan streamItem {
	items := make(chan streamItem, m.streamBuffer)

	go func() {
		defer close(items)

		send := func(item streamItem) bool {
			if ctx.Err() != nil {
				return false
			}
			select {
			case items <- item:
				return true
			case <-ctx.Done():
				return false
			}
		}

		err := m.reads.StreamByQuery(ctx, q, func(res *reservation.Reservation, err error) bool {
			if err != nil {
				m.logger.WarnContext(ctx, "Skipping undecodable reservation row", slog.String("error", err.Error()))
				return send(streamItem{err: translateStorageErr(err)})
			}
			if m.metrics != nil {
				m.metrics.IncStreamed()
			}
			return send(streamItem{res: res})
		})
		if err != nil && ctx.Err() == nil {
			send(streamItem{err: m.storageFailure(ctx, opQuery, err)})
		}
	}()

	return items
}
