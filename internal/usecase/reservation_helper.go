package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/pkg/metrics"
)

const maxStackLines = 12

// translateStorageErr maps infra error kinds onto the reservation error
// taxonomy. Callers never see raw storage errors; anything without a
// repository kind is ErrUnknown.
func translateStorageErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrReservationNotFound)
	case infra.IsKind(err, infra.KindConflict):
		var conflict *reservation.ConflictError
		if errors.As(err, &conflict) {
			return errs.Mark(conflict, errs.ErrReservationConflict)
		}
		return errs.Mark(err, errs.ErrReservationConflict)
	case errs.IsValidation(err):
		return err
	case infra.IsKind(err, infra.KindDBFailure), infra.IsKind(err, infra.KindDecodeFailure):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return errs.Mark(err, errs.ErrUnknown)
	}
}

// storageFailure translates err and logs it when it is not an expected
// business outcome.
func (m *reservationManagerImpl) storageFailure(ctx context.Context, op string, err error) error {
	translated := translateStorageErr(err)
	switch {
	case errs.IsAny(translated, errs.ErrDatabaseOperationFailed, errs.ErrUnknown):
		m.logger.ErrorContext(ctx, "Reservation storage failure",
			slog.String("operation", op),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, maxStackLines)),
		)
	case errs.Is(translated, errs.ErrReservationConflict):
		var conflict *reservation.ConflictError
		if errors.As(translated, &conflict) {
			m.logger.InfoContext(ctx, "Reservation conflict",
				slog.String("operation", op),
				slog.String("conflict", conflict.Info.String()),
			)
		}
	}
	return translated
}

func (m *reservationManagerImpl) observe(op string, err error, started time.Time) {
	if m.metrics == nil {
		return
	}
	m.metrics.Observe(op, outcomeOf(err), started)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCanceled
	case errs.IsValidation(err):
		return metrics.OutcomeInvalid
	case errs.Is(err, errs.ErrReservationNotFound):
		return metrics.OutcomeNotFound
	case errs.Is(err, errs.ErrReservationConflict):
		return metrics.OutcomeConflict
	case errs.Is(err, errs.ErrUnknown):
		return metrics.OutcomeUnknown
	default:
		return metrics.OutcomeStorageError
	}
}
