package repository

import (
	"context"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/infra/converter"
	sqlc "reservation-service/internal/infra/sqlc/generated"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/pkg/pgconv"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation_mock.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.RsvpReservation, error)
	TransitionReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionReservationStatusParams) (sqlc.RsvpReservation, error)
	UpdateReservationNote(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationNoteParams) (sqlc.RsvpReservation, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RsvpReservation, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts res. Overlap with an active reservation of the same resource
// is rejected by the exclusion constraint and reported as KindConflict with a
// *reservation.ConflictError in the chain.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	params, err := converter.ReservationToCreateParams(res)
	if err != nil {
		return nil, err
	}

	row, err := r.queries.CreateReservation(ctx, r.db, params)
	if err != nil {
		if pgErr, ok := infra.AsExclusionViolation(err); ok {
			conflict := &reservation.ConflictError{Info: reservation.ParseConflictInfo(pgErr.Detail)}
			return nil, infra.WrapRepoErr("reservation conflicts with an existing one", conflict, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return decodeRow(row)
}

// TransitionStatus moves the reservation from one status to another only if it
// is currently in from. A missing row or a row in any other status is
// KindNotFound.
func (r *ReservationRepository) TransitionStatus(ctx context.Context, id int64, from, to reservation.Status) (*reservation.Reservation, error) {
	if !from.CanTransitionTo(to) {
		return nil, errs.Mark(errs.Newf("illegal status transition %s -> %s", from, to), errs.ErrInvalidStatus)
	}

	fromStatus, err := converter.StatusToInfra(from)
	if err != nil {
		return nil, err
	}
	toStatus, err := converter.StatusToInfra(to)
	if err != nil {
		return nil, err
	}

	row, err := r.queries.TransitionReservationStatus(ctx, r.db, sqlc.TransitionReservationStatusParams{
		ToStatus:   toStatus,
		ID:         id,
		FromStatus: fromStatus,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no reservation in expected status", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to change reservation status", err)
	}

	return decodeRow(row)
}

func (r *ReservationRepository) UpdateNote(ctx context.Context, id int64, note string) (*reservation.Reservation, error) {
	row, err := r.queries.UpdateReservationNote(ctx, r.db, sqlc.UpdateReservationNoteParams{
		ID:   id,
		Note: note,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update reservation note", err)
	}

	return decodeRow(row)
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete reservation", err)
	}

	return decodeRow(row)
}

func decodeRow(row sqlc.RsvpReservation) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation row", err, infra.KindDecodeFailure)
	}
	return res, nil
}
