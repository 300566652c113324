package readstore

import (
	"context"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/infra/converter"
	sqlc "reservation-service/internal/infra/sqlc/generated"
	"reservation-service/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation_mock.go -package=readstoremock

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RsvpReservation, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation row", err, infra.KindDecodeFailure)
	}
	return res, nil
}

// FindByFilter returns up to f.FetchLimit() rows including the sentinel rows
// the pager trims.
func (r *ReservationReadStore) FindByFilter(ctx context.Context, f reservation.Filter) ([]*reservation.Reservation, error) {
	query, args := FilterSQL(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to filter reservations", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[sqlc.RsvpReservation])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read filtered reservations", err)
	}

	result := make([]*reservation.Reservation, 0, len(records))
	for _, row := range records {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservation row", err, infra.KindDecodeFailure)
		}
		result = append(result, res)
	}

	return result, nil
}

// StreamByQuery hands each matching row to yield in order until the rows are
// exhausted or yield returns false. A row that fails domain decoding is passed
// as a KindDecodeFailure error and streaming continues. The returned error
// reports a storage failure; the cursor is closed on every path.
func (r *ReservationReadStore) StreamByQuery(ctx context.Context, q reservation.Query, yield func(*reservation.Reservation, error) bool) error {
	query, args := QuerySQL(q)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	for rows.Next() {
		row, err := pgx.RowToStructByName[sqlc.RsvpReservation](rows)
		if err != nil {
			// scan failures close the rows, nothing more can be read
			return infra.WrapRepoErr("failed to scan reservation row", err, infra.KindDecodeFailure)
		}

		res, err := converter.ReservationFromRow(row)
		if err != nil {
			err = infra.WrapRepoErr("failed to decode reservation row", err, infra.KindDecodeFailure)
		}
		if !yield(res, err) {
			return nil
		}
	}

	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to stream reservations", err)
	}
	return nil
}
