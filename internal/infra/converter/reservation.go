package converter

import (
	"reservation-service/internal/domain/reservation"
	sqlc "reservation-service/internal/infra/sqlc/generated"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/pkg/pgconv"
)

// Unknown has a database enum label but is never written.
var statusToInfra = map[reservation.Status]sqlc.RsvpReservationStatus{
	reservation.StatusPending:   sqlc.RsvpReservationStatusPending,
	reservation.StatusConfirmed: sqlc.RsvpReservationStatusConfirmed,
	reservation.StatusBlocked:   sqlc.RsvpReservationStatusBlocked,
}

func StatusToInfra(s reservation.Status) (sqlc.RsvpReservationStatus, error) {
	v, ok := statusToInfra[s]
	if !ok {
		return "", errs.Mark(errs.Newf("unmapped status: %d", s), errs.ErrInvalidStatus)
	}
	return v, nil
}

func StatusFromInfra(s sqlc.RsvpReservationStatus) (reservation.Status, error) {
	if !s.Valid() {
		return reservation.StatusUnknown, errs.Newf("unknown stored status %q", string(s))
	}
	status, err := reservation.ParseStatus(string(s))
	if err != nil {
		return reservation.StatusUnknown, err
	}
	if !status.IsPersistable() {
		return reservation.StatusUnknown, errs.Newf("stored status %q is not persistable", string(s))
	}
	return status, nil
}

func ReservationToCreateParams(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	if res.IsPersisted() {
		return sqlc.CreateReservationParams{}, errs.Mark(errs.Newf("reservation %d is already stored", res.ID()), errs.ErrInvalidReservationID)
	}
	status, err := StatusToInfra(res.Status())
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}

	window := res.Window()
	return sqlc.CreateReservationParams{
		UserID:     res.UserID(),
		ResourceID: res.ResourceID(),
		Timespan:   pgconv.TstzrangeFromTimes(window.Start(), window.End()),
		Note:       res.Note(),
		Status:     status,
	}, nil
}

// ReservationFromRow decodes a stored row. Rows with an open-ended timespan
// or an unknown status are reported as errors.
func ReservationFromRow(row sqlc.RsvpReservation) (*reservation.Reservation, error) {
	start, end, err := pgconv.TimesFromTstzrange(row.Timespan)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %d: decode timespan", row.ID)
	}

	window, err := reservation.NewWindow(&start, &end)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %d: decode timespan", row.ID)
	}

	status, err := StatusFromInfra(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %d: decode status", row.ID)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.ResourceID,
		window,
		row.Note,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
