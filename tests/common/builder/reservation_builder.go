//go:build unit || integration || e2e

package builder

import (
	"time"

	"reservation-service/internal/domain/reservation"
	reqdto "reservation-service/internal/handler/dto/request"
	sqlc "reservation-service/internal/infra/sqlc/generated"
	"reservation-service/internal/pkg/pgconv"
	"reservation-service/internal/usecase"
)

type ReservationBuilder struct {
	ID         int64
	UserID     string
	ResourceID string
	Start      time.Time
	End        time.Time
	Note       string
	Status     reservation.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2026, 12, 25, 12, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:         1,
		UserID:     "luckychacha-id",
		ResourceID: "ocean-view-room-713",
		Start:      start,
		End:        start.Add(72 * time.Hour),
		Note:       "I'll arrive at 3pm. Please help to upgrade to execuitive room if possible.",
		Status:     reservation.StatusPending,
		CreatedAt:  start.Add(-24 * time.Hour),
		UpdatedAt:  start.Add(-24 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithResource(resourceID string) *ReservationBuilder {
	b.ResourceID = resourceID
	return b
}

func (b *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

// Build methods

// BuildNew returns an unsaved pending reservation.
func (b *ReservationBuilder) BuildNew() (*reservation.Reservation, error) {
	return reservation.NewPendingReservation(b.UserID, b.ResourceID, &b.Start, &b.End, b.Note)
}

// BuildStored returns a reservation as decoded from storage.
func (b *ReservationBuilder) BuildStored() *reservation.Reservation {
	window, err := reservation.NewWindow(&b.Start, &b.End)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(b.ID, b.UserID, b.ResourceID, window, b.Note, b.Status, b.CreatedAt, b.UpdatedAt)
}

func (b *ReservationBuilder) BuildInfra() sqlc.RsvpReservation {
	return sqlc.RsvpReservation{
		ID:         b.ID,
		UserID:     b.UserID,
		ResourceID: b.ResourceID,
		Timespan:   pgconv.TstzrangeFromTimes(b.Start, b.End),
		Note:       b.Note,
		Status:     sqlc.RsvpReservationStatus(b.Status.String()),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *ReservationBuilder) BuildParams() usecase.ReserveParams {
	start, end := b.Start, b.End
	return usecase.ReserveParams{
		UserID:     b.UserID,
		ResourceID: b.ResourceID,
		Start:      &start,
		End:        &end,
		Note:       b.Note,
	}
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.CreateReservationRequest {
	start, end := b.Start, b.End
	return reqdto.CreateReservationRequest{
		UserID:     b.UserID,
		ResourceID: b.ResourceID,
		Start:      &start,
		End:        &end,
		Note:       b.Note,
	}
}

// Sequence builds stored reservations with ids from..to inclusive.
func Sequence(from, to int64) []*reservation.Reservation {
	items := make([]*reservation.Reservation, 0, to-from+1)
	for id := from; id <= to; id++ {
		items = append(items, NewReservationBuilder().WithID(id).BuildStored())
	}
	return items
}
