package usecase

import (
	"context"

	"reservation-service/internal/domain/reservation"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports_mock.go -package=usecasemock

// ReservationRepository is the write side of storage. Create must be atomic
// with respect to the overlap check.
type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	TransitionStatus(ctx context.Context, id int64, from, to reservation.Status) (*reservation.Reservation, error)
	UpdateNote(ctx context.Context, id int64, note string) (*reservation.Reservation, error)
	Delete(ctx context.Context, id int64) (*reservation.Reservation, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	FindByFilter(ctx context.Context, f reservation.Filter) ([]*reservation.Reservation, error)
	StreamByQuery(ctx context.Context, q reservation.Query, yield func(*reservation.Reservation, error) bool) error
}
