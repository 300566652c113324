package response

import (
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/pager"
)

type ReservationResponse struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	ResourceID string    `json:"resource_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Note       string    `json:"note"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	w := r.Window()
	return &ReservationResponse{
		ID:         r.ID(),
		UserID:     r.UserID(),
		ResourceID: r.ResourceID(),
		Start:      w.Start(),
		End:        w.End(),
		Note:       r.Note(),
		Status:     r.Status().String(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func FromReservations(items []*reservation.Reservation) []*ReservationResponse {
	res := make([]*ReservationResponse, len(items))
	for i, it := range items {
		res[i] = FromReservation(it)
	}
	return res
}

type PagerResponse struct {
	Prev  *int64 `json:"prev"`
	Next  *int64 `json:"next"`
	Total *int64 `json:"total,omitempty"`
}

type FilterResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Pager        PagerResponse          `json:"pager"`
}

func FromFilterResult(pg pager.Pager, items []*reservation.Reservation) *FilterResponse {
	return &FilterResponse{
		Reservations: FromReservations(items),
		Pager: PagerResponse{
			Prev:  pg.Prev,
			Next:  pg.Next,
			Total: pg.Total,
		},
	}
}
