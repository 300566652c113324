package reservation

import (
	"strings"
	"time"

	"reservation-service/internal/pkg/errs"
)

type Reservation struct {
	id         int64
	userID     string
	resourceID string
	window     Window
	note       string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewPendingReservation validates user id, resource id and window, in that
// order, and returns an unsaved reservation in Pending status.
func NewPendingReservation(userID, resourceID string, start, end *time.Time, note string) (*Reservation, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.Mark(errs.Newf("invalid user id: %q", userID), errs.ErrInvalidUserID)
	}
	if strings.TrimSpace(resourceID) == "" {
		return nil, errs.Mark(errs.Newf("invalid resource id: %q", resourceID), errs.ErrInvalidResourceID)
	}

	window, err := NewWindow(start, end)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		userID:     userID,
		resourceID: resourceID,
		window:     window,
		note:       note,
		status:     StatusPending,
	}, nil
}

func ReconstructReservation(
	id int64,
	userID, resourceID string,
	window Window,
	note string,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		userID:     userID,
		resourceID: resourceID,
		window:     window,
		note:       note,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) IsPersisted() bool {
	return r.id > 0
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) UserID() string       { return r.userID }
func (r *Reservation) ResourceID() string   { return r.resourceID }
func (r *Reservation) Window() Window       { return r.window }
func (r *Reservation) Note() string         { return r.note }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func ValidateID(id int64) error {
	if id <= 0 {
		return errs.Mark(errs.Newf("invalid reservation id: %d", id), errs.ErrInvalidReservationID)
	}
	return nil
}
