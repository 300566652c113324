package request

import (
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/usecase"
)

type CreateReservationRequest struct {
	UserID     string     `json:"user_id"`
	ResourceID string     `json:"resource_id"`
	Start      *time.Time `json:"start"`
	End        *time.Time `json:"end"`
	Note       string     `json:"note" binding:"max=1000"`
}

func (r *CreateReservationRequest) ToParams() usecase.ReserveParams {
	return usecase.ReserveParams{
		UserID:     r.UserID,
		ResourceID: r.ResourceID,
		Start:      r.Start,
		End:        r.End,
		Note:       r.Note,
	}
}

type UpdateNoteRequest struct {
	Note *string `json:"note" binding:"required,max=1000"`
}

type FilterReservationsRequest struct {
	UserID     string `form:"user_id"`
	ResourceID string `form:"resource_id"`
	Status     string `form:"status"`
	Cursor     *int64 `form:"cursor"`
	PageSize   int64  `form:"page_size"`
	Desc       bool   `form:"desc"`
}

func (r *FilterReservationsRequest) ToDomain() (reservation.Filter, error) {
	status, err := reservation.ParseStatus(r.Status)
	if err != nil {
		return reservation.Filter{}, err
	}
	return reservation.Filter{
		ResourceID: r.ResourceID,
		UserID:     r.UserID,
		Status:     status,
		Cursor:     r.Cursor,
		PageSize:   r.PageSize,
		Desc:       r.Desc,
	}, nil
}

type QueryReservationsRequest struct {
	UserID     string     `form:"user_id"`
	ResourceID string     `form:"resource_id"`
	Status     string     `form:"status"`
	Start      *time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End        *time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
	Page       int64      `form:"page"`
	PageSize   int64      `form:"page_size"`
	Desc       bool       `form:"desc"`
}

func (r *QueryReservationsRequest) ToDomain() (reservation.Query, error) {
	status, err := reservation.ParseStatus(r.Status)
	if err != nil {
		return reservation.Query{}, err
	}
	return reservation.Query{
		ResourceID: r.ResourceID,
		UserID:     r.UserID,
		Start:      r.Start,
		End:        r.End,
		Status:     status,
		Page:       r.Page,
		PageSize:   r.PageSize,
		Desc:       r.Desc,
	}, nil
}
