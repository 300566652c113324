package httperr

import (
	"errors"
	"net/http"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

func InternalError() Response {
	return NewResponse(http.StatusInternalServerError, "Internal server error", nil)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort classifies err against the reservation error taxonomy and aborts
// with the matching status.
func Abort(c *gin.Context, err error) {
	resp := FromError(err)
	AbortWithError(c, resp.Status, err, resp.Error.Message, resp.Detail)
}

type validationKind struct {
	ref error
	msg string
}

var validationKinds = []validationKind{
	{errs.ErrInvalidTime, "Invalid time window"},
	{errs.ErrInvalidUserID, "Invalid user id"},
	{errs.ErrInvalidResourceID, "Invalid resource id"},
	{errs.ErrInvalidReservationID, "Invalid reservation id"},
	{errs.ErrInvalidPageSize, "Invalid page size"},
	{errs.ErrInvalidCursor, "Invalid cursor"},
	{errs.ErrInvalidStatus, "Invalid status"},
}

func FromError(err error) Response {
	for _, k := range validationKinds {
		if errs.Is(err, k.ref) {
			return NewResponse(http.StatusBadRequest, k.msg, nil)
		}
	}

	switch {
	case errs.Is(err, errs.ErrReservationNotFound):
		return NewResponse(http.StatusNotFound, "Reservation not found", nil)
	case errs.Is(err, errs.ErrReservationConflict):
		var conflict *reservation.ConflictError
		if errors.As(err, &conflict) {
			return NewResponse(http.StatusConflict, "Reservation conflict", NewConflictDetail(conflict.Info))
		}
		return NewResponse(http.StatusConflict, "Reservation conflict", nil)
	case errs.Is(err, errs.ErrUnknown):
		return NewResponse(http.StatusInternalServerError, "Unknown error", nil)
	default:
		return InternalError()
	}
}

type ConflictWindow struct {
	ResourceID string `json:"resource_id"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// ConflictDetail carries either both parsed windows or the raw diagnostic.
type ConflictDetail struct {
	New *ConflictWindow `json:"new,omitempty"`
	Old *ConflictWindow `json:"old,omitempty"`
	Raw string          `json:"raw,omitempty"`
}

func NewConflictDetail(info reservation.ConflictInfo) ConflictDetail {
	if !info.IsParsed() {
		return ConflictDetail{Raw: info.Raw}
	}
	return ConflictDetail{
		New: toConflictWindow(info.Conflict.New),
		Old: toConflictWindow(info.Conflict.Old),
	}
}

func toConflictWindow(w reservation.ConflictWindow) *ConflictWindow {
	return &ConflictWindow{
		ResourceID: w.ResourceID,
		Start:      w.Start.Format(time.RFC3339),
		End:        w.End.Format(time.RFC3339),
	}
}
