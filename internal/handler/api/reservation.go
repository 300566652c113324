package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	reqdto "reservation-service/internal/handler/dto/request"
	resdto "reservation-service/internal/handler/dto/response"
	"reservation-service/internal/handler/httperr"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ndjsonContentType = "application/x-ndjson"

type ReservationHandler struct {
	manager usecase.ReservationManager
}

func NewReservationHandler(manager usecase.ReservationManager) *ReservationHandler {
	return &ReservationHandler{manager: manager}
}

// @Summary Reserve
// @Description Create a pending reservation. Overlap with an active reservation of the same resource is rejected.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.manager.Reserve(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary Confirm reservation
// @Description Move a pending reservation to confirmed. Confirming twice yields 404.
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.manager.ChangeStatus(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Update note
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateNoteRequest true "New note"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [patch]
func (h *ReservationHandler) UpdateNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.manager.UpdateNote(c.Request.Context(), id, *req.Note)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Cancel reservation
// @Description Delete the reservation and return it.
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.manager.Cancel(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.manager.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Filter reservations
// @Description One keyset page ordered by id. Status defaults to pending.
// @Tags reservations
// @Produce json
// @Param user_id query string false "User ID"
// @Param resource_id query string false "Resource ID"
// @Param status query string false "pending|confirmed|blocked"
// @Param cursor query int false "Last seen id"
// @Param page_size query int false "10..100, default 10"
// @Param desc query bool false "Descending by id"
// @Success 200 {object} resdto.FilterResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) Filter(c *gin.Context) {
	var req reqdto.FilterReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filter, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	pg, items, err := h.manager.Filter(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFilterResult(pg, items))
}

// @Summary Stream reservations
// @Description Newline-delimited JSON, one reservation or error object per line.
// @Tags reservations
// @Produce application/x-ndjson
// @Param user_id query string false "User ID"
// @Param resource_id query string false "Resource ID"
// @Param status query string false "Empty matches every status"
// @Param start query string false "RFC3339 window start"
// @Param end query string false "RFC3339 window end"
// @Param page query int false "1-based page"
// @Param page_size query int false "0 streams everything"
// @Param desc query bool false "Descending by id"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/stream [get]
func (h *ReservationHandler) Stream(c *gin.Context) {
	var req reqdto.QueryReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	query, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	seq, err := h.manager.Query(c.Request.Context(), query)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Content-Type", ndjsonContentType)
	c.Status(http.StatusOK)

	enc := json.NewEncoder(c.Writer)
	for res, err := range seq {
		var line any
		if err != nil {
			_ = c.Error(err)
			line = httperr.FromError(err)
		} else {
			line = resdto.FromReservation(res)
		}
		if encErr := enc.Encode(line); encErr != nil {
			// client went away; leaving the loop stops the producer
			return
		}
		c.Writer.Flush()
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		err = errs.Mark(errs.Wrapf(err, "parse reservation id %q", c.Param("id")), errs.ErrInvalidReservationID)
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return 0, false
	}
	return id, true
}
