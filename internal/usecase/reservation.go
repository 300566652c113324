package usecase

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/pkg/metrics"
	"reservation-service/internal/pkg/pager"
)

//go:generate mockgen -source=reservation.go -destination=../../tests/mock/usecase/reservation_mock.go -package=usecasemock

const defaultStreamBuffer = 128

const (
	opReserve      = "reserve"
	opChangeStatus = "change_status"
	opUpdateNote   = "update_note"
	opCancel       = "cancel"
	opGet          = "get"
	opQuery        = "query"
	opFilter       = "filter"
)

type ReserveParams struct {
	UserID     string
	ResourceID string
	Start      *time.Time
	End        *time.Time
	Note       string
}

type ReservationManager interface {
	Reserve(ctx context.Context, params ReserveParams) (*reservation.Reservation, error)
	ChangeStatus(ctx context.Context, id int64) (*reservation.Reservation, error)
	UpdateNote(ctx context.Context, id int64, note string) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id int64) (*reservation.Reservation, error)
	Get(ctx context.Context, id int64) (*reservation.Reservation, error)
	Query(ctx context.Context, q reservation.Query) (iter.Seq2[*reservation.Reservation, error], error)
	Filter(ctx context.Context, f reservation.Filter) (pager.Pager, []*reservation.Reservation, error)
}

type reservationManagerImpl struct {
	repo         ReservationRepository
	reads        ReservationReadStore
	logger       *slog.Logger
	metrics      *metrics.Metrics
	streamBuffer int
}

func NewReservationManager(
	repo ReservationRepository,
	reads ReservationReadStore,
	logger *slog.Logger,
	m *metrics.Metrics,
	cfg config.ReservationConfig,
) ReservationManager {
	buffer := cfg.StreamBuffer
	if buffer < 1 {
		buffer = defaultStreamBuffer
	}
	return &reservationManagerImpl{
		repo:         repo,
		reads:        reads,
		logger:       logger,
		metrics:      m,
		streamBuffer: buffer,
	}
}

func (m *reservationManagerImpl) Reserve(ctx context.Context, params ReserveParams) (*reservation.Reservation, error) {
	started := time.Now()

	res, err := reservation.NewPendingReservation(params.UserID, params.ResourceID, params.Start, params.End, params.Note)
	if err != nil {
		m.observe(opReserve, err, started)
		return nil, err
	}

	stored, err := m.repo.Create(ctx, res)
	if err != nil {
		err = m.storageFailure(ctx, opReserve, err)
		m.observe(opReserve, err, started)
		return nil, err
	}

	m.logger.DebugContext(ctx, "Reservation created",
		slog.Int64("id", stored.ID()),
		slog.String("resource_id", stored.ResourceID()),
		slog.String("window", stored.Window().String()),
		slog.Duration("length", stored.Window().Duration()),
	)
	m.observe(opReserve, nil, started)
	return stored, nil
}

// ChangeStatus confirms a pending reservation. Anything not pending, including
// an already confirmed reservation, is reported as not found.
func (m *reservationManagerImpl) ChangeStatus(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return m.byID(ctx, opChangeStatus, id, func(ctx context.Context) (*reservation.Reservation, error) {
		return m.repo.TransitionStatus(ctx, id, reservation.StatusPending, reservation.StatusConfirmed)
	})
}

func (m *reservationManagerImpl) UpdateNote(ctx context.Context, id int64, note string) (*reservation.Reservation, error) {
	return m.byID(ctx, opUpdateNote, id, func(ctx context.Context) (*reservation.Reservation, error) {
		return m.repo.UpdateNote(ctx, id, note)
	})
}

func (m *reservationManagerImpl) Cancel(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return m.byID(ctx, opCancel, id, func(ctx context.Context) (*reservation.Reservation, error) {
		return m.repo.Delete(ctx, id)
	})
}

func (m *reservationManagerImpl) Get(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return m.byID(ctx, opGet, id, func(ctx context.Context) (*reservation.Reservation, error) {
		return m.reads.FindByID(ctx, id)
	})
}

func (m *reservationManagerImpl) Filter(ctx context.Context, f reservation.Filter) (pager.Pager, []*reservation.Reservation, error) {
	started := time.Now()

	if err := f.NormalizeAndValidate(); err != nil {
		m.observe(opFilter, err, started)
		return pager.Pager{}, nil, err
	}

	rows, err := m.reads.FindByFilter(ctx, f)
	if err != nil {
		err = m.storageFailure(ctx, opFilter, err)
		m.observe(opFilter, err, started)
		return pager.Pager{}, nil, err
	}

	page, pg := f.Paginate(rows)
	m.observe(opFilter, nil, started)
	return pg, page, nil
}

func (m *reservationManagerImpl) byID(
	ctx context.Context,
	op string,
	id int64,
	call func(ctx context.Context) (*reservation.Reservation, error),
) (*reservation.Reservation, error) {
	started := time.Now()

	if err := reservation.ValidateID(id); err != nil {
		m.observe(op, err, started)
		return nil, err
	}

	res, err := call(ctx)
	if err != nil {
		err = m.storageFailure(ctx, op, err)
		m.observe(op, err, started)
		return nil, err
	}

	m.observe(op, nil, started)
	return res, nil
}
