package reservation

import (
	"time"

	"reservation-service/internal/pkg/errs"
)

// Query describes a bulk, possibly unbounded search consumed as a stream.
// Status Unknown matches every status; PageSize 0 disables paging.
type Query struct {
	ResourceID string
	UserID     string
	Start      *time.Time
	End        *time.Time
	Status     Status
	Page       int64
	PageSize   int64
	Desc       bool
}

func (q Query) Validate() error {
	if _, err := q.Bounds(); err != nil {
		return err
	}
	if !q.Status.IsValid() {
		return errs.Mark(errs.Newf("invalid status: %d", q.Status), errs.ErrInvalidStatus)
	}
	if q.PageSize < 0 || q.PageSize > MaxPageSize {
		return errs.Mark(errs.Newf("invalid page size: %d", q.PageSize), errs.ErrInvalidPageSize)
	}
	if q.Page < 0 {
		return errs.Mark(errs.Newf("invalid page: %d", q.Page), errs.ErrInvalidPageSize)
	}
	return nil
}

func (q Query) Bounds() (Bounds, error) {
	return NewBounds(q.Start, q.End)
}

// Offset is the number of rows skipped for the requested page (pages are
// 1-based, 0 is treated as 1).
func (q Query) Offset() int64 {
	if q.PageSize <= 0 || q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}
