package reservation

import (
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/pkg/pager"
)

const (
	DefaultPageSize int64 = 10
	MinPageSize     int64 = 10
	MaxPageSize     int64 = 100
)

// Filter requests one keyset page of reservations ordered by id.
type Filter struct {
	ResourceID string
	UserID     string
	Status     Status
	Cursor     *int64
	PageSize   int64
	Desc       bool
}

// Normalize fills unset fields: Unknown status becomes Pending and a zero page
// size becomes DefaultPageSize. Out-of-range sizes are left for Validate.
func (f *Filter) Normalize() {
	if f.Status == StatusUnknown {
		f.Status = StatusPending
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
}

func (f Filter) Validate() error {
	if f.PageSize < MinPageSize || f.PageSize > MaxPageSize {
		return errs.Mark(errs.Newf("invalid page size: %d", f.PageSize), errs.ErrInvalidPageSize)
	}
	if f.Cursor != nil && *f.Cursor < 0 {
		return errs.Mark(errs.Newf("invalid cursor: %d", *f.Cursor), errs.ErrInvalidCursor)
	}
	if !f.Status.IsValid() {
		return errs.Mark(errs.Newf("invalid status: %d", f.Status), errs.ErrInvalidStatus)
	}
	return nil
}

// NormalizeAndValidate is the order every caller must use.
func (f *Filter) NormalizeAndValidate() error {
	f.Normalize()
	return f.Validate()
}

func (f Filter) PageInfo() pager.PageInfo {
	return pager.PageInfo{
		Cursor:   f.Cursor,
		PageSize: f.PageSize,
		Desc:     f.Desc,
	}
}

// CursorOrDefault resolves an absent cursor to the start of the range in the
// requested direction.
func (f Filter) CursorOrDefault() int64 {
	if f.Cursor != nil {
		return *f.Cursor
	}
	if f.Desc {
		return maxID
	}
	return 0
}

func (f Filter) FetchLimit() int64 {
	return f.PageInfo().FetchLimit()
}

// Paginate trims the rows fetched for f and returns the page with its pager.
func (f Filter) Paginate(rows []*Reservation) ([]*Reservation, pager.Pager) {
	return pager.Paginate(f.PageInfo(), rows)
}

func (f Filter) NextPage(pg pager.Pager) (Filter, bool) {
	info, ok := f.PageInfo().NextPage(pg)
	if !ok {
		return Filter{}, false
	}
	return f.withPage(info), true
}

func (f Filter) PrevPage(pg pager.Pager) (Filter, bool) {
	info, ok := f.PageInfo().PrevPage(pg)
	if !ok {
		return Filter{}, false
	}
	return f.withPage(info), true
}

func (f Filter) withPage(info pager.PageInfo) Filter {
	next := f
	next.Cursor = info.Cursor
	next.PageSize = info.PageSize
	next.Desc = info.Desc
	return next
}

const maxID int64 = 1<<63 - 1
