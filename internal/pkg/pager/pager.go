// Package pager implements keyset pagination over id-ordered batches.
//
// A cursor is the id of the last row seen, not an offset. A page request with
// a cursor fetches one extra leading row (the cursor row itself) and every
// request fetches one extra trailing row to detect whether a next page exists.
package pager

type Identifiable interface {
	ID() int64
}

type PageInfo struct {
	Cursor   *int64
	PageSize int64
	Desc     bool
}

type Pager struct {
	Prev  *int64
	Next  *int64
	Total *int64
}

// FetchLimit is the number of rows a page request must read.
func (p PageInfo) FetchLimit() int64 {
	if p.Cursor != nil {
		return p.PageSize + 2
	}
	return p.PageSize + 1
}

// Paginate trims the sentinel rows from items and derives the adjacent
// cursors. items must be ordered in the page direction.
func Paginate[T Identifiable](info PageInfo, items []T) ([]T, Pager) {
	var pg Pager

	if info.Cursor != nil && len(items) > 0 {
		items = items[1:]
		if len(items) > 0 {
			pg.Prev = idPtr(items[0].ID())
		}
	}

	if int64(len(items)) > info.PageSize {
		items = items[:len(items)-1]
		if len(items) > 0 {
			pg.Next = idPtr(items[len(items)-1].ID())
		}
	}

	return items, pg
}

func (p PageInfo) NextPage(pg Pager) (PageInfo, bool) {
	if pg.Next == nil {
		return PageInfo{}, false
	}
	return p.withCursor(*pg.Next), true
}

func (p PageInfo) PrevPage(pg Pager) (PageInfo, bool) {
	if pg.Prev == nil {
		return PageInfo{}, false
	}
	return p.withCursor(*pg.Prev), true
}

func (p PageInfo) withCursor(cursor int64) PageInfo {
	return PageInfo{
		Cursor:   idPtr(cursor),
		PageSize: p.PageSize,
		Desc:     p.Desc,
	}
}

func idPtr(id int64) *int64 {
	return &id
}
