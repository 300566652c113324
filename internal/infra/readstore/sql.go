package readstore

import (
	"fmt"
	"strconv"
	"strings"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/pgconv"
)

const reservationColumns = "id, user_id, resource_id, timespan, note, status, created_at, updated_at"

// sqlBuilder accumulates AND-joined predicates with positional arguments.
type sqlBuilder struct {
	conds []string
	args  []any
}

func (b *sqlBuilder) where(format string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(format, "$"+strconv.Itoa(len(b.args))))
}

func (b *sqlBuilder) build(order string, tail string) string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(reservationColumns)
	sb.WriteString(" FROM rsvp.reservation")
	if len(b.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conds, " AND "))
	}
	sb.WriteString(" ORDER BY id ")
	sb.WriteString(order)
	if tail != "" {
		sb.WriteString(" ")
		sb.WriteString(tail)
	}
	return sb.String()
}

func direction(desc bool) string {
	if desc {
		return "DESC"
	}
	return "ASC"
}

// FilterSQL projects a normalized filter to a keyset page query.
func FilterSQL(f reservation.Filter) (string, []any) {
	var b sqlBuilder
	b.where("status = %s::rsvp.reservation_status", f.Status.String())
	if f.Desc {
		b.where("id <= %s", f.CursorOrDefault())
	} else {
		b.where("id >= %s", f.CursorOrDefault())
	}
	if f.UserID != "" {
		b.where("user_id = %s", f.UserID)
	}
	if f.ResourceID != "" {
		b.where("resource_id = %s", f.ResourceID)
	}

	return b.build(direction(f.Desc), "LIMIT "+strconv.FormatInt(f.FetchLimit(), 10)), b.args
}

// QuerySQL projects a validated query to a streaming query. Empty identity
// filters, an Unknown status and an absent window add no predicate.
func QuerySQL(q reservation.Query) (string, []any) {
	var b sqlBuilder
	if q.UserID != "" {
		b.where("user_id = %s", q.UserID)
	}
	if q.ResourceID != "" {
		b.where("resource_id = %s", q.ResourceID)
	}
	if q.Status != reservation.StatusUnknown {
		b.where("status = %s::rsvp.reservation_status", q.Status.String())
	}
	if bounds, err := q.Bounds(); err == nil && !bounds.IsUnbounded() {
		b.where("timespan && %s", pgconv.TstzrangeFromPtrs(bounds.Start(), bounds.End()))
	}

	var tail string
	if q.PageSize > 0 {
		tail = "LIMIT " + strconv.FormatInt(q.PageSize, 10)
		if offset := q.Offset(); offset > 0 {
			tail += " OFFSET " + strconv.FormatInt(offset, 10)
		}
	}

	return b.build(direction(q.Desc), tail), b.args
}
