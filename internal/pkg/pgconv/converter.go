package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrUnboundedRange = errors.New("tstzrange has an unbounded or infinite side")

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// TstzrangeFromTimes builds the half-open range [start,end).
func TstzrangeFromTimes(start, end time.Time) pgtype.Range[pgtype.Timestamptz] {
	return pgtype.Range[pgtype.Timestamptz]{
		Lower:     TimeToPgtype(start),
		Upper:     TimeToPgtype(end),
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}
}

// TstzrangeFromPtrs builds a range whose nil sides are unbounded.
func TstzrangeFromPtrs(start, end *time.Time) pgtype.Range[pgtype.Timestamptz] {
	r := pgtype.Range[pgtype.Timestamptz]{
		Lower:     TimePtrToPgtype(start),
		Upper:     TimePtrToPgtype(end),
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}
	if start == nil {
		r.LowerType = pgtype.Unbounded
	}
	if end == nil {
		r.UpperType = pgtype.Unbounded
	}
	return r
}

// TimesFromTstzrange returns both bounds of a finite range.
func TimesFromTstzrange(r pgtype.Range[pgtype.Timestamptz]) (time.Time, time.Time, error) {
	if !r.Valid || r.LowerType == pgtype.Unbounded || r.UpperType == pgtype.Unbounded {
		return time.Time{}, time.Time{}, ErrUnboundedRange
	}
	if !r.Lower.Valid || !r.Upper.Valid || r.Lower.InfinityModifier != pgtype.Finite || r.Upper.InfinityModifier != pgtype.Finite {
		return time.Time{}, time.Time{}, ErrUnboundedRange
	}
	return r.Lower.Time, r.Upper.Time, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
