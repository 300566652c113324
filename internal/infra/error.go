package infra

import (
	"errors"

	"reservation-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps err with msg. The first kind given wins; without one the
// kind is DB_FAILURE.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound      RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure     RepositoryErrorKind = "DB_FAILURE"
	KindConflict      RepositoryErrorKind = "CONFLICT"
	KindDecodeFailure RepositoryErrorKind = "DECODE_FAILURE"
)

const (
	pgCodeExclusionViolation = "23P01"

	ReservationSchema = "rsvp"
	ReservationTable  = "reservation"
)

// AsExclusionViolation reports whether err is an exclusion constraint
// violation raised by the reservation table and returns the server error.
func AsExclusionViolation(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}
	if pgErr.Code != pgCodeExclusionViolation {
		return nil, false
	}
	if pgErr.SchemaName != ReservationSchema || pgErr.TableName != ReservationTable {
		return nil, false
	}
	return pgErr, true
}
