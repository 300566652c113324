package errs

// Error kinds surfaced by the reservation manager. Details are attached with
// Mark so callers classify with Is.
var (
	// Input validation errors, raised before any storage call
	ErrInvalidTime          = New("invalid start or end time for the reservation")
	ErrInvalidUserID        = New("invalid user id")
	ErrInvalidResourceID    = New("invalid resource id")
	ErrInvalidReservationID = New("invalid reservation id")
	ErrInvalidPageSize      = New("invalid page size")
	ErrInvalidCursor        = New("invalid cursor")
	ErrInvalidStatus        = New("invalid reservation status")

	// Reservation errors
	ErrReservationNotFound = New("no reservation found by the given condition")
	ErrReservationConflict = New("reservation conflict")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrUnknown                 = New("unknown error")
)

// IsValidation reports whether err is one of the input validation kinds.
func IsValidation(err error) bool {
	return IsAny(err,
		ErrInvalidTime,
		ErrInvalidUserID,
		ErrInvalidResourceID,
		ErrInvalidReservationID,
		ErrInvalidPageSize,
		ErrInvalidCursor,
		ErrInvalidStatus,
	)
}
