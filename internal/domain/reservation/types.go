package reservation

import (
	"strings"

	"reservation-service/internal/pkg/errs"
)

type Status int32

const (
	StatusUnknown Status = iota
	StatusPending
	StatusConfirmed
	StatusBlocked
)

var statusNames = map[Status]string{
	StatusUnknown:   "unknown",
	StatusPending:   "pending",
	StatusConfirmed: "confirmed",
	StatusBlocked:   "blocked",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "invalid"
}

// IsValid reports whether s is a member of the enumeration. Unknown is a
// member but never a valid persisted value, see IsPersistable.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) IsPersistable() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusBlocked:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the one-way lifecycle: only Pending may become
// Confirmed. Removal is not a status change.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next == StatusConfirmed
}

func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return StatusUnknown, nil
	}
	for status, name := range statusNames {
		if name == normalized {
			return status, nil
		}
	}
	return StatusUnknown, errs.Mark(errs.Newf("invalid status: %q", raw), errs.ErrInvalidStatus)
}
