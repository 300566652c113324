package reservation

import (
	"fmt"
	"time"

	"reservation-service/internal/pkg/errs"
)

// Window is a half-open UTC interval [start, end).
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end *time.Time) (Window, error) {
	if start == nil || end == nil {
		return Window{}, errs.Mark(errs.New("start and end are both required"), errs.ErrInvalidTime)
	}
	if !start.Before(*end) {
		return Window{}, errs.Mark(
			errs.Newf("start %s must be before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
			errs.ErrInvalidTime,
		)
	}

	return Window{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps follows half-open semantics: windows that only touch do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// Bounds describes an optionally open interval used by queries. A nil side is
// unbounded.
type Bounds struct {
	start *time.Time
	end   *time.Time
}

func NewBounds(start, end *time.Time) (Bounds, error) {
	if start != nil && end != nil && !start.Before(*end) {
		return Bounds{}, errs.Mark(
			errs.Newf("start %s must be before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
			errs.ErrInvalidTime,
		)
	}

	b := Bounds{}
	if start != nil {
		s := start.UTC()
		b.start = &s
	}
	if end != nil {
		e := end.UTC()
		b.end = &e
	}
	return b, nil
}

func (b Bounds) Start() *time.Time {
	return b.start
}

func (b Bounds) End() *time.Time {
	return b.end
}

func (b Bounds) IsUnbounded() bool {
	return b.start == nil && b.end == nil
}
