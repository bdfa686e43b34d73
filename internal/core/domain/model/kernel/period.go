package kernel

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// Period is the half-open time range [Start, End).
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod requires End to be strictly after Start. Both bounds are stored in UTC.
func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, errs.NewValueIsRequiredError("period")
	}
	if !end.After(start) {
		return Period{}, errs.NewValueIsInvalidErrorWithCause(
			"period", fmt.Errorf("end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}
	return Period{start: start.UTC(), end: end.UTC()}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time { return p.end }

// Contains reports whether t falls in [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}

func (p Period) String() string {
	return fmt.Sprintf("[%s, %s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}
