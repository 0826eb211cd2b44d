package booking

import (
	"fmt"
	"strings"

	"hub-booking/internal/pkg/errs"
)

var (
	ErrInvalidTimeRange   = errs.New("start time must be before end time")
	ErrInvalidStatus      = errs.New("invalid booking status")
	ErrInvalidTransition  = errs.New("booking status transition not allowed")
	ErrMissingAmenity     = errs.New("booking requires an amenity")
	ErrMissingMember      = errs.New("booking requires a member")
	ErrNotEditable        = errs.New("booking can no longer be rescheduled")
	ErrBookingConflict    = errs.New("booking conflicts with an existing booking")
	ErrInvalidRecurrence  = errs.New("invalid recurrence rule")
	ErrUnknownFrequency   = errs.New("unknown recurrence frequency")
	ErrRecurrenceEndDate  = errs.New("recurrence end date is before the first occurrence")
	ErrRecurrenceCount    = errs.New("recurrence occurrences must be positive")
	ErrRecurrenceTooLarge = errs.New("recurrence occurrences exceed the safety cap")
)

// ConflictError is returned when a write is rejected because the interval is taken.
// It carries the bookings that overlap so callers can show which ranges are busy.
type ConflictError struct {
	Conflicts []*Booking
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return ErrBookingConflict.Error()
	}
	ranges := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		ranges = append(ranges, c.TimeRange().String())
	}
	return fmt.Sprintf("%s: %s", ErrBookingConflict.Error(), strings.Join(ranges, ", "))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrBookingConflict
}

func NewConflictError(conflicts []*Booking) *ConflictError {
	return &ConflictError{Conflicts: conflicts}
}
