package request

import (
	"strings"
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	AmenityID uuid.UUID `json:"amenity_id" binding:"required"`
	// MemberID books on behalf of someone else; admins only.
	MemberID  *uuid.UUID `json:"member_id,omitempty"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   time.Time  `json:"end_time" binding:"required,gtfield=StartTime"`
	Note      string     `json:"note" binding:"max=500"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	in := commands.CreateBookingInput{
		AmenityID: r.AmenityID,
		Start:     r.StartTime,
		End:       r.EndTime,
		Note:      strings.TrimSpace(r.Note),
	}
	if r.MemberID != nil {
		in.MemberID = *r.MemberID
	}
	return in
}

type RecurrenceRequest struct {
	Frequency string `json:"frequency" binding:"required,oneof=daily weekly monthly"`
	// EndDate is RFC 3339 or a bare date (2006-01-02); a bare date includes that whole day.
	EndDate     *string `json:"end_date,omitempty"`
	Occurrences *int    `json:"occurrences,omitempty" binding:"omitempty,min=1,max=999"`
}

type CreateRecurringBookingRequest struct {
	CreateBookingRequest
	Recurrence RecurrenceRequest `json:"recurrence" binding:"required"`
}

func (r CreateRecurringBookingRequest) ToInput() (commands.CreateRecurringInput, error) {
	rule, err := r.Recurrence.ToDomain(r.StartTime.Location())
	if err != nil {
		return commands.CreateRecurringInput{}, err
	}
	return commands.CreateRecurringInput{Booking: r.CreateBookingRequest.ToInput(), Rule: rule}, nil
}

// ToDomain builds the rule; bare end dates are read in loc.
func (r RecurrenceRequest) ToDomain(loc *time.Location) (booking.RecurrenceRule, error) {
	rule := booking.RecurrenceRule{
		Frequency:   booking.Frequency(r.Frequency),
		Occurrences: r.Occurrences,
	}
	if r.EndDate != nil && strings.TrimSpace(*r.EndDate) != "" {
		end, err := parseEndDate(strings.TrimSpace(*r.EndDate), loc)
		if err != nil {
			return booking.RecurrenceRule{}, err
		}
		rule.EndDate = &end
	}
	return rule, nil
}

func parseEndDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	d, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "end_date %q", s), booking.ErrInvalidRecurrence)
	}
	return d.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

type RescheduleBookingRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
}

func (r RescheduleBookingRequest) ToDomain() (booking.TimeRange, error) {
	return booking.NewTimeRange(r.StartTime, r.EndTime)
}

type ConflictCheckRequest struct {
	AmenityID        uuid.UUID  `json:"amenity_id" binding:"required"`
	StartTime        time.Time  `json:"start_time" binding:"required"`
	EndTime          time.Time  `json:"end_time" binding:"required,gtfield=StartTime"`
	ExcludeBookingID *uuid.UUID `json:"exclude_booking_id,omitempty"`
	// Alternatives asks for free ranges of the same length when the candidate is taken.
	Alternatives int `json:"alternatives" binding:"min=0,max=10"`
}

func (r ConflictCheckRequest) ToDomain() (booking.TimeRange, error) {
	return booking.NewTimeRange(r.StartTime, r.EndTime)
}
