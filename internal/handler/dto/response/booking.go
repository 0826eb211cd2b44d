package response

import (
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/usecase/commands"
	"hub-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID           `json:"id"`
	AmenityID    uuid.UUID           `json:"amenity_id"`
	MemberID     uuid.UUID           `json:"member_id"`
	StartTime    time.Time           `json:"start_time"`
	EndTime      time.Time           `json:"end_time"`
	Status       string              `json:"status"`
	Note         string              `json:"note,omitempty"`
	Recurrence   *RecurrenceResponse `json:"recurrence,omitempty"`
	CheckInTime  *time.Time          `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time          `json:"check_out_time,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type RecurrenceResponse struct {
	Frequency     string    `json:"frequency"`
	OriginalStart time.Time `json:"original_start"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return mapView[BookingResponse](v)
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return FromBookingView(queries.NewBookingView(b))
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromBookingView(v))
	}
	return out
}

type SkippedOccurrenceResponse struct {
	Date   time.Time `json:"date"`
	Reason string    `json:"reason"`
}

type RecurringBookingResponse struct {
	Message      string                      `json:"message"`
	TotalCreated int                         `json:"total_created"`
	Bookings     []*BookingResponse          `json:"bookings"`
	Skipped      []SkippedOccurrenceResponse `json:"skipped"`
	Interrupted  bool                        `json:"interrupted,omitempty"`
}

func FromRecurrenceResult(r *commands.RecurrenceResult) *RecurringBookingResponse {
	resp := &RecurringBookingResponse{
		Message:      r.Summary(),
		TotalCreated: r.TotalCreated,
		Bookings:     make([]*BookingResponse, 0, len(r.Created)),
		Skipped:      make([]SkippedOccurrenceResponse, 0, len(r.Skipped)),
		Interrupted:  r.Interrupted,
	}
	for _, b := range r.Created {
		resp.Bookings = append(resp.Bookings, FromBooking(b))
	}
	for _, s := range r.Skipped {
		resp.Skipped = append(resp.Skipped, SkippedOccurrenceResponse{Date: s.Date, Reason: string(s.Reason)})
	}
	return resp
}

type ConflictCheckResponse struct {
	queries.ConflictResult
	Alternatives []queries.RangeView `json:"alternatives,omitempty"`
}
