package httperr

import (
	"net/http"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/domain/event"
	"hub-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type rule struct {
	target error
	status int
	msg    string
}

// Checked in order: specific domain errors come before the generic marks they carry.
var rules = []rule{
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrAmenityNotFound, http.StatusNotFound, "Amenity not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrEventNotFound, http.StatusNotFound, "Event not found"},
	{booking.ErrBookingConflict, http.StatusConflict, "Time slot is already booked"},
	{event.ErrEventFull, http.StatusConflict, "Event is full"},
	{event.ErrAlreadyAttending, http.StatusConflict, "Already attending"},
	{event.ErrAlreadyReviewed, http.StatusConflict, "Event has already been reviewed"},
	{booking.ErrInvalidTransition, http.StatusConflict, "Booking status does not allow this action"},
	{errs.ErrAmenityUnavailable, http.StatusConflict, "Amenity is not available for booking"},
	{booking.ErrInvalidRecurrence, http.StatusUnprocessableEntity, "Invalid recurrence rule"},
	{errs.ErrInvalidTimeSlot, http.StatusUnprocessableEntity, "Invalid time slot"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Domain validation failed"},
}

// Status resolves the response status and public message for a use-case error.
func Status(err error) (int, string) {
	for _, r := range rules {
		if errs.Is(err, r.target) {
			return r.status, r.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort maps err through Status and attaches conflicting ranges when the error carries them.
func Abort(c *gin.Context, err error) {
	status, msg := Status(err)
	var detail *Detail
	var conflict *booking.ConflictError
	if errs.As(err, &conflict) && len(conflict.Conflicts) > 0 {
		detail = &Detail{Conflicts: conflictRanges(conflict.Conflicts)}
	}
	AbortWithError(c, status, err, msg, detail)
}

func conflictRanges(bookings []*booking.Booking) []ConflictRange {
	out := make([]ConflictRange, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ConflictRange{
			BookingID: b.ID().String(),
			StartTime: b.Start(),
			EndTime:   b.End(),
		})
	}
	return out
}
