//go:build unit || e2e

package builder

import (
	"time"

	"hub-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	AmenityID  uuid.UUID
	MemberID   uuid.UUID
	Start      time.Time
	End        time.Time
	Status     booking.Status
	Note       string
	Recurrence *booking.RecurrencePattern
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var defaultBookingStart = time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC)

func NewBookingBuilder() *BookingBuilder {
	now := defaultBookingStart.Add(-48 * time.Hour)
	return &BookingBuilder{
		ID:        uuid.New(),
		AmenityID: uuid.New(),
		MemberID:  uuid.New(),
		Start:     defaultBookingStart,
		End:       defaultBookingStart.Add(time.Hour),
		Status:    booking.StatusApproved,
		Note:      "Team sync",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain goes through the constructor, so the result is always pending.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	tr, err := booking.NewTimeRange(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.AmenityID, b.MemberID, tr, booking.NewNote(b.Note), b.CreatedAt)
}

// BuildStored keeps the builder's id and status, as if read back from storage.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.AmenityID, b.MemberID,
		booking.MustTimeRange(b.Start, b.End),
		b.Status,
		booking.NewNote(b.Note),
		b.Recurrence,
		nil, nil,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithAmenityID(id uuid.UUID) *BookingBuilder {
	b.AmenityID = id
	return b
}

func (b *BookingBuilder) WithMemberID(id uuid.UUID) *BookingBuilder {
	b.MemberID = id
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithRange(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

// At places the booking on the day of the default start, between the given hours and minutes.
func (b *BookingBuilder) At(startHour, startMin, endHour, endMin int) *BookingBuilder {
	y, m, d := b.Start.Date()
	loc := b.Start.Location()
	b.Start = time.Date(y, m, d, startHour, startMin, 0, 0, loc)
	b.End = time.Date(y, m, d, endHour, endMin, 0, 0, loc)
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = note
	return b
}

func (b *BookingBuilder) AsPending() *BookingBuilder {
	b.Status = booking.StatusPending
	return b
}

func (b *BookingBuilder) AsCheckedIn() *BookingBuilder {
	b.Status = booking.StatusCheckedIn
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}
