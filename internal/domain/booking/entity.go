package booking

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// RecurrencePattern tags an occurrence with the series it was generated from.
type RecurrencePattern struct {
	Frequency     Frequency
	OriginalStart time.Time
}

type Booking struct {
	id           uuid.UUID
	amenityID    uuid.UUID
	memberID     uuid.UUID
	timeRange    TimeRange
	status       Status
	note         Note
	recurrence   *RecurrencePattern
	checkInTime  *time.Time
	checkOutTime *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(amenityID, memberID uuid.UUID, tr TimeRange, note Note, now time.Time) (*Booking, error) {
	if amenityID == uuid.Nil {
		return nil, ErrMissingAmenity
	}
	if memberID == uuid.Nil {
		return nil, ErrMissingMember
	}
	if tr.IsZero() {
		return nil, ErrInvalidTimeRange
	}

	return &Booking{
		id:        uuid.New(),
		amenityID: amenityID,
		memberID:  memberID,
		timeRange: tr,
		status:    StatusPending,
		note:      note,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id, amenityID, memberID uuid.UUID,
	tr TimeRange,
	status Status,
	note Note,
	recurrence *RecurrencePattern,
	checkInTime, checkOutTime *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		amenityID:    amenityID,
		memberID:     memberID,
		timeRange:    tr,
		status:       status,
		note:         note,
		recurrence:   recurrence,
		checkInTime:  checkInTime,
		checkOutTime: checkOutTime,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Occurrence copies b onto a new interval as a fresh pending booking of the series.
func (b *Booking) Occurrence(tr TimeRange, pattern RecurrencePattern, now time.Time) *Booking {
	p := pattern
	return &Booking{
		id:         uuid.New(),
		amenityID:  b.amenityID,
		memberID:   b.memberID,
		timeRange:  tr,
		status:     StatusPending,
		note:       b.note,
		recurrence: &p,
		createdAt:  now,
		updatedAt:  now,
	}
}

func (b *Booking) transition(next Status, now time.Time) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) Approve(now time.Time) error {
	return b.transition(StatusApproved, now)
}

func (b *Booking) Cancel(now time.Time) error {
	return b.transition(StatusCancelled, now)
}

func (b *Booking) CheckIn(now time.Time) error {
	if err := b.transition(StatusCheckedIn, now); err != nil {
		return err
	}
	t := now
	b.checkInTime = &t
	return nil
}

func (b *Booking) CheckOut(now time.Time) error {
	if err := b.transition(StatusCompleted, now); err != nil {
		return err
	}
	t := now
	b.checkOutTime = &t
	return nil
}

// Reschedule moves a booking that has not started yet. Only pending and approved
// bookings can move; the caller checks conflicts with the booking itself excluded.
func (b *Booking) Reschedule(tr TimeRange, now time.Time) error {
	if b.status != StatusPending && b.status != StatusApproved {
		return ErrNotEditable
	}
	if tr.IsZero() {
		return ErrInvalidTimeRange
	}
	b.timeRange = tr
	b.updatedAt = now
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

// IsOverdue reports a checked-in booking whose end passed more than grace ago.
func (b *Booking) IsOverdue(now time.Time, grace time.Duration) bool {
	return b.status == StatusCheckedIn && !b.timeRange.End().After(now.Add(-grace))
}

func (b *Booking) IsOwnedBy(memberID uuid.UUID) bool {
	return b.memberID == memberID
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) AmenityID() uuid.UUID           { return b.amenityID }
func (b *Booking) MemberID() uuid.UUID            { return b.memberID }
func (b *Booking) TimeRange() TimeRange           { return b.timeRange }
func (b *Booking) Start() time.Time               { return b.timeRange.Start() }
func (b *Booking) End() time.Time                 { return b.timeRange.End() }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) Note() Note                     { return b.note }
func (b *Booking) Recurrence() *RecurrencePattern { return b.recurrence }
func (b *Booking) CheckInTime() *time.Time        { return b.checkInTime }
func (b *Booking) CheckOutTime() *time.Time       { return b.checkOutTime }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }
