package event

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("event title cannot be empty")
	ErrTitleTooLong      = errors.New("event title is too long (max 255 characters)")
	ErrNegativeCapacity  = errors.New("event capacity cannot be negative")
	ErrMissingOrganizer  = errors.New("event requires an organizer")
	ErrInvalidStatus     = errors.New("invalid event status")
	ErrAlreadyReviewed   = errors.New("event has already been approved or rejected")
	ErrNotOpen           = errors.New("event is not open for registration")
	ErrEventFull         = errors.New("event is full")
	ErrAlreadyAttending  = errors.New("member is already attending")
	ErrNotAttending      = errors.New("member is not attending")
	ErrOverCapacity      = errors.New("attendees exceed event capacity")
	ErrWaitlistOverlap   = errors.New("member is both attending and waitlisted")
	ErrDuplicateMember   = errors.New("member listed twice")
	ErrInvalidPromoCount = errors.New("promotion count must be positive")
)

const MaxTitleLength = 255

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

type Event struct {
	id              uuid.UUID
	title           string
	description     string
	location        string
	startsAt        time.Time
	capacity        int
	organizerID     uuid.UUID
	status          Status
	rejectionReason string
	attendees       []uuid.UUID
	waitlist        []uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func NewEvent(title, description, location string, startsAt time.Time, capacity int, organizerID uuid.UUID, now time.Time) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if organizerID == uuid.Nil {
		return nil, ErrMissingOrganizer
	}

	return &Event{
		id:          uuid.New(),
		title:       title,
		description: strings.TrimSpace(description),
		location:    strings.TrimSpace(location),
		startsAt:    startsAt,
		capacity:    capacity,
		organizerID: organizerID,
		status:      StatusPending,
		attendees:   []uuid.UUID{},
		waitlist:    []uuid.UUID{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructEvent rebuilds a stored event and rejects records that break the
// attendance invariants.
func ReconstructEvent(
	id uuid.UUID,
	title, description, location string,
	startsAt time.Time,
	capacity int,
	organizerID uuid.UUID,
	status Status,
	rejectionReason string,
	attendees, waitlist []uuid.UUID,
	createdAt, updatedAt time.Time,
) (*Event, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if capacity > 0 && len(attendees) > capacity {
		return nil, ErrOverCapacity
	}
	if hasDuplicates(attendees) || hasDuplicates(waitlist) {
		return nil, ErrDuplicateMember
	}
	for _, m := range waitlist {
		if slices.Contains(attendees, m) {
			return nil, ErrWaitlistOverlap
		}
	}

	return &Event{
		id:              id,
		title:           title,
		description:     description,
		location:        location,
		startsAt:        startsAt,
		capacity:        capacity,
		organizerID:     organizerID,
		status:          status,
		rejectionReason: rejectionReason,
		attendees:       append([]uuid.UUID{}, attendees...),
		waitlist:        append([]uuid.UUID{}, waitlist...),
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func hasDuplicates(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

func (e *Event) Approve(now time.Time) error {
	if e.status != StatusPending {
		return ErrAlreadyReviewed
	}
	e.status = StatusApproved
	e.updatedAt = now
	return nil
}

func (e *Event) Reject(reason string, now time.Time) error {
	if e.status != StatusPending {
		return ErrAlreadyReviewed
	}
	e.status = StatusRejected
	e.rejectionReason = strings.TrimSpace(reason)
	e.updatedAt = now
	return nil
}

// Register adds memberID to the attendees. A waitlisted member who registers
// leaves the waitlist.
func (e *Event) Register(memberID uuid.UUID, now time.Time) error {
	if e.status != StatusApproved {
		return ErrNotOpen
	}
	if e.IsAttending(memberID) {
		return ErrAlreadyAttending
	}
	if e.IsFull() {
		return ErrEventFull
	}
	e.attendees = append(e.attendees, memberID)
	e.waitlist = slices.DeleteFunc(e.waitlist, func(id uuid.UUID) bool { return id == memberID })
	e.updatedAt = now
	return nil
}

func (e *Event) Unregister(memberID uuid.UUID, now time.Time) error {
	if !e.IsAttending(memberID) {
		return ErrNotAttending
	}
	e.attendees = slices.DeleteFunc(e.attendees, func(id uuid.UUID) bool { return id == memberID })
	e.updatedAt = now
	return nil
}

// JoinWaitlist appends memberID to the queue. It reports false when the member
// was already queued.
func (e *Event) JoinWaitlist(memberID uuid.UUID, now time.Time) (bool, error) {
	if e.status != StatusApproved {
		return false, ErrNotOpen
	}
	if e.IsAttending(memberID) {
		return false, ErrAlreadyAttending
	}
	if e.IsWaitlisted(memberID) {
		return false, nil
	}
	e.waitlist = append(e.waitlist, memberID)
	e.updatedAt = now
	return true, nil
}

func (e *Event) LeaveWaitlist(memberID uuid.UUID, now time.Time) bool {
	if !e.IsWaitlisted(memberID) {
		return false
	}
	e.waitlist = slices.DeleteFunc(e.waitlist, func(id uuid.UUID) bool { return id == memberID })
	e.updatedAt = now
	return true
}

// PromoteWaitlist applies Promote to this snapshot and returns what changed.
func (e *Event) PromoteWaitlist(requested int, now time.Time) Promotion {
	p := Promote(e.capacity, e.attendees, e.waitlist, requested)
	if p.IsEmpty() {
		return p
	}
	e.attendees = append(e.attendees, p.Promoted...)
	e.waitlist = append([]uuid.UUID{}, p.RemainingWaitlist...)
	e.updatedAt = now
	return p
}

// AutoPromote fills every spot left free with the head of the waitlist.
// Unlimited events never hold a queue open, so they promote nobody.
func (e *Event) AutoPromote(now time.Time) Promotion {
	if e.capacity <= 0 {
		return Promotion{Promoted: []uuid.UUID{}, RemainingWaitlist: slices.Clone(e.waitlist)}
	}
	return e.PromoteWaitlist(len(e.waitlist), now)
}

func (e *Event) IsFull() bool {
	spots, limited := AvailableSpots(e.capacity, len(e.attendees))
	return limited && spots == 0
}

func (e *Event) IsAttending(memberID uuid.UUID) bool {
	return slices.Contains(e.attendees, memberID)
}

func (e *Event) IsWaitlisted(memberID uuid.UUID) bool {
	return slices.Contains(e.waitlist, memberID)
}

// StartsWithin reports whether the event starts in [from, to).
func (e *Event) StartsWithin(from, to time.Time) bool {
	return !e.startsAt.Before(from) && e.startsAt.Before(to)
}

func (e *Event) ID() uuid.UUID            { return e.id }
func (e *Event) Title() string            { return e.title }
func (e *Event) Description() string      { return e.description }
func (e *Event) Location() string         { return e.location }
func (e *Event) StartsAt() time.Time      { return e.startsAt }
func (e *Event) Capacity() int            { return e.capacity }
func (e *Event) OrganizerID() uuid.UUID   { return e.organizerID }
func (e *Event) Status() Status           { return e.status }
func (e *Event) RejectionReason() string  { return e.rejectionReason }
func (e *Event) Attendees() []uuid.UUID   { return slices.Clone(e.attendees) }
func (e *Event) Waitlist() []uuid.UUID    { return slices.Clone(e.waitlist) }
func (e *Event) CreatedAt() time.Time     { return e.createdAt }
func (e *Event) UpdatedAt() time.Time     { return e.updatedAt }
