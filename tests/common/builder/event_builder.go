//go:build unit || e2e

package builder

import (
	"time"

	"hub-booking/internal/domain/event"

	"github.com/google/uuid"
)

type EventBuilder struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	Capacity    int
	OrganizerID uuid.UUID
	Status      event.Status
	Attendees   []uuid.UUID
	Waitlist    []uuid.UUID
	CreatedAt   time.Time
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:          uuid.New(),
		Title:       "Founders Breakfast",
		Description: "Monthly meetup for resident founders",
		Location:    "Lounge",
		StartsAt:    defaultBookingStart.AddDate(0, 0, 3),
		Capacity:    10,
		OrganizerID: uuid.New(),
		Status:      event.StatusApproved,
		Attendees:   []uuid.UUID{},
		Waitlist:    []uuid.UUID{},
		CreatedAt:   defaultBookingStart.AddDate(0, 0, -7),
	}
}

func (e *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(e)
	return e
}

func (e *EventBuilder) BuildDomain() (*event.Event, error) {
	return event.NewEvent(e.Title, e.Description, e.Location, e.StartsAt, e.Capacity, e.OrganizerID, e.CreatedAt)
}

func (e *EventBuilder) BuildStored() (*event.Event, error) {
	return event.ReconstructEvent(
		e.ID, e.Title, e.Description, e.Location, e.StartsAt, e.Capacity, e.OrganizerID,
		e.Status, "", e.Attendees, e.Waitlist, e.CreatedAt, e.CreatedAt,
	)
}

// MustBuildStored panics on invariant violations; fixtures only.
func (e *EventBuilder) MustBuildStored() *event.Event {
	ev, err := e.BuildStored()
	if err != nil {
		panic(err)
	}
	return ev
}

func (e *EventBuilder) WithCapacity(capacity int) *EventBuilder {
	e.Capacity = capacity
	return e
}

func (e *EventBuilder) WithStatus(status event.Status) *EventBuilder {
	e.Status = status
	return e
}

func (e *EventBuilder) WithStartsAt(t time.Time) *EventBuilder {
	e.StartsAt = t
	return e
}

// WithAttendeeCount fills the attendee list with n fresh members.
func (e *EventBuilder) WithAttendeeCount(n int) *EventBuilder {
	e.Attendees = NewMemberIDs(n)
	return e
}

func (e *EventBuilder) WithAttendees(ids ...uuid.UUID) *EventBuilder {
	e.Attendees = ids
	return e
}

func (e *EventBuilder) WithWaitlist(ids ...uuid.UUID) *EventBuilder {
	e.Waitlist = ids
	return e
}

func NewMemberIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}
