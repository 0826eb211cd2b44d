package converter

import (
	"hub-booking/internal/domain/event"
	"hub-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventRecord struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Location        string
	StartsAt        pgtype.Timestamptz
	Capacity        int32
	OrganizerID     uuid.UUID
	Status          string
	RejectionReason string
	Attendees       []uuid.UUID
	Waitlist        []uuid.UUID
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

const EventColumns = `id, title, description, location, starts_at, capacity, organizer_id,
	status, rejection_reason, attendees, waitlist, created_at, updated_at`

func (r *EventRecord) ScanTargets() []any {
	return []any{
		&r.ID, &r.Title, &r.Description, &r.Location, &r.StartsAt, &r.Capacity, &r.OrganizerID,
		&r.Status, &r.RejectionReason, &r.Attendees, &r.Waitlist, &r.CreatedAt, &r.UpdatedAt,
	}
}

func EventToDomain(r EventRecord) (*event.Event, error) {
	return event.ReconstructEvent(
		r.ID, r.Title, r.Description, r.Location,
		r.StartsAt.Time,
		int(r.Capacity),
		r.OrganizerID,
		event.Status(r.Status),
		r.RejectionReason,
		nonNil(r.Attendees), nonNil(r.Waitlist),
		r.CreatedAt.Time, r.UpdatedAt.Time,
	)
}

func EventToRecord(e *event.Event) EventRecord {
	return EventRecord{
		ID:              e.ID(),
		Title:           e.Title(),
		Description:     e.Description(),
		Location:        e.Location(),
		StartsAt:        pgconv.TimeToPgtype(e.StartsAt()),
		Capacity:        int32(e.Capacity()),
		OrganizerID:     e.OrganizerID(),
		Status:          string(e.Status()),
		RejectionReason: e.RejectionReason(),
		Attendees:       nonNil(e.Attendees()),
		Waitlist:        nonNil(e.Waitlist()),
		CreatedAt:       pgconv.TimeToPgtype(e.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(e.UpdatedAt()),
	}
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
