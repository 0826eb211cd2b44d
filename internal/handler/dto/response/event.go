package response

import (
	"time"

	"hub-booking/internal/domain/event"
	"hub-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Location        string      `json:"location,omitempty"`
	StartsAt        time.Time   `json:"starts_at"`
	Capacity        int         `json:"capacity"`
	OrganizerID     uuid.UUID   `json:"organizer_id"`
	Status          string      `json:"status"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	Attendees       []uuid.UUID `json:"attendees"`
	Waitlist        []uuid.UUID `json:"waitlist"`
	AttendeeCount   int         `json:"attendee_count"`
	WaitlistCount   int         `json:"waitlist_count"`
	SpotsLeft       *int        `json:"spots_left,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	resp := mapView[EventResponse](v)
	resp.AttendeeCount = len(v.Attendees)
	resp.WaitlistCount = len(v.Waitlist)
	return resp
}

func FromEvent(e *event.Event) *EventResponse {
	return FromEventView(queries.NewEventView(e))
}

func FromEventViews(vs []*queries.EventView) []*EventResponse {
	out := make([]*EventResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromEventView(v))
	}
	return out
}

type PromotionResponse struct {
	Event    *EventResponse `json:"event"`
	Promoted []uuid.UUID    `json:"promoted"`
}

func FromPromotion(e *event.Event, p event.Promotion) *PromotionResponse {
	promoted := p.Promoted
	if promoted == nil {
		promoted = []uuid.UUID{}
	}
	return &PromotionResponse{Event: FromEvent(e), Promoted: promoted}
}
