package request

import (
	"strings"
	"time"

	"hub-booking/internal/pkg/patch"
	"hub-booking/internal/usecase/commands"
)

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Location    string    `json:"location" binding:"max=255"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	// Capacity 0 means unlimited.
	Capacity int `json:"capacity" binding:"min=0"`
}

func (r CreateEventRequest) ToInput() commands.CreateEventInput {
	return commands.CreateEventInput{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Location:    strings.TrimSpace(r.Location),
		StartsAt:    r.StartsAt,
		Capacity:    r.Capacity,
	}
}

type RejectEventRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type PromoteWaitlistRequest struct {
	Count *int `json:"count" binding:"omitempty,min=1"`
}

// GetCount defaults to promoting a single member.
func (r PromoteWaitlistRequest) GetCount() int {
	return patch.Coalesce(r.Count, 1)
}
