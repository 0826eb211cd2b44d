package request

import (
	"strings"
	"time"

	"hub-booking/internal/usecase/commands"
)

type OpeningHoursRequest struct {
	StartHour     int    `json:"start_hour" binding:"min=0,max=23"`
	EndHour       int    `json:"end_hour" binding:"required,min=1,max=24,gtfield=StartHour"`
	AvailableDays []int  `json:"available_days" binding:"required,min=1,max=7,dive,weekday"`
	SlotMinutes   int    `json:"slot_minutes" binding:"required,slot_minutes"`
	TimeZone      string `json:"time_zone" binding:"omitempty,timezone"`
}

type CreateAmenityRequest struct {
	Name         string               `json:"name" binding:"required,max=255"`
	Type         string               `json:"type" binding:"required,oneof=desk meeting-room podcast-room"`
	Capacity     int                  `json:"capacity" binding:"required,min=1"`
	Description  string               `json:"description" binding:"max=1000"`
	OpeningHours *OpeningHoursRequest `json:"opening_hours,omitempty"`
}

func (r CreateAmenityRequest) ToInput() commands.CreateAmenityInput {
	in := commands.CreateAmenityInput{
		Name:        strings.TrimSpace(r.Name),
		Type:        r.Type,
		Capacity:    r.Capacity,
		Description: strings.TrimSpace(r.Description),
	}
	if h := r.OpeningHours; h != nil {
		days := make([]time.Weekday, 0, len(h.AvailableDays))
		for _, d := range h.AvailableDays {
			days = append(days, time.Weekday(d))
		}
		in.OpeningHours = &commands.OpeningHoursInput{
			StartHour:     h.StartHour,
			EndHour:       h.EndHour,
			AvailableDays: days,
			SlotMinutes:   h.SlotMinutes,
			TimeZone:      h.TimeZone,
		}
	}
	return in
}

type SetAmenityAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
